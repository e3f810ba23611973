package slots

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_Spin_CellsComeFromSymbolSet(t *testing.T) {
	machine := NewMachineWithSource(rand.NewSource(1))

	valid := make(map[string]bool)
	for _, s := range Symbols() {
		valid[s] = true
	}

	for spin := 0; spin < 100; spin++ {
		grid := machine.Spin()
		for _, row := range grid {
			for _, cell := range row {
				assert.True(t, valid[cell], "unexpected symbol %q in grid", cell)
			}
		}
	}
}

func TestMachine_Spin_UniformFrequency(t *testing.T) {
	machine := NewMachineWithSource(rand.NewSource(42))

	const spins = 10000
	counts := make(map[string]int)
	for i := 0; i < spins; i++ {
		grid := machine.Spin()
		for _, row := range grid {
			for _, cell := range row {
				counts[cell]++
			}
		}
	}

	// 90000 cells over 4 symbols. The draw ignores the paytable weights,
	// so every symbol should land near a quarter of the cells.
	total := spins * 9
	expected := float64(total) / float64(len(Symbols()))
	for _, symbol := range Symbols() {
		count := counts[symbol]
		assert.InDelta(t, expected, float64(count), expected*0.05,
			"symbol %q frequency deviates from uniform", symbol)
	}
}

func TestMachine_Winnings_CurrentlyAlwaysZero(t *testing.T) {
	machine := NewMachineWithSource(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		grid := machine.Spin()
		assert.Equal(t, 0.0, machine.Winnings(grid, 20))
	}

	// Even a fully matched grid pays nothing until the paytable lands.
	var matched Grid
	for i := range matched {
		for j := range matched[i] {
			matched[i][j] = "A"
		}
	}
	assert.Equal(t, 0.0, machine.Winnings(matched, 100))
}

func TestGrid_String(t *testing.T) {
	grid := Grid{
		{"A", "B", "C"},
		{"D", "A", "B"},
		{"C", "D", "A"},
	}

	rendered := grid.String()
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "A B C", lines[0])
	assert.Equal(t, "D A B", lines[1])
	assert.Equal(t, "C D A", lines[2])
}

func TestSymbolTable(t *testing.T) {
	require.Len(t, Symbols(), 4)
	for _, symbol := range Symbols() {
		assert.Positive(t, Weight(symbol), "symbol %q has no paytable weight", symbol)
	}
	assert.Zero(t, Weight("Z"))
}
