package slots

import (
	"math/rand"
	"strings"
	"time"
)

// Symbol table. Weights are carried for the future weighted-reel mode;
// the current draw is uniform over the symbol set.
var (
	symbols       = []string{"A", "B", "C", "D"}
	symbolWeights = map[string]int{"A": 5, "B": 4, "C": 3, "D": 2}
)

const (
	gridRows = 3
	gridCols = 3
)

// Grid is one spin result: a 3x3 window of symbols
type Grid [gridRows][gridCols]string

// String renders the grid as space-separated rows
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		b.WriteString(strings.Join(row[:], " "))
		b.WriteString("\n")
	}
	return b.String()
}

// Machine draws spin results from a single generator held for the process
// lifetime
type Machine struct {
	rng *rand.Rand
}

// NewMachine creates a machine seeded from the clock
func NewMachine() *Machine {
	return NewMachineWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewMachineWithSource creates a machine with an explicit random source,
// which tests use for determinism
func NewMachineWithSource(src rand.Source) *Machine {
	return &Machine{rng: rand.New(src)}
}

// Spin draws a full grid, each cell an independent uniform pick over the
// symbol set
func (m *Machine) Spin() Grid {
	var grid Grid
	for i := 0; i < gridRows; i++ {
		for j := 0; j < gridCols; j++ {
			grid[i][j] = symbols[m.rng.Intn(len(symbols))]
		}
	}
	return grid
}

// Winnings computes the payout for a grid at the given bet.
// TODO: score matched rows against the paytable. Every spin currently
// pays zero.
func (m *Machine) Winnings(grid Grid, bet float64) float64 {
	return 0
}

// Symbols returns the symbol set eligible to appear in a grid
func Symbols() []string {
	out := make([]string, len(symbols))
	copy(out, symbols)
	return out
}

// Weight returns the paytable weight for a symbol, or 0 for an unknown one
func Weight(symbol string) int {
	return symbolWeights[symbol]
}
