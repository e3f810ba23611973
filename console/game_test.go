package console

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"slotmachine/repository"
	"slotmachine/repository/testutil"
	"slotmachine/service"
	"slotmachine/slots"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, input string) (*Game, *bytes.Buffer) {
	t.Helper()
	testDB := testutil.SetupTestDatabase(t)

	playerRepo := repository.NewPlayerRepository(testDB.DB)
	historyRepo := repository.NewSpinHistoryRepository(testDB.DB)

	players := service.NewPlayerService(playerRepo, 100.0)
	machine := slots.NewMachineWithSource(rand.NewSource(1))
	slotSvc := service.NewSlotService(machine, playerRepo, historyRepo)

	var out bytes.Buffer
	return New(strings.NewReader(input), &out, players, slotSvc), &out
}

func TestGame_Run_FullSession(t *testing.T) {
	t.Parallel()
	game, out := newTestGame(t, "Alice 30 1111 p 20 q")

	err := game.Run(context.Background())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Enter your name: ")
	assert.Contains(t, output, "Enter your age: ")
	assert.Contains(t, output, "Enter your card: ")
	assert.Contains(t, output, "Your balance is 100.")
	assert.Contains(t, output, "Enter your bet amount: ")
	assert.Contains(t, output, "New Balance: 80")
	assert.Contains(t, output, "bet 20, won 0, balance 80")
	assert.Contains(t, output, "Thanks for playing!")
}

func TestGame_Run_QuitImmediately(t *testing.T) {
	t.Parallel()
	game, out := newTestGame(t, "Alice 30 1111 q")

	err := game.Run(context.Background())
	require.NoError(t, err)

	output := out.String()
	assert.NotContains(t, output, "New Balance:")
	assert.Contains(t, output, "Thanks for playing!")
}

func TestGame_Run_RepromptsOnBadAge(t *testing.T) {
	t.Parallel()
	game, out := newTestGame(t, "Alice abc 30 1111 q")

	err := game.Run(context.Background())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, `"abc" is not a whole number`)
	assert.Contains(t, output, "Your balance is 100.")
}

func TestGame_Run_RepromptsOnBadBet(t *testing.T) {
	t.Parallel()
	game, out := newTestGame(t, "Alice 30 1111 p twenty 20 q")

	err := game.Run(context.Background())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, `"twenty" is not a number`)
	assert.Contains(t, output, "New Balance: 80")
}

func TestGame_Run_UnknownMenuChoice(t *testing.T) {
	t.Parallel()
	game, out := newTestGame(t, "Alice 30 1111 x q")

	err := game.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), `Unknown choice "x"`)
}

func TestGame_Run_ProceedsWhenPersistenceIsDead(t *testing.T) {
	t.Parallel()

	// Every statement against the store fails; the session still runs
	// start to finish on in-memory state.
	storeErr := errors.New("database is locked")

	playerRepo := new(service.MockPlayerRepository)
	playerRepo.On("GetByIdentity", mock.Anything, "Alice", 30, "1111").Return(nil, storeErr)
	playerRepo.On("Create", mock.Anything, "Alice", 30, "1111").Return(storeErr)
	playerRepo.On("SetBalance", mock.Anything, mock.Anything, mock.Anything).Return(storeErr)

	historyRepo := new(service.MockSpinHistoryRepository)
	historyRepo.On("Record", mock.Anything, mock.Anything).Return(storeErr)
	historyRepo.On("GetByPlayer", mock.Anything, mock.Anything, mock.Anything).Return(nil, storeErr)

	players := service.NewPlayerService(playerRepo, 100.0)
	machine := slots.NewMachineWithSource(rand.NewSource(1))
	slotSvc := service.NewSlotService(machine, playerRepo, historyRepo)

	var out bytes.Buffer
	game := New(strings.NewReader("Alice 30 1111 p 20 q"), &out, players, slotSvc)

	err := game.Run(context.Background())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Your balance is 100.")
	assert.Contains(t, output, "New Balance: 80")
}

func TestGame_Run_InputEndsDuringIdentify(t *testing.T) {
	t.Parallel()
	game, out := newTestGame(t, "Alice")

	err := game.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Enter your age: ")
}

func TestGame_Run_InputEndsMidCycle(t *testing.T) {
	t.Parallel()
	game, out := newTestGame(t, "Alice 30 1111 p 20")

	err := game.Run(context.Background())
	require.NoError(t, err)

	// The settled spin still shows up in the summary.
	assert.Contains(t, out.String(), "bet 20, won 0, balance 80")
}
