package service

import (
	"context"

	"slotmachine/models"
	"slotmachine/slots"
)

// PlayerRepository defines the interface for player data access
type PlayerRepository interface {
	// GetByIdentity retrieves a player by the (name, age, card) triple
	GetByIdentity(ctx context.Context, name string, age int, card string) (*models.Player, error)

	// GetByID retrieves a player by id
	GetByID(ctx context.Context, id int64) (*models.Player, error)

	// Create inserts a new player row; the id is obtained by re-querying
	Create(ctx context.Context, name string, age int, card string) error

	// SetBalance overwrites the stored balance for the given player
	SetBalance(ctx context.Context, id int64, balance float64) error
}

// SpinHistoryRepository defines the interface for the spin history log
type SpinHistoryRepository interface {
	// Record appends a spin history row
	Record(ctx context.Context, record *models.SpinRecord) error

	// GetByPlayer returns the most recent spin records for a player
	GetByPlayer(ctx context.Context, playerID int64, limit int) ([]*models.SpinRecord, error)
}

// PlayerService defines the interface for player session operations.
// Persistence failures are logged inside the service, never propagated;
// the session always proceeds on in-memory state.
type PlayerService interface {
	// ResolvePlayer retrieves an existing player or registers a new one
	ResolvePlayer(ctx context.Context, name string, age int, card string) *models.Player

	// BeginSession resets the player's balance to the session starting value
	BeginSession(ctx context.Context, player *models.Player)
}

// SpinOutcome is the result of one settled spin cycle
type SpinOutcome struct {
	Grid       slots.Grid
	Bet        float64
	Winnings   float64
	NewBalance float64
}

// SlotService defines the interface for spin operations
type SlotService interface {
	// PlaySpin runs one bet/spin/settle cycle for the player
	PlaySpin(ctx context.Context, player *models.Player, bet float64) *SpinOutcome

	// History returns the most recent spin records for the player
	History(ctx context.Context, player *models.Player, limit int) ([]*models.SpinRecord, error)
}
