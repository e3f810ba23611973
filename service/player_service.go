package service

import (
	"context"

	"slotmachine/models"

	log "github.com/sirupsen/logrus"
)

// playerService implements the PlayerService interface
type playerService struct {
	playerRepo      PlayerRepository
	startingBalance float64
}

// NewPlayerService creates a new player service
func NewPlayerService(playerRepo PlayerRepository, startingBalance float64) PlayerService {
	return &playerService{
		playerRepo:      playerRepo,
		startingBalance: startingBalance,
	}
}

// ResolvePlayer retrieves an existing player or registers a new one.
// Registration is insert-then-re-lookup: the insert does not report the
// assigned id, the lookup does. Resolving the same triple again returns
// the same id.
//
// Persistence failures are logged, never propagated: when no stored row
// can be obtained the session proceeds with an unsaved player (id 0).
func (s *playerService) ResolvePlayer(ctx context.Context, name string, age int, card string) *models.Player {
	player, err := s.playerRepo.GetByIdentity(ctx, name, age, card)
	if err != nil {
		log.Errorf("Error looking up player %s: %v", name, err)
	}

	// Player exists, return it
	if player != nil {
		return player
	}

	if err := s.playerRepo.Create(ctx, name, age, card); err != nil {
		log.Errorf("Error creating player %s: %v", name, err)
	}

	player, err = s.playerRepo.GetByIdentity(ctx, name, age, card)
	if err != nil {
		log.Errorf("Error looking up created player %s: %v", name, err)
	}
	if player == nil {
		log.Errorf("Player %s could not be resolved, continuing unsaved", name)
		return &models.Player{Name: name, Age: age, Card: card}
	}

	log.Infof("Registered new player %s (id %d)", name, player.ID)
	return player
}

// BeginSession force-sets the player's balance to the starting value,
// overwriting whatever balance the previous session left behind. A write
// failure is logged and the session proceeds on the in-memory balance.
func (s *playerService) BeginSession(ctx context.Context, player *models.Player) {
	if err := s.playerRepo.SetBalance(ctx, player.ID, s.startingBalance); err != nil {
		log.Errorf("Error setting starting balance for player %d: %v", player.ID, err)
	}

	player.Balance = s.startingBalance
}
