package service

import (
	"context"
	"fmt"

	"slotmachine/models"
	"slotmachine/slots"

	log "github.com/sirupsen/logrus"
)

// slotService implements the SlotService interface
type slotService struct {
	machine     *slots.Machine
	playerRepo  PlayerRepository
	historyRepo SpinHistoryRepository
}

// NewSlotService creates a new slot service
func NewSlotService(machine *slots.Machine, playerRepo PlayerRepository, historyRepo SpinHistoryRepository) SlotService {
	return &slotService{
		machine:     machine,
		playerRepo:  playerRepo,
		historyRepo: historyRepo,
	}
}

// PlaySpin runs one bet/spin/settle cycle. The new balance is
// balance + winnings - bet; the bet is not validated against the balance.
// Persistence failures are logged and swallowed so the game always
// proceeds, on in-memory state if need be.
func (s *slotService) PlaySpin(ctx context.Context, player *models.Player, bet float64) *SpinOutcome {
	grid := s.machine.Spin()
	winnings := s.machine.Winnings(grid, bet)

	newBalance := player.Balance + winnings - bet
	player.Balance = newBalance

	if err := s.playerRepo.SetBalance(ctx, player.ID, newBalance); err != nil {
		log.Errorf("Error updating balance for player %d: %v", player.ID, err)
	}

	record := &models.SpinRecord{
		PlayerID: player.ID,
		Bet:      bet,
		Winnings: winnings,
		Balance:  newBalance,
	}
	if err := s.historyRepo.Record(ctx, record); err != nil {
		log.Errorf("Error recording spin history for player %d: %v", player.ID, err)
	}

	return &SpinOutcome{
		Grid:       grid,
		Bet:        bet,
		Winnings:   winnings,
		NewBalance: newBalance,
	}
}

// History returns the player's most recent spin records, newest first
func (s *slotService) History(ctx context.Context, player *models.Player, limit int) ([]*models.SpinRecord, error) {
	records, err := s.historyRepo.GetByPlayer(ctx, player.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get spin history: %w", err)
	}
	return records, nil
}
