package testutil

import (
	"slotmachine/models"
)

// CreateTestPlayer creates a test player with default values
func CreateTestPlayer(name string) *models.Player {
	return &models.Player{
		Name:    name,
		Age:     30,
		Card:    "1111",
		Balance: 100.0,
	}
}

// CreateTestSpinRecord creates a test spin record for the given player
func CreateTestSpinRecord(playerID int64) *models.SpinRecord {
	return &models.SpinRecord{
		PlayerID: playerID,
		Bet:      20,
		Winnings: 0,
		Balance:  80,
	}
}
