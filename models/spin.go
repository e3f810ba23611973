package models

// SpinRecord represents one settled spin in the append-only history log.
// Balance is the player's balance immediately after the spin settled;
// rows are never updated once written.
type SpinRecord struct {
	ID       int64   `db:"id"`
	PlayerID int64   `db:"player_id"`
	Bet      float64 `db:"bet"`
	Winnings float64 `db:"winnings"`
	Balance  float64 `db:"balance"`
}
