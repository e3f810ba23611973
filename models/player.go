package models

// Player represents a registered player with a balance.
// The (name, age, card) triple is the de facto identity key; the schema
// does not enforce uniqueness, so lookups take the first match.
type Player struct {
	ID      int64   `db:"id"`
	Name    string  `db:"name"`
	Age     int     `db:"age"`
	Card    string  `db:"card"`
	Balance float64 `db:"balance"`
}
