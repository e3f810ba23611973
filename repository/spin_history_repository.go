package repository

import (
	"context"
	"fmt"

	"slotmachine/database"
	"slotmachine/models"

	sq "github.com/Masterminds/squirrel"
)

const (
	spinHistoryTable = "spin_history"

	colPlayerID = "player_id"
	colBet      = "bet"
	colWinnings = "winnings"
)

// SpinHistoryRepository appends to the immutable spin history log
type SpinHistoryRepository struct {
	q queryable
}

// NewSpinHistoryRepository creates a new spin history repository
func NewSpinHistoryRepository(db *database.DB) *SpinHistoryRepository {
	return &SpinHistoryRepository{q: db.DB}
}

// Record appends a spin history row and sets the assigned id on the record
func (r *SpinHistoryRepository) Record(ctx context.Context, record *models.SpinRecord) error {
	query := sq.Insert(spinHistoryTable).
		Columns(colPlayerID, colBet, colWinnings, colBalance).
		Values(record.PlayerID, record.Bet, record.Winnings, record.Balance)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build spin history insert: %w", err)
	}

	result, err := r.q.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to record spin history for player %d: %w", record.PlayerID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read spin history id for player %d: %w", record.PlayerID, err)
	}
	record.ID = id

	return nil
}

// GetByPlayer returns the most recent spin records for a player, newest
// first. A non-positive limit returns no records rather than an
// unbounded query.
func (r *SpinHistoryRepository) GetByPlayer(ctx context.Context, playerID int64, limit int) ([]*models.SpinRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := sq.Select(colID, colPlayerID, colBet, colWinnings, colBalance).
		From(spinHistoryTable).
		Where(sq.Eq{colPlayerID: playerID}).
		OrderBy(colID + " DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build spin history query: %w", err)
	}

	rows, err := r.q.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get spin history for player %d: %w", playerID, err)
	}
	defer rows.Close()

	var records []*models.SpinRecord
	for rows.Next() {
		var record models.SpinRecord
		err := rows.Scan(
			&record.ID,
			&record.PlayerID,
			&record.Bet,
			&record.Winnings,
			&record.Balance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan spin record: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spin history: %w", err)
	}

	return records, nil
}
