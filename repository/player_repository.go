package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"slotmachine/database"
	"slotmachine/models"

	sq "github.com/Masterminds/squirrel"
)

const (
	playersTable = "players"

	colID      = "id"
	colName    = "name"
	colAge     = "age"
	colCard    = "card"
	colBalance = "balance"
)

// PlayerRepository persists players in the local database
type PlayerRepository struct {
	q queryable
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *database.DB) *PlayerRepository {
	return &PlayerRepository{q: db.DB}
}

// GetByIdentity retrieves a player by exact match on the (name, age, card)
// identity triple. The schema does not enforce uniqueness on the triple, so
// the first matching row wins. Returns nil when no row matches.
func (r *PlayerRepository) GetByIdentity(ctx context.Context, name string, age int, card string) (*models.Player, error) {
	query := sq.Select(colID, colName, colAge, colCard, colBalance).
		From(playersTable).
		Where(sq.Eq{colName: name, colAge: age, colCard: card}).
		OrderBy(colID).
		Limit(1)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build player lookup query: %w", err)
	}

	var player models.Player
	err = r.q.QueryRowContext(ctx, sqlStr, args...).Scan(
		&player.ID,
		&player.Name,
		&player.Age,
		&player.Card,
		&player.Balance,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player by identity %s: %w", name, err)
	}

	return &player, nil
}

// GetByID retrieves a player by id. Returns nil when no row matches.
func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	query := sq.Select(colID, colName, colAge, colCard, colBalance).
		From(playersTable).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build player query: %w", err)
	}

	var player models.Player
	err = r.q.QueryRowContext(ctx, sqlStr, args...).Scan(
		&player.ID,
		&player.Name,
		&player.Age,
		&player.Card,
		&player.Balance,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id %d: %w", id, err)
	}

	return &player, nil
}

// Create inserts a new player row. Balance takes the schema default of 0;
// the caller re-queries by identity to obtain the assigned id.
func (r *PlayerRepository) Create(ctx context.Context, name string, age int, card string) error {
	query := sq.Insert(playersTable).
		Columns(colName, colAge, colCard).
		Values(name, age, card)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build player insert: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to create player %s: %w", name, err)
	}

	return nil
}

// SetBalance overwrites the stored balance for the given player
func (r *PlayerRepository) SetBalance(ctx context.Context, id int64, balance float64) error {
	query := sq.Update(playersTable).
		Set(colBalance, balance).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build balance update: %w", err)
	}

	result, err := r.q.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to update balance for player %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check balance update for player %d: %w", id, err)
	}
	if rows == 0 {
		return fmt.Errorf("player with id %d not found", id)
	}

	return nil
}
