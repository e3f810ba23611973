package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB represents the database handle for the local SQLite file
type DB struct {
	*sql.DB
}

// NewConnection opens the SQLite database file at the given path
func NewConnection(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database file %s: %w", path, err)
	}

	// The game is single-threaded; one connection avoids writer contention
	// on the file.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the database handle
func (db *DB) Close() error {
	return db.DB.Close()
}
