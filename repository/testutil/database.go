package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"slotmachine/database"

	"github.com/stretchr/testify/require"
)

// TestDatabase represents a migrated database backed by a temporary file
type TestDatabase struct {
	DB   *database.DB
	Path string
}

// SetupTestDatabase creates a fresh SQLite file in the test's temp
// directory and runs all migrations against it. The file is removed with
// the temp directory when the test finishes.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "slot_machine_test.db")

	// Run migrations first (before creating the connection)
	err := database.RunMigrationsWithPath(path)
	require.NoError(t, err)

	db, err := database.NewConnection(ctx, path)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return &TestDatabase{DB: db, Path: path}
}
