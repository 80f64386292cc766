package sqlite_test

import (
	"context"
	"testing"

	"github.com/mpontes/fatura/sqlite"
	"github.com/stretchr/testify/require"
)

// setupTestDB returns an open in-memory database that closes with the test.
func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		var count int
		err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM records").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})
}
