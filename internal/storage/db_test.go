package storage

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/darazkeeper/internal/dbx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestInitDatabase(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// schema is in place
	for _, table := range []string{"users", "products", "session"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s", table)
	}
}

func TestInitDatabase_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(ctx, db))
}

func TestInitDatabase_MemorySchemaSurvivesSecondConnection(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// A transaction would check out a fresh pool connection if the pool
	// were not pinned, and an in-memory database opened that way starts
	// empty. The migrated tables must stay visible inside it.
	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, first_name, last_name, email, password, daraz_store_link)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), "A", "B", "a@b.com", "secret", "")
		return err
	})
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM users`).Scan(&n))
	require.Equal(t, 1, n)
}

func TestInitDatabase_FileDSNKeepsDefaultPool(t *testing.T) {
	ctx := context.Background()

	dsn := "file:" + t.TempDir() + "/daraz.db"
	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Equal(t, 0, db.Stats().MaxOpenConnections)
}
