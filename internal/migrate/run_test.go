package migrate

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRun_SQLiteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	require.NoError(t, Run(ctx, db, SQLite))
	require.NoError(t, Run(ctx, db, SQLite))

	var applied int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, 1, applied)

	_, err := db.ExecContext(ctx, `INSERT INTO session_slots (slot_key, value) VALUES (?, ?)`, "k", "v")
	require.NoError(t, err)
}

func TestRun_UnknownDialect(t *testing.T) {
	db := openSQLite(t)
	require.Error(t, Run(context.Background(), db, Dialect("mysql")))
}

func TestDialect_Placeholder(t *testing.T) {
	assert.Equal(t, "$2", Postgres.Placeholder(2))
	assert.Equal(t, "?", SQLite.Placeholder(2))
	assert.Equal(t, "now()", Postgres.Now())
	assert.Equal(t, "CURRENT_TIMESTAMP", SQLite.Now())
}
