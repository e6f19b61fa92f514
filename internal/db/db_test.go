package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func countItems(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n))
	return n
}

func insertItem(ctx context.Context, tx DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO items (id, name, cost, benefit, category, created_at, updated_at)
		 VALUES (?, 'x', 1, 1, 'Health', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`, id)
	return err
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesItemsTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='items'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "items", name)
}

func TestItemsTable_RejectsOutOfRangeBenefit(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO items (id, name, cost, benefit, category, created_at, updated_at)
		VALUES ('a', 'x', 1, 10.5, 'Health', 'now', 'now')`)
	assert.Error(t, err)
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	db := openTestDB(t)
	uow := NewSQLiteUnitOfWork(db)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		return insertItem(ctx, tx, "k1")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countItems(t, db))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	uow := NewSQLiteUnitOfWork(db)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		if err := insertItem(ctx, tx, "k2"); err != nil {
			return err
		}
		return errors.New("deliberate failure")
	})
	require.ErrorContains(t, err, "deliberate failure")
	assert.Equal(t, 0, countItems(t, db))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	db := openTestDB(t)
	uow := NewSQLiteUnitOfWork(db)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
			_ = insertItem(ctx, tx, "k3")
			panic("boom")
		})
	})
	assert.Equal(t, 0, countItems(t, db))
}
