package testutil

import (
	"context"
	"database/sql"
	"strings"

	"github.com/alexanderramin/budgetwise/internal/db"
)

// FailingItemInsertUoW runs work in a real sqlite transaction but fails the
// Nth "INSERT INTO items" statement (counting from 1) with Err. Other
// statements pass through. Use it to check that a bulk import rolls back
// the items inserted before the failure.
type FailingItemInsertUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error

	// Inserts counts the item inserts attempted, including the failing one.
	Inserts int
	// RolledBack reports whether the last transaction ended in rollback.
	RolledBack bool
}

func (u *FailingItemInsertUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	u.Inserts = 0
	err := db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingItemWrites{DBTX: tx, uow: u})
	})
	u.RolledBack = err != nil
	return err
}

type failingItemWrites struct {
	db.DBTX
	uow *FailingItemInsertUoW
}

func (f *failingItemWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if isItemInsert(query) {
		f.uow.Inserts++
		if f.uow.Inserts == f.uow.FailOn {
			return nil, f.uow.Err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

func isItemInsert(query string) bool {
	q := strings.ToUpper(strings.Join(strings.Fields(query), " "))
	return strings.HasPrefix(q, "INSERT INTO ITEMS")
}
