package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/budgetwise/internal/db"
	"github.com/alexanderramin/budgetwise/internal/domain"
)

// ErrNotFound is returned when a requested item doesn't exist.
var ErrNotFound = errors.New("not found")

type ItemRepo interface {
	Create(ctx context.Context, it domain.Item) error
	GetByID(ctx context.Context, id string) (domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	UpdateBenefit(ctx context.Context, id string, benefit float64) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

// SQLiteItemRepo implements ItemRepo using a SQLite database.
type SQLiteItemRepo struct {
	db db.DBTX
}

// NewSQLiteItemRepo accepts a *sql.DB or a transaction from db.UnitOfWork.
func NewSQLiteItemRepo(conn db.DBTX) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: conn}
}

const itemColumns = `id, name, cost, benefit, category, description`

func (r *SQLiteItemRepo) Create(ctx context.Context, it domain.Item) error {
	if it.ID() == "" {
		return fmt.Errorf("inserting item %q: id is required", it.Name())
	}
	now := nowUTC()
	query := `INSERT INTO items (id, name, cost, benefit, category, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		it.ID(),
		it.Name(),
		it.Cost(),
		it.Benefit(),
		it.Category(),
		it.Description(),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`
	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Item{}, fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	return it, err
}

// List returns items in the order they were added.
func (r *SQLiteItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

func (r *SQLiteItemRepo) UpdateBenefit(ctx context.Context, id string, benefit float64) error {
	query := `UPDATE items SET benefit = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, benefit, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating item benefit: %w", err)
	}
	return requireAffected(res, id)
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return requireAffected(res, id)
}

// DeleteAll removes every item and reports how many were removed.
func (r *SQLiteItemRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items`)
	if err != nil {
		return 0, fmt.Errorf("clearing items: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared items: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem rebuilds an item through domain.NewItem so stored rows pass the
// same validation as fresh input.
func scanItem(row rowScanner) (domain.Item, error) {
	var (
		id, name, category, description string
		cost, benefit                   float64
	)
	if err := row.Scan(&id, &name, &cost, &benefit, &category, &description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Item{}, err
		}
		return domain.Item{}, fmt.Errorf("scanning item: %w", err)
	}
	it, err := domain.NewItem(name, cost, benefit, category, description)
	if err != nil {
		return domain.Item{}, fmt.Errorf("stored item %s: %w", id, err)
	}
	return it.WithID(id), nil
}

func requireAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	return nil
}

// timestampLayout is fixed-width so created_at sorts lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func nowUTC() string {
	return time.Now().UTC().Format(timestampLayout)
}
