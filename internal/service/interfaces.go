package service

import (
	"context"

	"github.com/alexanderramin/budgetwise/internal/contract"
	"github.com/alexanderramin/budgetwise/internal/domain"
	"github.com/alexanderramin/budgetwise/internal/importer"
)

// NewItemInput carries unvalidated add-item fields from the CLI or a form.
type NewItemInput struct {
	Name        string
	Cost        float64
	Benefit     float64
	Category    string
	Description string
}

type ItemService interface {
	Add(ctx context.Context, in NewItemInput) (domain.Item, error)
	GetByID(ctx context.Context, id string) (domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	SetBenefit(ctx context.Context, id string, benefit float64) (domain.Item, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) (int64, error)
}

// ImportResult holds the items stored by an import, in file order.
type ImportResult struct {
	Items []domain.Item
}

type ImportService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportPortfolio(ctx context.Context, pf *importer.PortfolioFile) (*ImportResult, error)
}

type AllocationService interface {
	Optimize(ctx context.Context, req contract.AllocationRequest) (*contract.AllocationResponse, error)
}
