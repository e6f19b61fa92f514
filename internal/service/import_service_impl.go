package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/budgetwise/internal/db"
	"github.com/alexanderramin/budgetwise/internal/domain"
	"github.com/alexanderramin/budgetwise/internal/importer"
	"github.com/alexanderramin/budgetwise/internal/repository"
	"github.com/google/uuid"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService stores imported items through uow so a failed import
// leaves the portfolio untouched.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	pf, err := importer.LoadPortfolioFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportPortfolio(ctx, pf)
}

func (s *importService) ImportPortfolio(ctx context.Context, pf *importer.PortfolioFile) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"items_in_file": len(pf.Items)}
	defer func() { observe(ctx, s.observer, "import-portfolio", startedAt, err, fields) }()

	if errs := importer.ValidatePortfolio(pf); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	var items []domain.Item
	items, err = importer.Convert(pf)
	if err != nil {
		return nil, fmt.Errorf("converting portfolio file: %w", err)
	}
	for i := range items {
		items[i] = items[i].WithID(uuid.New().String())
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteItemRepo(tx)
		for _, it := range items {
			if err := repo.Create(ctx, it); err != nil {
				return fmt.Errorf("creating item %q: %w", it.Name(), err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["imported"] = len(items)
	return &ImportResult{Items: items}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
