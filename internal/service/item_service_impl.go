package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/budgetwise/internal/domain"
	"github.com/alexanderramin/budgetwise/internal/repository"
	"github.com/google/uuid"
)

type itemService struct {
	items    repository.ItemRepo
	observer UseCaseObserver
}

func NewItemService(items repository.ItemRepo, observers ...UseCaseObserver) ItemService {
	return &itemService{items: items, observer: useCaseObserverOrNoop(observers)}
}

func (s *itemService) Add(ctx context.Context, in NewItemInput) (it domain.Item, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"name": in.Name, "category": in.Category}
	defer func() { observe(ctx, s.observer, "add-item", startedAt, err, fields) }()

	it, err = buildItem(in)
	if err != nil {
		return domain.Item{}, err
	}
	it = it.WithID(uuid.New().String())
	fields["id"] = it.ID()

	if err = s.items.Create(ctx, it); err != nil {
		return domain.Item{}, err
	}
	return it, nil
}

// buildItem applies the add-item rules: name and category are required,
// then cost and benefit are checked by domain.NewItem.
func buildItem(in NewItemInput) (domain.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Item{}, fmt.Errorf("item name is required")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return domain.Item{}, fmt.Errorf("item category is required")
	}
	return domain.NewItem(name, in.Cost, in.Benefit, category, strings.TrimSpace(in.Description))
}

func (s *itemService) GetByID(ctx context.Context, id string) (domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

func (s *itemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.items.List(ctx)
}

func (s *itemService) SetBenefit(ctx context.Context, id string, benefit float64) (domain.Item, error) {
	current, err := s.items.GetByID(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}
	updated, err := current.WithBenefit(benefit)
	if err != nil {
		return domain.Item{}, err
	}
	if err := s.items.UpdateBenefit(ctx, id, benefit); err != nil {
		return domain.Item{}, err
	}
	return updated, nil
}

func (s *itemService) Remove(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

func (s *itemService) Clear(ctx context.Context) (n int64, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "clear-items", startedAt, err, map[string]any{"removed": n})
	}()

	return s.items.DeleteAll(ctx)
}
