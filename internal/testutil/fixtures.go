package testutil

import (
	"testing"

	"github.com/alexanderramin/budgetwise/internal/domain"
	"github.com/google/uuid"
)

type itemSpec struct {
	cost        float64
	benefit     float64
	category    string
	description string
	id          string
}

// ItemOption customizes NewTestItem.
type ItemOption func(*itemSpec)

func WithCost(c float64) ItemOption {
	return func(s *itemSpec) { s.cost = c }
}

func WithBenefit(b float64) ItemOption {
	return func(s *itemSpec) { s.benefit = b }
}

func WithCategory(c string) ItemOption {
	return func(s *itemSpec) { s.category = c }
}

func WithDescription(d string) ItemOption {
	return func(s *itemSpec) { s.description = d }
}

// WithoutID leaves the item unbound to the store.
func WithoutID() ItemOption {
	return func(s *itemSpec) { s.id = "" }
}

// NewTestItem builds a valid item with a fresh ID. Defaults: cost 100,
// benefit 5, category Infrastructure.
func NewTestItem(t *testing.T, name string, opts ...ItemOption) domain.Item {
	t.Helper()
	spec := itemSpec{
		cost:     100,
		benefit:  5,
		category: domain.CategoryInfrastructure,
		id:       uuid.New().String(),
	}
	for _, opt := range opts {
		opt(&spec)
	}
	it, err := domain.NewItem(name, spec.cost, spec.benefit, spec.category, spec.description)
	if err != nil {
		t.Fatalf("building test item %q: %v", name, err)
	}
	return it.WithID(spec.id)
}
