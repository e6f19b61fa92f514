package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/budgetwise/internal/domain"
)

// ValidatePortfolio checks every item and returns all problems found.
func ValidatePortfolio(pf *PortfolioFile) []error {
	var errs []error

	if len(pf.Items) == 0 {
		errs = append(errs, fmt.Errorf("items: at least one item is required"))
	}

	for i, it := range pf.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		if strings.TrimSpace(it.Name) != "" {
			prefix = fmt.Sprintf("items[%d] (%s)", i, it.Name)
		} else {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if strings.TrimSpace(it.Category) == "" {
			errs = append(errs, fmt.Errorf("%s.category is required", prefix))
		}
		if it.Cost == nil {
			errs = append(errs, fmt.Errorf("%s.cost is required", prefix))
		} else if err := domain.ValidateCost(*it.Cost); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}
		if it.Benefit == nil {
			errs = append(errs, fmt.Errorf("%s.benefit is required", prefix))
		} else if err := domain.ValidateBenefit(*it.Benefit); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}
	}

	return errs
}

// Convert validates pf and builds unbound domain items in file order.
func Convert(pf *PortfolioFile) ([]domain.Item, error) {
	if errs := ValidatePortfolio(pf); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	items := make([]domain.Item, 0, len(pf.Items))
	for i, in := range pf.Items {
		it, err := domain.NewItem(strings.TrimSpace(in.Name), *in.Cost, *in.Benefit, strings.TrimSpace(in.Category), in.Description)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		items = append(items, it)
	}
	return items, nil
}
