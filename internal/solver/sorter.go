package solver

import (
	"sort"

	"github.com/alexanderramin/budgetwise/internal/domain"
)

// OrderItems returns a sorted copy of items in search order. The input slice
// is left untouched.
//
// Normal mode: benefit/cost ratio, highest first.
// Emergency mode:
// 1. Emergency-flagged items before unflagged items
// 2. Flagged items: priority level ascending (1 is most urgent)
// 3. Ratio: highest first
//
// Equal keys keep their input order.
func OrderItems(items []domain.Item, emergencyMode bool) []domain.Item {
	sorted := make([]domain.Item, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if emergencyMode {
			// 1. Flag
			if a.IsEmergencyPriority() != b.IsEmergencyPriority() {
				return a.IsEmergencyPriority()
			}
			// 2. Priority level
			if a.IsEmergencyPriority() && a.EmergencyPriorityLevel() != b.EmergencyPriorityLevel() {
				return a.EmergencyPriorityLevel() < b.EmergencyPriorityLevel()
			}
		}

		// 3. Ratio (higher first)
		return a.BenefitCostRatio() > b.BenefitCostRatio()
	})

	return sorted
}
