package solver

import "github.com/alexanderramin/budgetwise/internal/domain"

// emergencyBonusStep is the per-level bonus: priority 1 adds 2.5, priority 5 adds 0.5.
const emergencyBonusStep = 0.5

// EffectiveBenefit is the benefit used inside search arithmetic. In emergency
// mode flagged items earn a bonus that grows with urgency. Reported totals
// never include the bonus.
func EffectiveBenefit(it domain.Item, emergencyMode bool) float64 {
	b := it.Benefit()
	if emergencyMode && it.IsEmergencyPriority() {
		b += float64(6-it.EmergencyPriorityLevel()) * emergencyBonusStep
	}
	return b
}

// bound is the fractional-relaxation estimate of the best profit reachable
// from n: items after n.level are taken greedily in search order while they
// fit, then a fraction of the first one that does not.
//
// In emergency mode the search order is not ratio order, so the value can
// fall below the true optimum of the subtree.
func bound(n *node, items []domain.Item, budget float64, emergencyMode bool) float64 {
	if n.cost >= budget {
		return 0
	}

	est := n.profit
	remaining := budget - n.cost
	level := n.level + 1

	for level < len(items) && items[level].Cost() <= remaining {
		est += EffectiveBenefit(items[level], emergencyMode)
		remaining -= items[level].Cost()
		level++
	}

	if level < len(items) {
		est += (remaining / items[level].Cost()) * EffectiveBenefit(items[level], emergencyMode)
	}

	return est
}
