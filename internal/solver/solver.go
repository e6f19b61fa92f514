// Package solver selects the subset of items that maximizes total benefit
// within a budget using best-first branch-and-bound.
package solver

import (
	"github.com/alexanderramin/budgetwise/internal/domain"
)

// Solution is the outcome of a single solve. SelectedItems follow search
// order, not input order.
type Solution struct {
	SelectedItems []domain.Item
	TotalCost     float64
	TotalBenefit  float64
	Efficiency    float64
}

// Options tunes a solve. The zero value reproduces the unbounded search.
type Options struct {
	// NodeLimit caps the number of expanded nodes. When reached, the best
	// selection found so far is returned and Stats.Truncated is set.
	// Zero means unlimited.
	NodeLimit int
}

// Stats describes the work done by one solve.
type Stats struct {
	NodesExpanded int
	NodesPushed   int
	NodesPruned   int
	MaxQueueLen   int
	Truncated     bool
}

// SolveKnapsack returns the best-known subset of items whose total cost fits
// within budget. Items are not modified; the search runs on a sorted copy.
func SolveKnapsack(items []domain.Item, budget float64, emergencyMode bool) Solution {
	sol, _ := SolveWithOptions(items, budget, emergencyMode, Options{})
	return sol
}

// SolveWithOptions is SolveKnapsack with a safety valve and search statistics.
func SolveWithOptions(items []domain.Item, budget float64, emergencyMode bool, opts Options) (Solution, Stats) {
	var stats Stats

	sorted := OrderItems(items, emergencyMode)
	n := len(sorted)
	if n == 0 {
		return Solution{}, stats
	}

	q := &nodeQueue{}
	push := func(nd *node) {
		q.push(nd)
		stats.NodesPushed++
		if q.Len() > stats.MaxQueueLen {
			stats.MaxQueueLen = q.Len()
		}
	}

	root := &node{level: -1, selected: make([]bool, n)}
	root.bound = bound(root, sorted, budget, emergencyMode)
	push(root)

	bestProfit := 0.0
	bestSelection := make([]bool, n)

	for q.Len() > 0 {
		if opts.NodeLimit > 0 && stats.NodesExpanded >= opts.NodeLimit {
			stats.Truncated = true
			break
		}

		current := q.pop()
		if current.bound <= bestProfit {
			stats.NodesPruned++
			continue
		}

		next := current.level + 1
		if next >= n {
			continue
		}
		stats.NodesExpanded++
		it := sorted[next]

		// Include the next item if it fits.
		if current.cost+it.Cost() <= budget {
			selected := make([]bool, n)
			copy(selected, current.selected)
			selected[next] = true

			include := &node{
				level:    next,
				profit:   current.profit + EffectiveBenefit(it, emergencyMode),
				cost:     current.cost + it.Cost(),
				selected: selected,
			}
			if include.profit > bestProfit {
				bestProfit = include.profit
				copy(bestSelection, include.selected)
			}
			include.bound = bound(include, sorted, budget, emergencyMode)
			if include.bound > bestProfit {
				push(include)
			} else {
				stats.NodesPruned++
			}
		}

		// Exclude the next item. The mask is shared with the parent since
		// neither node writes to it again.
		exclude := &node{
			level:    next,
			profit:   current.profit,
			cost:     current.cost,
			selected: current.selected,
		}
		exclude.bound = bound(exclude, sorted, budget, emergencyMode)
		if exclude.bound > bestProfit {
			push(exclude)
		} else {
			stats.NodesPruned++
		}
	}

	return buildSolution(sorted, bestSelection), stats
}

func buildSolution(sorted []domain.Item, selection []bool) Solution {
	var sol Solution
	for i, picked := range selection {
		if !picked {
			continue
		}
		sol.SelectedItems = append(sol.SelectedItems, sorted[i])
		sol.TotalCost += sorted[i].Cost()
		sol.TotalBenefit += sorted[i].Benefit()
	}
	if sol.TotalCost > 0 {
		sol.Efficiency = sol.TotalBenefit / sol.TotalCost
	}
	return sol
}
