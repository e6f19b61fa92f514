package service

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/budgetwise/internal/contract"
	"github.com/alexanderramin/budgetwise/internal/domain"
	"github.com/alexanderramin/budgetwise/internal/solver"
)

// topByCostLimit caps the "largest allocations" list.
const topByCostLimit = 10

func buildAllocationReport(budget float64, emergencyMode bool, emergencyType string, candidates int, sol solver.Solution, stats solver.Stats) *contract.AllocationResponse {
	resp := &contract.AllocationResponse{
		Budget:         budget,
		EmergencyMode:  emergencyMode,
		EmergencyType:  emergencyType,
		CandidateCount: candidates,
		Selected:       make([]contract.SelectedItem, 0, len(sol.SelectedItems)),
		TotalCost:      sol.TotalCost,
		TotalBenefit:   sol.TotalBenefit,
		Efficiency:     sol.Efficiency,
		UtilizationPct: sol.TotalCost / budget * 100,
		Remaining:      budget - sol.TotalCost,
		Search: contract.SearchStats{
			NodesExpanded: stats.NodesExpanded,
			NodesPushed:   stats.NodesPushed,
			NodesPruned:   stats.NodesPruned,
			MaxQueueLen:   stats.MaxQueueLen,
			Truncated:     stats.Truncated,
		},
	}

	for _, it := range sol.SelectedItems {
		resp.Selected = append(resp.Selected, selectedItem(it))
	}
	resp.Categories = categoryBreakdown(sol.SelectedItems, sol.TotalCost)
	if emergencyMode {
		resp.Priorities = priorityDistribution(sol.SelectedItems)
	}
	resp.TopByCost = topByCost(resp.Selected, topByCostLimit)
	return resp
}

func selectedItem(it domain.Item) contract.SelectedItem {
	return contract.SelectedItem{
		ID:            it.ID(),
		Name:          it.Name(),
		Cost:          it.Cost(),
		Benefit:       it.Benefit(),
		Ratio:         it.BenefitCostRatio(),
		Category:      it.Category(),
		PriorityLevel: it.EmergencyPriorityLevel(),
		PriorityLabel: it.PriorityLabel(),
	}
}

// categoryBreakdown groups items by category in order of first appearance.
func categoryBreakdown(items []domain.Item, totalCost float64) []contract.CategoryBreakdown {
	out := []contract.CategoryBreakdown{}
	index := make(map[string]int)
	for _, it := range items {
		i, ok := index[it.Category()]
		if !ok {
			i = len(out)
			index[it.Category()] = i
			out = append(out, contract.CategoryBreakdown{Category: it.Category()})
		}
		out[i].Count++
		out[i].Cost += it.Cost()
	}
	for i := range out {
		if totalCost > 0 {
			out[i].SharePct = out[i].Cost / totalCost * 100
		}
	}
	return out
}

// priorityDistribution counts flagged items per level, then unflagged ones
// as "Normal". Empty buckets are omitted.
func priorityDistribution(items []domain.Item) []contract.PriorityCount {
	var levels [domain.LowestPriority + 1]int
	normal := 0
	for _, it := range items {
		if it.IsEmergencyPriority() {
			levels[it.EmergencyPriorityLevel()]++
		} else {
			normal++
		}
	}

	var out []contract.PriorityCount
	for level := 1; level <= domain.LowestPriority; level++ {
		if levels[level] > 0 {
			out = append(out, contract.PriorityCount{Label: fmt.Sprintf("Priority %d", level), Count: levels[level]})
		}
	}
	if normal > 0 {
		out = append(out, contract.PriorityCount{Label: "Normal", Count: normal})
	}
	return out
}

func topByCost(selected []contract.SelectedItem, limit int) []contract.SelectedItem {
	out := make([]contract.SelectedItem, len(selected))
	copy(out, selected)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cost > out[j].Cost })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
