package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/budgetwise/internal/contract"
)

const barWidth = 24

// FormatAllocation renders the optimization report: summary, selected
// items in search order, category breakdown, priority distribution,
// largest allocations and search statistics.
func FormatAllocation(resp *contract.AllocationResponse) string {
	var b strings.Builder

	if resp.EmergencyMode {
		mode := "EMERGENCY MODE"
		if resp.EmergencyType != "" {
			mode += ": " + resp.EmergencyType
		}
		b.WriteString(StyleRed.Render(mode) + "\n")
		b.WriteString(Dim("Priority given to critical infrastructure and services") + "\n\n")
	}

	b.WriteString(formatSummary(resp))

	b.WriteString("\n" + Header("Selected items") + "\n")
	if len(resp.Selected) == 0 {
		b.WriteString(Dim("No item fits within the budget.") + "\n")
	} else {
		b.WriteString(formatSelected(resp.Selected))
	}

	if len(resp.Categories) > 0 {
		b.WriteString("\n" + Header("Category breakdown") + "\n")
		b.WriteString(formatCategories(resp.Categories))
	}

	if len(resp.Priorities) > 0 {
		b.WriteString("\n" + Header("Priority distribution") + "\n")
		for _, p := range resp.Priorities {
			fmt.Fprintf(&b, "%-12s %d\n", p.Label, p.Count)
		}
	}

	if len(resp.TopByCost) > 1 {
		b.WriteString("\n" + Header("Largest allocations") + "\n")
		for i, s := range resp.TopByCost {
			fmt.Fprintf(&b, "%2d. %s  %s\n", i+1, s.Name, Money(s.Cost))
		}
	}

	b.WriteString("\n" + formatSearch(resp))

	return RenderBox("Budget allocation", strings.TrimRight(b.String(), "\n"))
}

func formatSummary(resp *contract.AllocationResponse) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render(fmt.Sprintf("%-15s", label)), value)
	}
	line("Total budget", Money(resp.Budget))
	line("Allocated", fmt.Sprintf("%s (%s)", Money(resp.TotalCost), Percent(resp.UtilizationPct)))
	line("Remaining", Money(resp.Remaining))
	line("Total benefit", Score(resp.TotalBenefit, 2))
	line("Efficiency", Score(resp.Efficiency, 3))
	line("Utilization", RenderUtilization(resp.UtilizationPct/100, barWidth))
	line("Candidates", fmt.Sprintf("%d considered, %d selected", resp.CandidateCount, len(resp.Selected)))
	return b.String()
}

func formatSelected(selected []contract.SelectedItem) string {
	headers := []string{"NAME", "COST", "BENEFIT", "CATEGORY", "PRIORITY"}
	rows := make([][]string, 0, len(selected))
	for _, s := range selected {
		rows = append(rows, []string{
			Bold(s.Name),
			Money(s.Cost),
			Score(s.Benefit, 2),
			CategoryBadge(s.Category),
			PriorityBadge(s.PriorityLabel, s.PriorityLevel, s.PriorityLabel != "Normal"),
		})
	}
	return RenderTableAligned(headers, rows, []bool{false, true, true, false, false})
}

func formatCategories(cats []contract.CategoryBreakdown) string {
	headers := []string{"CATEGORY", "ITEMS", "COST", "SHARE"}
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{
			CategoryBadge(c.Category),
			fmt.Sprintf("%d", c.Count),
			Money(c.Cost),
			RenderShareBar(c.SharePct/100, 12) + " " + Percent(c.SharePct),
		})
	}
	return RenderTableAligned(headers, rows, []bool{false, true, true, false})
}

func formatSearch(resp *contract.AllocationResponse) string {
	s := resp.Search
	text := fmt.Sprintf("search: %d nodes expanded, %d pushed, %d pruned, max queue %d",
		s.NodesExpanded, s.NodesPushed, s.NodesPruned, s.MaxQueueLen)
	if s.Truncated {
		return StyleYellow.Render(text + " (stopped at node limit, result may not be optimal)")
	}
	return Dim(text)
}
