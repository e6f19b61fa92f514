package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/budgetwise/internal/domain"
)

// FormatItemList renders the portfolio as a boxed table in insertion order.
func FormatItemList(items []domain.Item) string {
	if len(items) == 0 {
		return RenderBox("Portfolio", Dim("No items yet. Add one with 'budgetwise item add'."))
	}

	headers := []string{"ID", "NAME", "COST", "BENEFIT", "RATIO", "CATEGORY"}
	rows := make([][]string, 0, len(items))
	total := 0.0
	for _, it := range items {
		total += it.Cost()
		rows = append(rows, []string{
			Dim(it.DisplayID()),
			Bold(it.Name()),
			Money(it.Cost()),
			Score(it.Benefit(), 2),
			Score(it.BenefitCostRatio(), 4),
			CategoryBadge(it.Category()),
		})
	}

	table := RenderTableAligned(headers, rows, []bool{false, false, true, true, true, false})
	footer := Dim(fmt.Sprintf("%d items, %s requested", len(items), Money(total)))
	return RenderBox("Portfolio", table+"\n"+footer)
}

// FormatItemInspect renders one item's details.
func FormatItemInspect(it domain.Item) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(it.Name()) + "\n")
	b.WriteString(CategoryBadge(it.Category()) + "\n\n")

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render(fmt.Sprintf("%-8s", label)), value)
	}
	field("ID", it.ID())
	field("COST", Money(it.Cost()))
	field("BENEFIT", Score(it.Benefit(), 2)+Dim(" / 10"))
	field("RATIO", Score(it.BenefitCostRatio(), 6))
	field("PRIORITY", emergencyLevels(it.Category()))
	if it.Description() != "" {
		b.WriteString("\n" + StyleFg.Render(it.Description()) + "\n")
	}
	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}

// emergencyLevels shows the priority the item's category would get with no
// specific emergency, in a health crisis and in a natural disaster.
func emergencyLevels(category string) string {
	parts := make([]string, 0, 3)
	for _, c := range []struct {
		label string
		et    domain.EmergencyType
	}{
		{"general", ""},
		{"health crisis", domain.EmergencyHealthCrisis},
		{"disaster", domain.EmergencyTyphoon},
	} {
		level := domain.EmergencyPriorityFor(category, string(c.et))
		parts = append(parts, Dim(c.label+" ")+PriorityStyle(level).Render(fmt.Sprintf("P%d", level)))
	}
	return strings.Join(parts, Dim(" · "))
}
