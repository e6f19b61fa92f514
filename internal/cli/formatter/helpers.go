package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CurrencySymbol prefixes every money amount.
const CurrencySymbol = "₱"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Money formats v with two decimals and comma thousands separators,
// e.g. ₱1,234,567.50.
func Money(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + CurrencySymbol + b.String() + "." + frac
}

// Score formats a benefit score or ratio.
func Score(v float64, decimals int) string {
	return fmt.Sprintf("%.*f", decimals, v)
}

// Percent formats a 0-100 percentage with one decimal.
func Percent(pct float64) string {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return "--"
	}
	return fmt.Sprintf("%.1f%%", pct)
}

// TruncID shortens a UUID to its first 8 characters for display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
