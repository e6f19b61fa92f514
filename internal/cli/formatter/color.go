package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityStyle colors an emergency priority level from red (1) to dim (5).
func PriorityStyle(level int) lipgloss.Style {
	switch level {
	case 1:
		return StyleRed
	case 2:
		return StyleHeader
	case 3:
		return StyleYellow
	case 4:
		return StyleBlue
	default:
		return StyleDim
	}
}

// PriorityBadge renders a priority label such as "Emergency P1". Unflagged
// items render as a dim "Normal".
func PriorityBadge(label string, level int, flagged bool) string {
	if !flagged {
		return StyleDim.Render(label)
	}
	return PriorityStyle(level).Render("● " + label)
}

// CategoryBadge renders a category in a stable color.
func CategoryBadge(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "infrastructure":
		return StyleHeader.Render(category)
	case "health":
		return StyleRed.Render(category)
	case "education":
		return StyleBlue.Render(category)
	case "environment":
		return StyleGreen.Render(category)
	case "social services":
		return StylePurple.Render(category)
	case "economic development":
		return StyleYellow.Render(category)
	default:
		return StyleFg.Render(category)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
