package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/budgetwise/internal/cli/formatter"
	"github.com/alexanderramin/budgetwise/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// budgetwiseHuhTheme styles huh forms with the formatter palette.
func budgetwiseHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// addItemFields holds the raw form values for a new item.
type addItemFields struct {
	Name, Cost, Benefit, Category, Description string
}

// wizardAddItem asks for every add-item field. Prefilled values from flags
// are kept as defaults.
func wizardAddItem(f *addItemFields) *huh.Form {
	categories := make([]huh.Option[string], 0, len(domain.Categories))
	for _, c := range domain.Categories {
		categories = append(categories, huh.NewOption(c, c))
	}
	if f.Category == "" {
		f.Category = domain.Categories[0]
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Value(&f.Name).
				Validate(validateRequired("project name")),
			huh.NewInput().
				Title("Cost").
				Placeholder("100000").
				Value(&f.Cost).
				Validate(validatePositiveAmount),
			huh.NewInput().
				Title("Benefit Score (0-10)").
				Placeholder("7.5").
				Value(&f.Benefit).
				Validate(validateBenefitScore),
			huh.NewSelect[string]().
				Title("Category").
				Options(categories...).
				Value(&f.Category),
			huh.NewText().
				Title("Description").
				Value(&f.Description),
		),
	).WithTheme(budgetwiseHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(budgetwiseHuhTheme()).WithShowHelp(false)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validatePositiveAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	return domain.ValidateCost(v)
}

func validateBenefitScore(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number between 0 and 10")
	}
	return domain.ValidateBenefit(v)
}
