package cli

import (
	"github.com/alexanderramin/budgetwise/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and session settings used by CLI commands.
type App struct {
	Items      service.ItemService
	Import     service.ImportService
	Allocation service.AllocationService

	// DefaultEmergencyType is used by optimize when --type is not given.
	DefaultEmergencyType string

	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "budgetwise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "budgetwise",
		Short: "Budget allocation optimizer for public project portfolios",
		Long: `budgetwise picks the set of candidate projects that delivers the most
benefit within a budget, using branch-and-bound search. Emergency mode
ranks projects by urgency for the declared emergency type first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newItemCmd(app),
		newOptimizeCmd(app),
		newEmergencyTypesCmd(),
	)

	return root
}
