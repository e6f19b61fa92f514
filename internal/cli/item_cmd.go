package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/budgetwise/internal/cli/formatter"
	"github.com/alexanderramin/budgetwise/internal/service"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "item",
		Aliases: []string{"items"},
		Short:   "Manage the candidate project portfolio",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemInspectCmd(app),
		newItemSetBenefitCmd(app),
		newItemRemoveCmd(app),
		newItemClearCmd(app),
		newItemImportCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var f addItemFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a candidate project",
		Example: `  budgetwise item add --name "Flood Wall" --cost 250000 --benefit 8.5 --category Infrastructure`,
		RunE: func(cmd *cobra.Command, args []string) error {
			missing := missingFlags(cmd, "name", "cost", "benefit", "category")
			if len(missing) > 0 {
				if !app.interactive() {
					return fmt.Errorf("missing required flags: --%s", strings.Join(missing, ", --"))
				}
				if err := wizardAddItem(&f).Run(); err != nil {
					return err
				}
			}

			in, err := parseAddItemFields(f)
			if err != nil {
				return err
			}
			it, err := app.Items.Add(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s (cost %s, benefit %s)\n",
				formatter.Bold(it.Name()), formatter.Dim("["+it.DisplayID()+"]"),
				formatter.Money(it.Cost()), formatter.Score(it.Benefit(), 2))
			return nil
		},
	}

	cmd.Flags().StringVar(&f.Name, "name", "", "Project name")
	cmd.Flags().StringVar(&f.Cost, "cost", "", "Project cost (positive amount)")
	cmd.Flags().StringVar(&f.Benefit, "benefit", "", "Benefit score from 0 to 10")
	cmd.Flags().StringVar(&f.Category, "category", "", "Category (Infrastructure, Health, Education, Environment, Social Services, Economic Development)")
	cmd.Flags().StringVar(&f.Description, "description", "", "Optional description")

	return cmd
}

func missingFlags(cmd *cobra.Command, names ...string) []string {
	var missing []string
	for _, n := range names {
		if !cmd.Flags().Changed(n) {
			missing = append(missing, n)
		}
	}
	return missing
}

func parseAddItemFields(f addItemFields) (service.NewItemInput, error) {
	cost, err := strconv.ParseFloat(strings.TrimSpace(f.Cost), 64)
	if err != nil {
		return service.NewItemInput{}, fmt.Errorf("invalid cost %q: enter a number", f.Cost)
	}
	benefit, err := strconv.ParseFloat(strings.TrimSpace(f.Benefit), 64)
	if err != nil {
		return service.NewItemInput{}, fmt.Errorf("invalid benefit %q: enter a number between 0 and 10", f.Benefit)
	}
	return service.NewItemInput{
		Name:        f.Name,
		Cost:        cost,
		Benefit:     benefit,
		Category:    f.Category,
		Description: f.Description,
	}, nil
}

func newItemListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the portfolio",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Items.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatItemList(items))
			return nil
		},
	}
}

func newItemInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>",
		Short: "Show one item and its emergency priority levels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveItemID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			it, err := app.Items.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatItemInspect(it))
			return nil
		},
	}
}

func newItemSetBenefitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-benefit <id> <benefit>",
		Short: "Change an item's benefit score",
		Example: `  budgetwise item set-benefit 3f2a 7.5
  budgetwise item set-benefit -- 3f2a 7.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			benefit, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid benefit %q: enter a number between 0 and 10", args[1])
			}
			id, err := resolveItemID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			it, err := app.Items.SetBenefit(cmd.Context(), id, benefit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: benefit %s, ratio %s\n",
				formatter.Bold(it.Name()), formatter.Score(it.Benefit(), 2), formatter.Score(it.BenefitCostRatio(), 6))
			return nil
		},
	}
	// Everything after the id is positional, so "-1" reaches benefit
	// validation instead of being read as a shorthand flag.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove an item from the portfolio",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveItemID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			it, err := app.Items.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			ok, err := confirm(app, force, fmt.Sprintf("Remove %q?", it.Name()))
			if err != nil || !ok {
				return err
			}

			if err := app.Items.Remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", formatter.Bold(it.Name()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	return cmd
}

func newItemClearCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every item from the portfolio",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(app, force, "Remove all items from the portfolio?")
			if err != nil || !ok {
				return err
			}

			n, err := app.Items.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d items\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	return cmd
}

// confirm returns true when force is set or the user agrees. Without a
// terminal a destructive command needs --force.
func confirm(app *App, force bool, title string) (bool, error) {
	if force {
		return true, nil
	}
	if !app.interactive() {
		return false, fmt.Errorf("refusing to delete without confirmation (use --force)")
	}
	var ok bool
	if err := wizardConfirm(title, &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

func newItemImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Add items from a YAML or JSON portfolio file",
		Long: `Reads a portfolio file and stores every item in one transaction.
Files ending in .json are parsed as JSON, anything else as YAML:

  items:
    - name: Flood Wall
      cost: 250000
      benefit: 8.5
      category: Infrastructure
      description: optional`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items\n", len(result.Items))
			return nil
		},
	}
}
