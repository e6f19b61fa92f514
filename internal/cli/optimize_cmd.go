package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/budgetwise/internal/cli/formatter"
	"github.com/alexanderramin/budgetwise/internal/contract"
	"github.com/alexanderramin/budgetwise/internal/domain"
	"github.com/alexanderramin/budgetwise/internal/importer"
	"github.com/spf13/cobra"
)

func newOptimizeCmd(app *App) *cobra.Command {
	var (
		budget    float64
		emergency bool
		file      string
		asJSON    bool
		eType     emergencyTypeFlag
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Select the projects that maximize benefit within a budget",
		Example: `  budgetwise optimize --budget 500000
  budgetwise optimize --budget 500000 --emergency --type "Health Crisis"
  budgetwise optimize --budget 1200 --file candidates.yaml --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.AllocationRequest{
				Budget:        budget,
				EmergencyMode: emergency || cmd.Flags().Changed("type"),
			}
			if req.EmergencyMode {
				req.EmergencyType = string(eType.value)
				if !cmd.Flags().Changed("type") {
					req.EmergencyType = app.DefaultEmergencyType
				}
			}

			if file != "" {
				pf, err := importer.LoadPortfolioFile(file)
				if err != nil {
					return fmt.Errorf("loading portfolio file: %w", err)
				}
				items, err := importer.Convert(pf)
				if err != nil {
					return err
				}
				req.Items = items
			}

			resp, err := app.Allocation.Optimize(cmd.Context(), req)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAllocation(resp))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&budget, "budget", "b", 0, "Total budget available")
	cmd.Flags().BoolVarP(&emergency, "emergency", "e", false, "Rank projects by emergency priority first")
	cmd.Flags().Var(&eType, "type", "Emergency type: "+emergencyTypeList()+" (implies --emergency)")
	cmd.Flags().StringVar(&file, "file", "", "Optimize the items in this YAML/JSON file instead of the stored portfolio")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func newEmergencyTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "emergency-types",
		Short: "List emergency types and the categories they prioritize",
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"TYPE"}
			for _, c := range domain.Categories {
				headers = append(headers, c)
			}
			types := append([]domain.EmergencyType{""}, domain.EmergencyTypes...)
			rows := make([][]string, 0, len(types))
			for _, t := range types {
				name := string(t)
				if name == "" {
					name = "(general)"
				}
				row := []string{formatter.Bold(name)}
				for _, c := range domain.Categories {
					level := domain.EmergencyPriorityFor(c, string(t))
					row = append(row, formatter.PriorityStyle(level).Render(fmt.Sprintf("P%d", level)))
				}
				rows = append(rows, row)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Emergency priorities", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}
