// Package export provides the "decksmith export" command.
package export

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/decklab/decksmith/internal/compose"
	"github.com/decklab/decksmith/internal/config"
	"github.com/decklab/decksmith/internal/dataset"
	"github.com/decklab/decksmith/internal/export"
	"github.com/decklab/decksmith/internal/output"
	"github.com/decklab/decksmith/internal/progress"
)

// NewCommand returns the export subcommand.
func NewCommand() *cobra.Command {
	var (
		dataPath   string
		planPath   string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the derived summary tables to an Excel workbook",
		Long: `Computes the same pivot tables the superstore deck renders — quarterly
sales, year-over-year growth, and sales mix per pivot slide — and writes
them to an .xlsx workbook, three sheets per pivot.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			cfg, _ := config.Load()
			if dataPath == "" && cfg != nil {
				dataPath = cfg.Superstore.Data
			}
			if planPath == "" && cfg != nil {
				planPath = cfg.Superstore.Plan
			}
			if dataPath == "" {
				return fmt.Errorf("--data is required — provide a CSV or Excel orders export")
			}

			plan := compose.DefaultPlan()
			if planPath != "" {
				var err error
				plan, err = compose.LoadPlan(planPath)
				if err != nil {
					return err
				}
			}

			spinner := progress.NewSpinner(fmt.Sprintf("Loading %s...", filepath.Base(dataPath)))
			spinner.Start()
			data, err := dataset.LoadSuperstore(dataPath)
			if err != nil {
				spinner.Stop("failed")
				return err
			}

			abs, err := filepath.Abs(outputPath)
			if err != nil {
				return fmt.Errorf("could not resolve output path: %w", err)
			}
			if err := export.Workbook(abs, data, plan); err != nil {
				spinner.Stop("failed")
				return err
			}
			spinner.Stop(fmt.Sprintf("Wrote %s", abs))

			if jsonFlag {
				return output.PrintJSON("export", map[string]any{
					"path": abs,
					"rows": data.Len(),
				})
			}

			fmt.Printf("Exported summary tables to %s\n", abs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Orders dataset, .csv or .xlsx (required)")
	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "YAML slide plan (default: built-in plan)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "superstore.xlsx", "Output workbook path")

	return cmd
}
