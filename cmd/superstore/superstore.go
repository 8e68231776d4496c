// Package superstore provides the "decksmith superstore" command.
package superstore

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/decklab/decksmith/internal/compose"
	"github.com/decklab/decksmith/internal/config"
	"github.com/decklab/decksmith/internal/dataset"
	"github.com/decklab/decksmith/internal/output"
	"github.com/decklab/decksmith/internal/progress"
)

// NewCommand returns the superstore subcommand.
func NewCommand() *cobra.Command {
	var (
		dataPath   string
		planPath   string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "superstore",
		Short: "Generate the retail analysis deck from an orders dataset",
		Long: `Builds the full superstore analysis deck from a CSV or Excel orders
export: quarterly pivot tables with year-over-year growth, sales mix,
sparkline trends, a monthly sales chart, top-customer profiles, and a
ship-mode delivery comparison.

The slide order is driven by a plan. The built-in plan mirrors the standard
review deck; pass --plan to supply a YAML plan of your own.`,
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
			spinner.Stop(fmt.Sprintf("Loaded %d rows", data.Len()))

			spinner = progress.NewSpinner(fmt.Sprintf("Building %d slides...", len(plan)))
			spinner.Start()
			prs, err := compose.BuildSuperstoreDeck(data, plan)
			if err != nil {
				spinner.Stop("failed")
				return fmt.Errorf("could not build deck: %w", err)
			}

			abs, err := filepath.Abs(outputPath)
			if err != nil {
				return fmt.Errorf("could not resolve output path: %w", err)
			}
			if err := prs.SaveTo(abs); err != nil {
				spinner.Stop("failed")
				return err
			}
			spinner.Stop(fmt.Sprintf("Wrote %s", abs))

			if jsonFlag {
				return output.PrintJSON("superstore", map[string]any{
					"path":   abs,
					"slides": len(prs.Slides),
					"rows":   data.Len(),
				})
			}

			fmt.Printf("Generated %s (%d slides from %d rows)\n", abs, len(prs.Slides), data.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Orders dataset, .csv or .xlsx (required)")
	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "YAML slide plan (default: built-in plan)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "superstore.pptx", "Output file path")

	return cmd
}
