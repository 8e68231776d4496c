// Package demo provides the "decksmith demo" command.
package demo

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/decklab/decksmith/internal/compose"
	"github.com/decklab/decksmith/internal/config"
	"github.com/decklab/decksmith/internal/output"
	"github.com/decklab/decksmith/internal/progress"
)

// NewCommand returns the demo subcommand.
func NewCommand() *cobra.Command {
	var (
		outputPath string
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate the feature-tour deck with synthetic data",
		Long: `Builds a seven-slide deck showcasing every deck element: text boxes,
shapes, a stacked column chart, tables with sparkline overlays, and an
embedded boxplot image. The data is synthetic and seeded, so the same seed
always produces the same deck.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			if !cmd.Flags().Changed("seed") {
				if cfg, err := config.Load(); err == nil {
					seed = cfg.Demo.Seed
				}
			}

			spinner := progress.NewSpinner("Building demo deck...")
			spinner.Start()

			prs, err := compose.BuildDemoDeck(seed)
			if err != nil {
				spinner.Stop("failed")
				return fmt.Errorf("could not build demo deck: %w", err)
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
				return output.PrintJSON("demo", map[string]any{
					"path":   abs,
					"slides": len(prs.Slides),
					"seed":   seed,
				})
			}

			fmt.Printf("Generated %s (%d slides, seed %d)\n", abs, len(prs.Slides), seed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "demo.pptx", "Output file path")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the synthetic dataset")

	return cmd
}
