// Package watch provides the "decksmith watch" command.
package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/decklab/decksmith/internal/compose"
	"github.com/decklab/decksmith/internal/config"
	"github.com/decklab/decksmith/internal/dataset"
	w "github.com/decklab/decksmith/internal/watch"
)

// NewCommand returns the watch subcommand.
func NewCommand() *cobra.Command {
	var (
		dataPath   string
		planPath   string
		outputPath string
		debounce   int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the superstore deck whenever the dataset changes",
		Long: `Builds the superstore deck once, then watches the dataset file and
rebuilds the deck after every save. Useful while the source data is still
being cleaned up in a spreadsheet.

Example:
  decksmith watch --data orders.xlsx --output review.pptx`,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if !cmd.Flags().Changed("debounce") && cfg != nil && cfg.Watch.Debounce > 0 {
				debounce = cfg.Watch.Debounce
			}

			plan := compose.DefaultPlan()
			if planPath != "" {
				var err error
				plan, err = compose.LoadPlan(planPath)
				if err != nil {
					return err
				}
			}

			abs, err := filepath.Abs(outputPath)
			if err != nil {
				return fmt.Errorf("could not resolve output path: %w", err)
			}

			rebuild := func(path string) error {
				data, err := dataset.LoadSuperstore(path)
				if err != nil {
					return err
				}
				prs, err := compose.BuildSuperstoreDeck(data, plan)
				if err != nil {
					return err
				}
				return prs.SaveTo(abs)
			}

			// Initial build so the output exists before the first change.
			if err := rebuild(dataPath); err != nil {
				return err
			}
			fmt.Printf("Generated %s\n", abs)

			watcher, err := w.New(w.Config{Path: dataPath, Debounce: debounce})
			if err != nil {
				return err
			}
			watcher.Handler = rebuild

			fmt.Printf("Watching %s — press Ctrl+C to stop\n", dataPath)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				fmt.Println("\nStopping watcher...")
				cancel()
			}()

			return watcher.Start(ctx)
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Orders dataset, .csv or .xlsx (required)")
	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "YAML slide plan (default: built-in plan)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "superstore.pptx", "Output file path")
	cmd.Flags().IntVar(&debounce, "debounce", 500, "Debounce interval in milliseconds")

	return cmd
}
