// Package cmd contains all CLI commands for the decksmith binary.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/decklab/decksmith/cmd/completion"
	cmdconfig "github.com/decklab/decksmith/cmd/config"
	"github.com/decklab/decksmith/cmd/demo"
	cmdexport "github.com/decklab/decksmith/cmd/export"
	"github.com/decklab/decksmith/cmd/inspect"
	"github.com/decklab/decksmith/cmd/superstore"
	"github.com/decklab/decksmith/cmd/version"
	cmdwatch "github.com/decklab/decksmith/cmd/watch"
)

var (
	jsonOutput bool
	noColor    bool
)

// NewRootCommand creates and returns the root cobra command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "decksmith",
		Short: "Generate PowerPoint decks from data",
		Long: `Decksmith — analysis decks straight from the terminal.

Builds .pptx reports from CSV or Excel data: pivot tables with sparklines,
stacked sales charts, customer profiles, and boxplot images. Decks are
rebuilt the same way every time, so a refresh is one command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
			if jsonOutput {
				// Progress rendering keys off this to stay out of piped output.
				os.Setenv("DECKSMITH_JSON", "true")
			}
		},
	}

	// Global persistent flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as machine-readable JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable ANSI color output")

	// Register subcommands
	rootCmd.AddCommand(demo.NewCommand())
	rootCmd.AddCommand(superstore.NewCommand())
	rootCmd.AddCommand(inspect.NewCommand())
	rootCmd.AddCommand(cmdexport.NewCommand())
	rootCmd.AddCommand(cmdwatch.NewCommand())
	rootCmd.AddCommand(cmdconfig.NewCommand())
	rootCmd.AddCommand(completion.NewCommand(rootCmd))
	rootCmd.AddCommand(version.NewCommand())

	return rootCmd
}

// Execute runs the root command and handles any returned errors.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
