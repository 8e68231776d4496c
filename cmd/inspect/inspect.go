// Package inspect provides the "decksmith inspect" command.
package inspect

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/decklab/decksmith/internal/deck"
	"github.com/decklab/decksmith/internal/output"
)

// NewCommand returns the inspect subcommand.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file.pptx>",
		Short: "Extract slide content from a PowerPoint file",
		Long:  "Reads a .pptx file and prints each slide's text and element counts, as text or JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			filePath := args[0]
			if !strings.HasSuffix(strings.ToLower(filePath), ".pptx") {
				return fmt.Errorf("expected a .pptx file, got %q", filePath)
			}

			info, err := deck.ReadFile(filePath)
			if err != nil {
				return err
			}

			if jsonFlag {
				return output.PrintJSON("inspect", info)
			}

			content := renderPretty(info)
			if output.ShouldPage(content, 40) {
				return output.Page(content)
			}
			return output.NewWriter(output.FormatText).WriteText(content)
		},
	}

	return cmd
}

func renderPretty(info *deck.DeckInfo) string {
	heading := color.New(color.Bold, color.FgCyan)
	dim := color.New(color.FgHiBlack)

	var b strings.Builder
	for _, slide := range info.Slides {
		if slide.Title != "" {
			b.WriteString(heading.Sprintf("Slide %d: %s", slide.Number, slide.Title))
		} else {
			b.WriteString(heading.Sprintf("Slide %d", slide.Number))
		}
		b.WriteString("\n")

		for _, text := range slide.TextContent {
			fmt.Fprintf(&b, "  %s\n", text)
		}

		var parts []string
		if slide.Tables > 0 {
			parts = append(parts, fmt.Sprintf("%d tables", slide.Tables))
		}
		if slide.Charts > 0 {
			parts = append(parts, fmt.Sprintf("%d charts", slide.Charts))
		}
		if slide.Pictures > 0 {
			parts = append(parts, fmt.Sprintf("%d pictures", slide.Pictures))
		}
		if len(parts) > 0 {
			b.WriteString(dim.Sprintf("  [%s]", strings.Join(parts, ", ")))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(dim.Sprintf("--- %d slides ---", len(info.Slides)))
	b.WriteString("\n")
	return b.String()
}
