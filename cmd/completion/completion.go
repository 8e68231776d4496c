// Package completion provides shell completion generation commands.
package completion

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewCommand returns the completion command.
func NewCommand(rootCmd *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completions",
		Long: `Generate shell completion scripts for decksmith.

Install instructions:
  Bash:       decksmith completion bash > /etc/bash_completion.d/decksmith
              echo 'source <(decksmith completion bash)' >> ~/.bashrc
  Zsh:        decksmith completion zsh > ~/.zsh/completions/_decksmith
  Fish:       decksmith completion fish > ~/.config/fish/completions/decksmith.fish
  PowerShell: decksmith completion powershell >> $PROFILE`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				fmt.Fprintln(os.Stdout, "# decksmith bash completion")
				fmt.Fprintln(os.Stdout, "# Install: decksmith completion bash > /etc/bash_completion.d/decksmith")
				fmt.Fprintln(os.Stdout, "# Or:      echo 'source <(decksmith completion bash)' >> ~/.bashrc")
				fmt.Fprintln(os.Stdout)
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				fmt.Fprintln(os.Stdout, "# decksmith zsh completion")
				fmt.Fprintln(os.Stdout, "# Install: decksmith completion zsh > ~/.zsh/completions/_decksmith")
				fmt.Fprintln(os.Stdout)
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				fmt.Fprintln(os.Stdout, "# decksmith fish completion")
				fmt.Fprintln(os.Stdout, "# Install: decksmith completion fish > ~/.config/fish/completions/decksmith.fish")
				fmt.Fprintln(os.Stdout)
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				fmt.Fprintln(os.Stdout, "# decksmith PowerShell completion")
				fmt.Fprintln(os.Stdout, "# Install: decksmith completion powershell >> $PROFILE")
				fmt.Fprintln(os.Stdout)
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish, powershell)", args[0])
			}
		},
	}
	return cmd
}
