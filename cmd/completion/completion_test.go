package completion

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func testRootCmd() *cobra.Command {
	root := &cobra.Command{Use: "decksmith"}
	root.AddCommand(&cobra.Command{Use: "demo", Short: "Demo deck"})
	root.AddCommand(&cobra.Command{Use: "superstore", Short: "Superstore deck"})
	return root
}

func TestBashCompletion(t *testing.T) {
	root := testRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)

	if err := root.GenBashCompletion(&buf); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	if !strings.Contains(output, "_decksmith") {
		t.Error("bash completion should contain _decksmith function")
	}
}

func TestZshCompletion(t *testing.T) {
	root := testRootCmd()
	var buf bytes.Buffer

	if err := root.GenZshCompletion(&buf); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	if !strings.Contains(output, "compdef") {
		t.Error("zsh completion should contain compdef")
	}
}

func TestFishCompletion(t *testing.T) {
	root := testRootCmd()
	var buf bytes.Buffer

	if err := root.GenFishCompletion(&buf, true); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	if !strings.Contains(output, "complete -c decksmith") {
		t.Error("fish completion should contain 'complete -c decksmith'")
	}
}

func TestPowerShellCompletion(t *testing.T) {
	root := testRootCmd()
	var buf bytes.Buffer

	if err := root.GenPowerShellCompletionWithDesc(&buf); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	if !strings.Contains(output, "decksmith") {
		t.Error("PowerShell completion should contain decksmith")
	}
}
