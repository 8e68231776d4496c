package main

import "github.com/decklab/decksmith/cmd"

func main() {
	cmd.Execute()
}
