package main

import (
	"os"

	"github.com/prasetyo/idxquant/cmd/idxquant/commands"
)

// main is the entry point for the idxquant CLI.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
