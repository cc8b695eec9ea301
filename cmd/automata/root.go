package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "Automata runs deterministic finite-state machines",
	Long: `Automata is a framework for deterministic finite-state machines:
acceptors that classify input sequences and transducers that emit output
while consuming input. Transducers can be snapshotted mid-run and resumed
from a file, Redis, or SQLite store (AUTOMATA_STORE).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
