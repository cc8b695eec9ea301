package main

import (
	"fmt"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd renders a stored machine's graph.
var graphCmd = &cobra.Command{
	Use:   "graph <machine-id>",
	Short: "Export a stored machine's graph visualization",
	Long: `Loads a machine snapshot from the configured store and prints its
transition graph, either as a Mermaid diagram (default) or as an indented
tree. The current execution position is highlighted in the Mermaid output.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")

		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error loading configuration: %v\n", err)
			os.Exit(1)
		}

		store, closeStore, err := cli.NewStore(cfg)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = closeStore() }()

		snap, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Error loading machine %q: %v\n", args[0], err)
			os.Exit(1)
		}

		switch format {
		case "tree":
			fmt.Print(graph.Tree(snap))
		case "mermaid":
			fmt.Print(graph.Mermaid(snap))
		default:
			fmt.Printf("Unknown format %q (want mermaid or tree)\n", format)
			os.Exit(1)
		}
	},
}

func init() {
	graphCmd.Flags().String("format", "mermaid", "Output format: mermaid or tree")
	rootCmd.AddCommand(graphCmd)
}
