package main

import (
	"fmt"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/internal/logging"
	"github.com/spf13/cobra"
)

// runCmd feeds a flavor sequence through the lollipop anomaly detector.
var runCmd = &cobra.Command{
	Use:   "run <sequence>",
	Short: "Detect flavor anomalies in a lollipop sequence",
	Long: `Feeds a sequence of lollipop flavors ('s' strawberry, 'l' lemon)
through a Mealy machine that flags the third identical flavor in a row.

With --resume, the first half of the sequence is processed, the machine is
snapshotted to the configured store, restored, and the second half is
processed by the restored machine. The reported anomalies are identical to
an uninterrupted run.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resume, _ := cmd.Flags().GetBool("resume")
		machineID, _ := cmd.Flags().GetString("id")

		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error loading configuration: %v\n", err)
			os.Exit(1)
		}
		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		opts := cli.RunOptions{
			Input:     args[0],
			Resume:    resume,
			MachineID: machineID,
			Logger:    logger,
			Out:       cli.NewPrinter(os.Stdout),
		}

		if resume {
			store, closeStore, err := cli.NewStore(cfg)
			if err != nil {
				fmt.Printf("Error initializing store: %v\n", err)
				os.Exit(1)
			}
			defer func() { _ = closeStore() }()
			opts.Store = store
		}

		if err := cli.RunDetector(cmd.Context(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	runCmd.Flags().Bool("resume", false, "Snapshot and restore the machine midway through the sequence")
	runCmd.Flags().String("id", "lollipop", "Machine ID used for the snapshot when resuming")
	rootCmd.AddCommand(runCmd)
}
