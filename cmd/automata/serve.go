package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/aretw0/automata/internal/adapters/http"
	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/internal/logging"
	"github.com/spf13/cobra"
)

// serveCmd exposes the snapshot store over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the machine snapshot HTTP server",
	Long: `Starts an HTTP server over the configured snapshot store, exposing
machine listing, snapshot inspection, graph rendering, step-with-persist,
and Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error loading configuration: %v\n", err)
			os.Exit(1)
		}
		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		store, closeStore, err := cli.NewStore(cfg)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = closeStore() }()

		srv := &http.Server{
			Addr:    ":" + cfg.HTTPPort,
			Handler: httpAdapter.NewHandler(store, logger),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting server", "addr", srv.Addr, "store", cfg.Store)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			logger.Error("server failed", "error", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown failed", "error", err)
				_ = srv.Close()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
