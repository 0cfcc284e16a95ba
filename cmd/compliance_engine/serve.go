package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcastillo/pliego-compliance/internal/config"
	"github.com/rcastillo/pliego-compliance/internal/server"
)

var (
	servePort        int
	serveWorkers     int
	serveDatabaseURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the compliance engine HTTP server",
	Long:  `Start the REST API server. Requires DATABASE_URL to be set for the requirement sheet store.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().IntVar(&serveWorkers, "workers", 0, "Batch evaluation worker count (0 = default)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "database-url", "", "PostgreSQL connection URL (overrides DATABASE_URL)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{Port: servePort, Workers: serveWorkers}
	cfg.ApplyEnv()
	if serveDatabaseURL != "" {
		cfg.DatabaseURL = serveDatabaseURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or --database-url)")
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		Workers:     cfg.Workers,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
