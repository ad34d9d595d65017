package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-roadmap/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the roadmap engine.

The remote endpoints use ROADMAP_REMOTE_URL when set, otherwise Gemini when GEMINI_API_KEY is set; without either they report the service as not configured.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	logger := newLogger(cfg.Verbose, slog.LevelInfo)
	fetcher, cleanup, err := optionalFetcher(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv, err := server.New(server.Config{
		Port:    cfg.Port,
		Latency: cfg.Latency(),
		Remote:  fetcher,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
