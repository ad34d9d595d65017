// Package main provides the roadmap_agent CLI: local roadmap generation,
// remote fetching, comparison and the HTTP API server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/career-roadmap/internal/config"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "roadmap_agent",
	Short: "Career roadmap generator",
	Long: `roadmap_agent compares a current profile against a target role and builds a four-phase learning roadmap.

Settings come from --config (JSON or YAML), overlaid by environment variables (ROADMAP_*, GEMINI_API_KEY, REDIS_*, PORT).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print summaries and debug logs to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings resolves the effective configuration for a command.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	return cfg, nil
}

// newLogger logs at base, or at debug when verbose.
func newLogger(verbose bool, base slog.Level) *slog.Logger {
	level := base
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
