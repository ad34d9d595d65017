package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-roadmap/internal/remote"
	"github.com/jonathan/career-roadmap/internal/report"
	"github.com/jonathan/career-roadmap/internal/schemas"
	"github.com/jonathan/career-roadmap/internal/types"
)

var fetchRemoteCmd = &cobra.Command{
	Use:   "fetch-remote",
	Short: "Fetch a roadmap from the remote generation service",
	Long: `Posts the request to the roadmap service at ROADMAP_REMOTE_URL, or asks Gemini when --llm is set.

Failures are reported in the result rather than as an exit status. With --with-local the local roadmap is generated in parallel and returned as the fallback.`,
	RunE: runFetchRemote,
}

var (
	fetchReq       requestFlags
	fetchOut       string
	fetchLLM       bool
	fetchWithLocal bool
)

func init() {
	fetchReq.register(fetchRemoteCmd)
	fetchRemoteCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "Output file (default stdout)")
	fetchRemoteCmd.Flags().BoolVar(&fetchLLM, "llm", false, "Generate with Gemini instead of the HTTP service")
	fetchRemoteCmd.Flags().BoolVar(&fetchWithLocal, "with-local", false, "Also generate locally and include it as a fallback")
	rootCmd.AddCommand(fetchRemoteCmd)
}

// fetchOutput is the fetch-remote output document.
type fetchOutput struct {
	types.RoadmapResult
	Fallback *types.RoadmapResponse `json:"fallback,omitempty"`
}

func runFetchRemote(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	req, err := fetchReq.build(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	logger := newLogger(cfg.Verbose, slog.LevelWarn)
	fetcher, cleanup, err := newFetcher(ctx, cfg, fetchLLM, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := fetchWithFallback(ctx, fetcher, req, fetchWithLocal, logger)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		source := "service"
		if fetchLLM {
			source = "gemini"
		}
		report.NewPrinter(os.Stderr).PrintResult(source, out.RoadmapResult)
	}
	return writeJSON(cmd.OutOrStdout(), fetchOut, out)
}

// fetchWithFallback fetches remotely and, when withLocal is set, generates
// locally at the same time. The local roadmap is attached only when the
// remote fetch failed.
func fetchWithFallback(ctx context.Context, fetcher remote.Fetcher, req types.GenerateRequest, withLocal bool, logger *slog.Logger) (fetchOutput, error) {
	var (
		result types.RoadmapResult
		local  *types.RoadmapResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result = fetcher.Fetch(gctx, remote.RequestFrom(req))
		return nil
	})
	if withLocal {
		g.Go(func() error {
			doc, err := generateDocument(req)
			if err != nil {
				return err
			}
			local = doc.Response()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fetchOutput{}, fmt.Errorf("local generation failed: %w", err)
	}

	if result.Success {
		if err := schemas.ValidateValue(schemas.RoadmapResponse, result.Data); err != nil {
			logger.Warn("remote roadmap does not match the response schema", "error", err)
		}
	}

	out := fetchOutput{RoadmapResult: result}
	if !result.Success {
		out.Fallback = local
	}
	return out, nil
}
