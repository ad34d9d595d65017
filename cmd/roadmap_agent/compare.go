package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-roadmap/internal/config"
	"github.com/jonathan/career-roadmap/internal/remote"
	"github.com/jonathan/career-roadmap/internal/report"
	"github.com/jonathan/career-roadmap/internal/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Diff the local roadmap against another roadmap",
	Long: `Generates the local roadmap and prints a unified diff of its outline against one of:

  --against FILE      a roadmap JSON file (wrapped, bare or generate output)
  --remote            the configured remote source (--llm for Gemini)
  --other-level/--other-domain/--other-title
                      the same profile aimed at a different target role`,
	RunE: runCompare,
}

var (
	compareReq         requestFlags
	compareOut         string
	compareAgainst     string
	compareRemote      bool
	compareLLM         bool
	compareOtherTitle  string
	compareOtherLevel  string
	compareOtherDomain string
)

func init() {
	compareReq.register(compareCmd)
	compareCmd.Flags().StringVarP(&compareOut, "out", "o", "", "Output file (default stdout)")
	compareCmd.Flags().StringVar(&compareAgainst, "against", "", "Roadmap JSON file to compare with")
	compareCmd.Flags().BoolVar(&compareRemote, "remote", false, "Compare with the remote roadmap")
	compareCmd.Flags().BoolVar(&compareLLM, "llm", false, "With --remote, use Gemini")
	compareCmd.Flags().StringVar(&compareOtherTitle, "other-title", "", "Title of the alternative target role")
	compareCmd.Flags().StringVar(&compareOtherLevel, "other-level", "", "Level of the alternative target role")
	compareCmd.Flags().StringVar(&compareOtherDomain, "other-domain", "", "Domain of the alternative target role")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	req, err := compareReq.build(cmd)
	if err != nil {
		return err
	}

	local, err := generateDocument(req)
	if err != nil {
		return err
	}

	alternative := compareOtherTitle != "" || compareOtherLevel != "" || compareOtherDomain != ""
	sources := 0
	for _, set := range []bool{compareAgainst != "", compareRemote, alternative} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return errors.New("choose exactly one of --against, --remote or --other-*")
	}

	var (
		other     *types.RoadmapResponse
		otherName string
	)
	switch {
	case compareAgainst != "":
		other, err = loadRoadmapFile(compareAgainst)
		otherName = compareAgainst
	case compareRemote:
		other, err = fetchForCompare(cfg, req)
		otherName = "remote"
	default:
		var target types.TargetRole
		other, target, err = alternativeRoadmap(req, compareOtherTitle, compareOtherLevel, compareOtherDomain)
		otherName = fmt.Sprintf("%s %s (%s)", target.Level, target.Domain, target.Title)
	}
	if err != nil {
		return err
	}

	diff, err := report.CompareRoadmaps(local.Response(), other, "local", otherName)
	if err != nil {
		return err
	}
	if diff == "" {
		diff = "No differences.\n"
	}
	if cfg.Verbose {
		report.NewPrinter(os.Stderr).PrintPhases(other)
	}
	return writeText(cmd.OutOrStdout(), compareOut, diff)
}

func fetchForCompare(cfg config.Config, req types.GenerateRequest) (*types.RoadmapResponse, error) {
	ctx := context.Background()
	fetcher, cleanup, err := newFetcher(ctx, cfg, compareLLM, newLogger(cfg.Verbose, slog.LevelWarn))
	if err != nil {
		return nil, err
	}
	defer cleanup()

	result := fetcher.Fetch(ctx, remote.RequestFrom(req))
	if !result.Success {
		return nil, fmt.Errorf("remote roadmap unavailable: %s", result.Error)
	}
	return result.Data, nil
}

// loadRoadmapFile reads any roadmap JSON that carries phases: the service
// envelope, the bare response or a generate document.
func loadRoadmapFile(path string) (*types.RoadmapResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roadmap file: %w", err)
	}
	resp, err := remote.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode roadmap file %s: %w", path, err)
	}
	return resp, nil
}

// alternativeRoadmap generates for the same profile with the target fields
// that were given replaced.
func alternativeRoadmap(req types.GenerateRequest, title, level, domain string) (*types.RoadmapResponse, types.TargetRole, error) {
	alt := req
	if title != "" {
		alt.Target.Title = title
	}
	if level != "" {
		alt.Target.Level = types.Level(level)
	}
	if domain != "" {
		alt.Target.Domain = types.Domain(domain)
	}
	if err := alt.Validate(); err != nil {
		return nil, types.TargetRole{}, fmt.Errorf("invalid alternative target: %w", err)
	}

	doc, err := generateDocument(alt)
	if err != nil {
		return nil, types.TargetRole{}, err
	}
	return doc.Response(), alt.Target, nil
}
