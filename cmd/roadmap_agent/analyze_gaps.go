package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-roadmap/internal/gaps"
	"github.com/jonathan/career-roadmap/internal/profile"
	"github.com/jonathan/career-roadmap/internal/report"
	"github.com/jonathan/career-roadmap/internal/types"
)

var analyzeGapsCmd = &cobra.Command{
	Use:   "analyze-gaps",
	Short: "List skill gaps for a target role",
	Long:  "Compares the profile's skills with the skills the target role requires and prints the gaps, largest first, with a per-priority summary.",
	RunE:  runAnalyzeGaps,
}

var (
	analyzeReq requestFlags
	analyzeOut string
)

func init() {
	analyzeReq.register(analyzeGapsCmd)
	analyzeGapsCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(analyzeGapsCmd)
}

// gapReport is the analyze-gaps output document.
type gapReport struct {
	Target  types.TargetRole `json:"target"`
	Gaps    []types.SkillGap `json:"gaps"`
	Summary types.GapSummary `json:"summary"`
}

func runAnalyzeGaps(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	req, err := analyzeReq.build(cmd)
	if err != nil {
		return err
	}

	out := analyzeGaps(req)
	if cfg.Verbose {
		report.NewPrinter(os.Stderr).PrintGaps(out.Gaps, out.Summary)
	}
	return writeJSON(cmd.OutOrStdout(), analyzeOut, out)
}

func analyzeGaps(req types.GenerateRequest) gapReport {
	found := gaps.AnalyzeGaps(profile.FromInput(req.Profile), req.Target)
	if found == nil {
		found = []types.SkillGap{}
	}
	return gapReport{Target: req.Target, Gaps: found, Summary: gaps.Summarize(found)}
}
