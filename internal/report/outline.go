// Package report renders roadmaps as text: a stable outline for reading and
// diffing, and boxed summaries for verbose CLI output.
package report

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/jonathan/career-roadmap/internal/types"
)

// Outline renders a phase-grouped roadmap one item per line. The output
// depends only on the roadmap, so two outlines diff cleanly.
func Outline(resp *types.RoadmapResponse) string {
	if resp == nil {
		return ""
	}

	var sb strings.Builder
	for _, phase := range resp.Phases {
		fmt.Fprintf(&sb, "Phase %d: %s (%dh, %dw)\n", phase.ID, phase.Title, phase.EstimatedHours, phase.EstimatedWeeks)
		for _, it := range phase.Items {
			fmt.Fprintf(&sb, "  [%s] %s: %s (%dh)\n", it.Priority, it.Type, it.Title, it.EstimatedHours)
		}
	}
	fmt.Fprintf(&sb, "Total: %dh, %dw\n", resp.TotalEstimatedHours, resp.TotalEstimatedWeeks)
	return sb.String()
}

// Diff returns a unified diff of two texts, or "" when they are equal.
func Diff(a, b, fromName, toName string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: fromName,
		ToFile:   toName,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %s against %s: %w", fromName, toName, err)
	}
	return text, nil
}

// CompareRoadmaps diffs the outlines of two roadmaps.
func CompareRoadmaps(a, b *types.RoadmapResponse, fromName, toName string) (string, error) {
	return Diff(Outline(a), Outline(b), fromName, toName)
}
