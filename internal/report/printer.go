package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/career-roadmap/internal/types"
)

const (
	boxWidth       = 60
	maxItemsToShow = 5
)

// Printer writes boxed summaries for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // terminal output; nothing to recover
func (p *Printer) printBox(title, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// PrintGaps lists the largest gaps and the per-priority counts.
func (p *Printer) PrintGaps(gaps []types.SkillGap, summary types.GapSummary) {
	var sb strings.Builder
	if len(gaps) == 0 {
		sb.WriteString("No skill gaps: the profile meets the target role.")
		p.printBox("SKILL GAPS", sb.String())
		return
	}

	fmt.Fprintf(&sb, "Critical: %d  High: %d  Medium: %d  Low: %d\n",
		summary.Critical, summary.High, summary.Medium, summary.Low)
	fmt.Fprintf(&sb, "Recommended study time: %d weeks\n\n", summary.RecommendedWeeks)

	count := min(len(gaps), maxItemsToShow)
	for _, g := range gaps[:count] {
		fmt.Fprintf(&sb, "• %-24s %d → %d  (%s)\n", g.Skill, g.CurrentLevel, g.RequiredLevel, g.Priority)
	}
	if len(gaps) > maxItemsToShow {
		fmt.Fprintf(&sb, "  ... and %d more\n", len(gaps)-maxItemsToShow)
	}
	p.printBox("SKILL GAPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPhases shows each phase with its load and first few items.
func (p *Printer) PrintPhases(resp *types.RoadmapResponse) {
	if resp == nil || len(resp.Phases) == 0 {
		return
	}

	var sb strings.Builder
	for i, phase := range resp.Phases {
		fmt.Fprintf(&sb, "%d. %s  (%d items, ~%d weeks)\n", phase.ID, phase.Title, len(phase.Items), phase.EstimatedWeeks)
		count := min(len(phase.Items), 3)
		for _, it := range phase.Items[:count] {
			fmt.Fprintf(&sb, "   - %s\n", it.Title)
		}
		if len(phase.Items) > count {
			fmt.Fprintf(&sb, "   ... and %d more\n", len(phase.Items)-count)
		}
		if i < len(resp.Phases)-1 {
			sb.WriteString("\n")
		}
	}
	fmt.Fprintf(&sb, "\nTotal: %d hours over ~%d weeks", resp.TotalEstimatedHours, resp.TotalEstimatedWeeks)
	p.printBox("ROADMAP", sb.String())
}

// PrintResult summarizes a remote fetch.
//
//nolint:errcheck // terminal output; nothing to recover
func (p *Printer) PrintResult(source string, result types.RoadmapResult) {
	if !result.Success {
		p.printBox("REMOTE ROADMAP: "+source, "⚠ "+result.Error)
		return
	}
	p.PrintPhases(result.Data)
}
