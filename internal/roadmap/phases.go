package roadmap

import (
	"github.com/jonathan/career-roadmap/internal/types"
)

// PhaseInfo names one of the four fixed phases.
type PhaseInfo struct {
	ID    int
	Title string
	Goal  string
	Focus string
}

// PhaseCatalog lists the phases in order.
var PhaseCatalog = []PhaseInfo{
	{ID: PhaseFoundation, Title: "Foundation Building", Goal: "Establish core skills and knowledge required for your target role", Focus: "Core skills needed for the target role"},
	{ID: PhaseDevelopment, Title: "Skill Development", Goal: "Deepen expertise in key areas and build practical projects", Focus: "Advanced skills and practical projects"},
	{ID: PhaseMastery, Title: "Advanced Mastery", Goal: "Develop leadership capabilities and specialized knowledge", Focus: "Leadership and specialized knowledge"},
	{ID: PhaseApplication, Title: "Real-World Application", Goal: "Gain practical experience and establish industry presence", Focus: "Practical experience and industry presence"},
}

// Phases groups items into the four phases, in phase order. Phases without
// items are omitted. Weeks assume 40 study hours per week, rounded up.
func Phases(items []types.RoadmapItem) []types.RoadmapPhase {
	phases := make([]types.RoadmapPhase, len(PhaseCatalog))
	index := make(map[int]int, len(PhaseCatalog))
	for i, info := range PhaseCatalog {
		phases[i] = types.RoadmapPhase{
			ID:    info.ID,
			Title: info.Title,
			Goal:  info.Goal,
			Focus: info.Focus,
			Items: []types.PhaseItem{},
		}
		index[info.ID] = i
	}

	for _, it := range items {
		i, ok := index[it.Phase]
		if !ok {
			continue
		}
		phases[i].Items = append(phases[i].Items, it.AsPhaseItem())
		phases[i].EstimatedHours += it.EstimatedHours
	}
	out := phases[:0]
	for _, p := range phases {
		if len(p.Items) == 0 {
			continue
		}
		p.EstimatedWeeks = weeksFor(p.EstimatedHours)
		out = append(out, p)
	}
	return out
}

// ToResponse wraps items in the phase-grouped exchange shape with totals.
func ToResponse(items []types.RoadmapItem) *types.RoadmapResponse {
	resp := &types.RoadmapResponse{Phases: Phases(items)}
	for _, p := range resp.Phases {
		resp.TotalEstimatedHours += p.EstimatedHours
	}
	resp.TotalEstimatedWeeks = weeksFor(resp.TotalEstimatedHours)
	return resp
}

func weeksFor(hours int) int {
	return (hours + hoursPerWeek - 1) / hoursPerWeek
}
