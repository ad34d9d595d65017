package roadmap

import (
	"github.com/jonathan/career-roadmap/internal/gaps"
	"github.com/jonathan/career-roadmap/internal/types"
)

// Document is a generated roadmap in the form served by the API and written
// by the CLI: the flat item list, its phase grouping and the gap analysis
// behind it.
type Document struct {
	ID                  string               `json:"id"`
	Target              types.TargetRole     `json:"target"`
	Items               []types.RoadmapItem  `json:"items"`
	Gaps                []types.SkillGap     `json:"gaps"`
	Summary             types.GapSummary     `json:"summary"`
	Phases              []types.RoadmapPhase `json:"phases"`
	TotalEstimatedHours int                  `json:"totalEstimatedHours"`
	TotalEstimatedWeeks int                  `json:"totalEstimatedWeeks"`
}

// NewDocument packages a generation result under id.
func NewDocument(id string, target types.TargetRole, res Result) Document {
	resp := ToResponse(res.Items)
	doc := Document{
		ID:                  id,
		Target:              target,
		Items:               res.Items,
		Gaps:                res.Gaps,
		Summary:             gaps.Summarize(res.Gaps),
		Phases:              resp.Phases,
		TotalEstimatedHours: resp.TotalEstimatedHours,
		TotalEstimatedWeeks: resp.TotalEstimatedWeeks,
	}
	if doc.Items == nil {
		doc.Items = []types.RoadmapItem{}
	}
	if doc.Gaps == nil {
		doc.Gaps = []types.SkillGap{}
	}
	return doc
}

// Response returns the phase-grouped view of the document.
func (d Document) Response() *types.RoadmapResponse {
	return &types.RoadmapResponse{
		Phases:              d.Phases,
		TotalEstimatedHours: d.TotalEstimatedHours,
		TotalEstimatedWeeks: d.TotalEstimatedWeeks,
	}
}
