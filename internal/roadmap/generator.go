// Package roadmap assembles a four-phase learning roadmap from the skill
// gaps between a current profile and a target role.
//
// Generation is a pure function of its inputs and the knowledge base: the
// same profile and target always produce the same ordered items.
package roadmap

import (
	"sort"

	"github.com/jonathan/career-roadmap/internal/gaps"
	"github.com/jonathan/career-roadmap/internal/knowledge"
	"github.com/jonathan/career-roadmap/internal/types"
)

// Phase numbers.
const (
	PhaseFoundation  = 1
	PhaseDevelopment = 2
	PhaseMastery     = 3
	PhaseApplication = 4
)

// Generator builds roadmaps against a knowledge base. It holds no per-call
// state and is safe for concurrent use.
type Generator struct {
	kb       *knowledge.KnowledgeBase
	analyzer *gaps.Analyzer
}

// New returns a Generator backed by kb, or by the embedded knowledge base
// when kb is nil.
func New(kb *knowledge.KnowledgeBase) *Generator {
	if kb == nil {
		kb = knowledge.Default()
	}
	return &Generator{kb: kb, analyzer: gaps.NewAnalyzer(kb)}
}

// Result is a generated roadmap together with the gaps it was derived from.
type Result struct {
	Items []types.RoadmapItem
	Gaps  []types.SkillGap
}

// GenerateRoadmap runs Generate with the embedded knowledge base.
func GenerateRoadmap(profile types.CurrentProfile, target types.TargetRole) []types.RoadmapItem {
	return New(nil).Generate(profile, target).Items
}

// Generate analyzes gaps and assembles the roadmap.
func (g *Generator) Generate(profile types.CurrentProfile, target types.TargetRole) Result {
	skillGaps := g.analyzer.Analyze(profile, target)
	return Result{
		Items: g.Assemble(skillGaps, target),
		Gaps:  skillGaps,
	}
}

// AnalyzeGaps exposes the generator's gap analyzer.
func (g *Generator) AnalyzeGaps(profile types.CurrentProfile, target types.TargetRole) []types.SkillGap {
	return g.analyzer.Analyze(profile, target)
}

// Assemble lays precomputed gaps out across the four phases:
//
//	1: Critical skill items
//	2: High skill items, then projects
//	3: Medium skill items, then leadership items
//	4: specialization items, then experience items
//
// Low gaps produce no items. The result is stably ordered by phase, then by
// descending priority.
func (g *Generator) Assemble(skillGaps []types.SkillGap, target types.TargetRole) []types.RoadmapItem {
	var items []types.RoadmapItem

	items = append(items, g.SkillItems(byPriority(skillGaps, types.PriorityCritical), PhaseFoundation)...)

	items = append(items, g.SkillItems(byPriority(skillGaps, types.PriorityHigh), PhaseDevelopment)...)
	items = append(items, g.ProjectItems(target.Domain, PhaseDevelopment)...)

	items = append(items, g.SkillItems(byPriority(skillGaps, types.PriorityMedium), PhaseMastery)...)
	items = append(items, g.LeadershipItems(target.Level, PhaseMastery)...)

	items = append(items, g.SpecializationItems(target, PhaseApplication)...)
	items = append(items, g.ExperienceItems(PhaseApplication)...)

	return Prioritize(items)
}

// Prioritize returns a copy of items stably sorted by phase ascending, then
// priority descending.
func Prioritize(items []types.RoadmapItem) []types.RoadmapItem {
	out := make([]types.RoadmapItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Phase != out[j].Phase {
			return out[i].Phase < out[j].Phase
		}
		return out[i].Priority.Rank() > out[j].Priority.Rank()
	})
	return out
}

func byPriority(skillGaps []types.SkillGap, p types.Priority) []types.SkillGap {
	var out []types.SkillGap
	for _, g := range skillGaps {
		if g.Priority == p {
			out = append(out, g)
		}
	}
	return out
}
