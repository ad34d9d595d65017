// Package gaps compares a current profile against a target role and reports
// the skills that need work, ranked by size and priority.
package gaps

import (
	"sort"
	"strings"

	"github.com/jonathan/career-roadmap/internal/knowledge"
	"github.com/jonathan/career-roadmap/internal/types"
)

// Analyzer computes skill gaps against a knowledge base.
type Analyzer struct {
	kb *knowledge.KnowledgeBase
}

// NewAnalyzer returns an Analyzer backed by kb, or by the embedded knowledge
// base when kb is nil.
func NewAnalyzer(kb *knowledge.KnowledgeBase) *Analyzer {
	if kb == nil {
		kb = knowledge.Default()
	}
	return &Analyzer{kb: kb}
}

// AnalyzeGaps runs Analyze with the embedded knowledge base.
func AnalyzeGaps(profile types.CurrentProfile, target types.TargetRole) []types.SkillGap {
	return NewAnalyzer(nil).Analyze(profile, target)
}

// Analyze returns one gap per required skill the profile falls short on,
// sorted by gap descending. Ties keep required-skill order.
func (a *Analyzer) Analyze(profile types.CurrentProfile, target types.TargetRole) []types.SkillGap {
	tier := TierFor(target.Level)
	required := RequiredSkills(target)

	gaps := make([]types.SkillGap, 0, len(required))
	for _, skill := range required {
		current := CurrentLevel(profile.Skills, skill)
		want := a.RequiredLevel(skill, tier)
		if current >= want {
			continue
		}
		gap := want - current
		gaps = append(gaps, types.SkillGap{
			Skill:         skill,
			CurrentLevel:  current,
			RequiredLevel: want,
			Gap:           gap,
			Priority:      CalculatePriority(skill, gap),
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Gap > gaps[j].Gap
	})
	return gaps
}

// RequiredLevel looks up the proficiency a skill needs at a tier, defaulting
// to 5.
func (a *Analyzer) RequiredLevel(skill string, tier knowledge.Tier) int {
	if level, ok := a.kb.RequiredLevel(skill, tier); ok {
		return level
	}
	return defaultRequiredLevel
}

// RequiredSkills returns the domain skills followed by the level skills.
// A skill listed in both appears once, at its first position.
func RequiredSkills(target types.TargetRole) []string {
	domain := domainSkills[target.Domain]
	level := levelSkills[target.Level]

	seen := make(map[string]bool, len(domain)+len(level))
	out := make([]string, 0, len(domain)+len(level))
	for _, list := range [][]string{domain, level} {
		for _, skill := range list {
			if seen[skill] {
				continue
			}
			seen[skill] = true
			out = append(out, skill)
		}
	}
	return out
}

// CurrentLevel estimates the profile's level in skill. A profile entry
// matches when it contains the skill name, or when the skill name contains
// the entry's first word; both compared case-insensitively. The level comes
// from the entry's parenthetical label, 3 when unlabelled, and 1 when no
// entry matches.
func CurrentLevel(profileSkills []string, skill string) int {
	skillLower := strings.ToLower(skill)

	for _, raw := range profileSkills {
		entry := strings.ToLower(strings.TrimSpace(raw))
		if entry == "" {
			continue
		}
		firstWord := strings.Split(entry, " ")[0]
		if !strings.Contains(entry, skillLower) && !strings.Contains(skillLower, firstWord) {
			continue
		}
		for _, l := range labelLevels {
			if strings.Contains(entry, l.label) {
				return l.level
			}
		}
		return unlabelledLevel
	}
	return noviceLevel
}

// CalculatePriority classifies a gap. Allow-listed skills reach Critical at a
// gap of 3; everything else needs 4.
func CalculatePriority(skill string, gap int) types.Priority {
	switch {
	case gap >= 4:
		return types.PriorityCritical
	case criticalSkills[skill] && gap >= 3:
		return types.PriorityCritical
	case gap >= 2:
		return types.PriorityHigh
	case gap >= 1:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// Summarize counts gaps per priority and estimates total study weeks as two
// weeks per gap point.
func Summarize(gaps []types.SkillGap) types.GapSummary {
	var s types.GapSummary
	for _, g := range gaps {
		switch g.Priority {
		case types.PriorityCritical:
			s.Critical++
		case types.PriorityHigh:
			s.High++
		case types.PriorityMedium:
			s.Medium++
		default:
			s.Low++
		}
		s.TotalGap += g.Gap
	}
	s.RecommendedWeeks = s.TotalGap * 2
	return s
}
