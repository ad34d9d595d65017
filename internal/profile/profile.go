// Package profile converts boundary profile input into the forms consumed by
// the gap analyzer and the remote generation service.
package profile

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/career-roadmap/internal/types"
)

// DefaultSkillLevel is sent for skills that carry no level label.
const DefaultSkillLevel = "Beginner"

// DefaultWeeklyHours is used when a time commitment has no leading number.
const DefaultWeeklyHours = 10

var (
	yearsPattern   = regexp.MustCompile(`(?i)(\d+)\s*year`)
	monthsPattern  = regexp.MustCompile(`(?i)(\d+)\s*month`)
	leadingInteger = regexp.MustCompile(`^\s*([+-]?\d+)`)
)

// FromInput builds a CurrentProfile. Skills are rendered in the
// "Name (Level)" convention; blank names are dropped.
func FromInput(in types.ProfileInput) types.CurrentProfile {
	skills := make([]string, 0, len(in.Skills))
	for _, s := range in.Skills {
		s.Name = strings.TrimSpace(s.Name)
		s.Level = strings.TrimSpace(s.Level)
		if s.Name == "" {
			continue
		}
		skills = append(skills, s.String())
	}
	return types.CurrentProfile{
		Skills:          skills,
		CurrentJob:      strings.TrimSpace(in.CurrentJob),
		Experience:      strings.TrimSpace(in.Experience),
		Specializations: append([]string(nil), in.Specializations...),
	}
}

// PayloadSkill is one skill entry as sent to the remote service.
type PayloadSkill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// PayloadSkills splits "Name (Level)" strings into name/level pairs,
// defaulting the level to Beginner.
func PayloadSkills(skills []string) []PayloadSkill {
	out := make([]PayloadSkill, 0, len(skills))
	for _, raw := range skills {
		s := types.ParseProfileSkill(raw)
		if s.Name == "" {
			continue
		}
		level := s.Level
		if level == "" {
			level = DefaultSkillLevel
		}
		out = append(out, PayloadSkill{Name: s.Name, Level: level})
	}
	return out
}

// ExperienceYears extracts whole years from free text such as "3 years" or
// "18 months". Months are rounded to the nearest year. Text with neither
// yields 1.
func ExperienceYears(text string) int {
	if m := yearsPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	if m := monthsPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return int(math.Round(float64(n) / 12))
		}
	}
	return 1
}

// WeeklyHours reads the leading integer of a time commitment such as
// "15 hours/week", falling back to DefaultWeeklyHours.
func WeeklyHours(text string) int {
	m := leadingInteger.FindStringSubmatch(text)
	if m == nil {
		return DefaultWeeklyHours
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n == 0 {
		return DefaultWeeklyHours
	}
	return n
}
