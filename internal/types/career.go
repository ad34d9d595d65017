// Package types provides type definitions for the career roadmap data model.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Level is the seniority level of a target role.
type Level string

// Seniority levels accepted for a target role.
const (
	LevelJunior    Level = "Junior"
	LevelMid       Level = "Mid"
	LevelSenior    Level = "Senior"
	LevelLead      Level = "Lead"
	LevelPrincipal Level = "Principal"
	LevelStaff     Level = "Staff"
)

// Levels lists every seniority level in ascending order.
var Levels = []Level{LevelJunior, LevelMid, LevelSenior, LevelLead, LevelPrincipal, LevelStaff}

// IsSeniorOrAbove reports whether the level is Senior, Lead, Principal or Staff.
func (l Level) IsSeniorOrAbove() bool {
	switch l {
	case LevelSenior, LevelLead, LevelPrincipal, LevelStaff:
		return true
	default:
		return false
	}
}

// Domain is the technical domain of a target role.
type Domain string

// Domains accepted for a target role.
const (
	DomainFrontend   Domain = "Frontend"
	DomainBackend    Domain = "Backend"
	DomainFullstack  Domain = "Fullstack"
	DomainMobile     Domain = "Mobile"
	DomainDevOps     Domain = "DevOps"
	DomainData       Domain = "Data"
	DomainML         Domain = "ML"
	DomainManagement Domain = "Management"
)

// Domains lists every domain.
var Domains = []Domain{
	DomainFrontend, DomainBackend, DomainFullstack, DomainMobile,
	DomainDevOps, DomainData, DomainML, DomainManagement,
}

// CurrentProfile describes where a person is today. Skills use the
// "Name (Level)" string convention, e.g. "JavaScript (Intermediate)".
type CurrentProfile struct {
	Skills          []string `json:"skills" yaml:"skills"`
	CurrentJob      string   `json:"currentJob" yaml:"currentJob"`
	Experience      string   `json:"experience" yaml:"experience"`
	Specializations []string `json:"specializations" yaml:"specializations"`
}

// TargetRole describes the role a person wants to reach.
type TargetRole struct {
	Title  string `json:"title" yaml:"title" validate:"required"`
	Level  Level  `json:"level" yaml:"level" validate:"required,oneof=Junior Mid Senior Lead Principal Staff"`
	Domain Domain `json:"domain" yaml:"domain" validate:"required,oneof=Frontend Backend Fullstack Mobile DevOps Data ML Management"`
}

// Priority ranks how urgent a gap or roadmap item is.
type Priority string

// Priorities in descending order of urgency.
const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Rank returns 4 for Critical down to 1 for Low, and 0 for anything else.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// SkillGap is the distance between a person's current level in a skill and
// the level the target role requires. Only positive gaps are recorded.
type SkillGap struct {
	Skill         string   `json:"skill"`
	CurrentLevel  int      `json:"currentLevel"`
	RequiredLevel int      `json:"requiredLevel"`
	Gap           int      `json:"gap"`
	Priority      Priority `json:"priority"`
}

// GapSummary aggregates a gap list for reporting.
type GapSummary struct {
	Critical         int `json:"critical"`
	High             int `json:"high"`
	Medium           int `json:"medium"`
	Low              int `json:"low"`
	TotalGap         int `json:"totalGap"`
	RecommendedWeeks int `json:"recommendedWeeks"`
}
