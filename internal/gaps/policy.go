package gaps

import (
	"github.com/jonathan/career-roadmap/internal/knowledge"
	"github.com/jonathan/career-roadmap/internal/types"
)

// defaultRequiredLevel applies to skills absent from the proficiency table.
const defaultRequiredLevel = 5

// noviceLevel is assigned to required skills the profile does not mention.
const noviceLevel = 1

// unlabelledLevel is assigned to matched skills without a level label.
const unlabelledLevel = 3

// tierByLevel maps target levels to proficiency tiers. Principal and Staff
// share the lead tier.
var tierByLevel = map[types.Level]knowledge.Tier{
	types.LevelJunior:    knowledge.TierJunior,
	types.LevelMid:       knowledge.TierMid,
	types.LevelSenior:    knowledge.TierSenior,
	types.LevelLead:      knowledge.TierLead,
	types.LevelPrincipal: knowledge.TierLead,
	types.LevelStaff:     knowledge.TierLead,
}

// domainSkills lists the skills every role in a domain requires.
var domainSkills = map[types.Domain][]string{
	types.DomainFrontend:   {"JavaScript", "React", "TypeScript", "Testing", "Git", "HTML/CSS", "State Management"},
	types.DomainBackend:    {"Node.js", "Python", "SQL", "API Design", "Testing", "Git", "Database Design"},
	types.DomainFullstack:  {"JavaScript", "React", "Node.js", "SQL", "TypeScript", "Testing", "Git", "HTML/CSS", "Database Design"},
	types.DomainMobile:     {"React Native", "Flutter", "Swift", "Kotlin", "Testing", "Mobile UI/UX"},
	types.DomainDevOps:     {"AWS", "Docker", "Kubernetes", "CI/CD", "Monitoring", "Infrastructure as Code", "Linux"},
	types.DomainData:       {"Python", "SQL", "Data Analysis", "Machine Learning", "Statistics", "Data Visualization"},
	types.DomainML:         {"Python", "Machine Learning", "Statistics", "Data Analysis", "Deep Learning", "TensorFlow/PyTorch"},
	types.DomainManagement: {"Leadership", "Project Management", "Communication", "Mentoring", "Strategy", "Budgeting"},
}

// levelSkills lists the extra skills a seniority level requires on top of
// the domain skills.
var levelSkills = map[types.Level][]string{
	types.LevelJunior:    {},
	types.LevelMid:       {"System Design", "Architecture", "Code Review"},
	types.LevelSenior:    {"System Design", "Architecture", "Leadership", "Mentoring", "Code Review", "Performance Optimization"},
	types.LevelLead:      {"System Design", "Architecture", "Leadership", "Mentoring", "Project Management", "Communication", "Code Review", "Performance Optimization", "Team Management"},
	types.LevelPrincipal: {"System Design", "Architecture", "Leadership", "Mentoring", "Project Management", "Communication", "Strategy", "Innovation", "Industry Expertise"},
	types.LevelStaff:     {"System Design", "Architecture", "Leadership", "Mentoring", "Project Management", "Communication", "Strategy", "Innovation", "Industry Expertise"},
}

// criticalSkills are promoted to Critical at a gap of exactly 3.
var criticalSkills = map[string]bool{
	"JavaScript":      true,
	"React":           true,
	"Node.js":         true,
	"System Design":   true,
	"Leadership":      true,
	"API Design":      true,
	"Database Design": true,
	"Testing":         true,
	"Git":             true,
	"HTML/CSS":        true,
	"Python":          true,
	"SQL":             true,
	"TypeScript":      true,
}

// labelLevels maps self-rated labels, as lowercase parentheticals, to levels.
// Order matters: the first label found in a skill string wins.
var labelLevels = []struct {
	label string
	level int
}{
	{"(beginner)", 2},
	{"(intermediate)", 4},
	{"(advanced)", 6},
	{"(expert)", 8},
}

// TierFor returns the proficiency tier of a level, or "" for unknown levels.
func TierFor(level types.Level) knowledge.Tier {
	return tierByLevel[level]
}

// IsCriticalSkill reports whether a skill is on the critical allow-list.
func IsCriticalSkill(skill string) bool {
	return criticalSkills[skill]
}
