package roadmap

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jonathan/career-roadmap/internal/knowledge"
	"github.com/jonathan/career-roadmap/internal/types"
)

const (
	hoursPerGapPoint      = 40
	hoursPerWeek          = 40
	defaultProjectHours   = 80
	projectsPerRoadmap    = 2
	fallbackProjectDomain = types.DomainFullstack
)

var weekRange = regexp.MustCompile(`(\d+)-?(\d+)?\s*weeks?`)

var complexityDifficulty = map[types.Complexity]types.Difficulty{
	types.ComplexitySimple:     types.DifficultyBeginner,
	types.ComplexityMedium:     types.DifficultyIntermediate,
	types.ComplexityComplex:    types.DifficultyAdvanced,
	types.ComplexityEnterprise: types.DifficultyExpert,
}

// SkillItems turns each gap into a "Master <skill>" item, in gap order.
func (g *Generator) SkillItems(gaps []types.SkillGap, phase int) []types.RoadmapItem {
	items := make([]types.RoadmapItem, 0, len(gaps))
	for i, gap := range gaps {
		items = append(items, types.RoadmapItem{
			ID:             fmt.Sprintf("skill-%d-%d", phase, i),
			Title:          "Master " + gap.Skill,
			Description:    g.skillDescription(gap.Skill),
			Type:           types.ItemSkill,
			Priority:       gap.Priority,
			Difficulty:     DifficultyForGap(gap.Gap),
			Duration:       DurationForGap(gap.Gap),
			EstimatedHours: gap.Gap * hoursPerGapPoint,
			Prerequisites:  g.kb.Prerequisites(gap.Skill),
			Skills:         []string{gap.Skill},
			Category:       g.kb.Category(gap.Skill),
			Resources:      g.kb.Resources(gap.Skill),
			Phase:          phase,
		})
	}
	return items
}

func (g *Generator) skillDescription(skill string) string {
	if desc, ok := g.kb.Description(skill); ok {
		return desc
	}
	return fmt.Sprintf("Advance your %s skills to the next level. Focus on practical application and real-world problem solving.", skill)
}

// ProjectItems builds up to two project items from the domain's templates,
// using the Fullstack templates when the domain has none.
func (g *Generator) ProjectItems(domain types.Domain, phase int) []types.RoadmapItem {
	templates := g.kb.Projects(domain)
	if templates == nil {
		templates = g.kb.Projects(fallbackProjectDomain)
	}
	if len(templates) > projectsPerRoadmap {
		templates = templates[:projectsPerRoadmap]
	}

	items := make([]types.RoadmapItem, 0, len(templates))
	for i, p := range templates {
		items = append(items, types.RoadmapItem{
			ID:             fmt.Sprintf("project-%d-%d", phase, i),
			Title:          "Build: " + p.Title,
			Description:    p.Description,
			Type:           types.ItemProject,
			Priority:       types.PriorityHigh,
			Difficulty:     DifficultyForComplexity(p.Complexity),
			Duration:       p.TimeEstimate,
			EstimatedHours: HoursForEstimate(p.TimeEstimate),
			Prerequisites:  append([]string{}, p.TechStack...),
			Skills:         append([]string{}, p.TechStack...),
			Category:       types.CategoryTechnical,
			Resources:      []types.Resource{},
			Projects:       []types.ProjectIdea{knowledge.CopyProject(p)},
			Phase:          phase,
		})
	}
	return items
}

// LeadershipItems returns nothing for Junior targets, a code review item for
// Mid, and adds a leadership training course from Senior up.
func (g *Generator) LeadershipItems(level types.Level, phase int) []types.RoadmapItem {
	if level == types.LevelJunior {
		return []types.RoadmapItem{}
	}

	items := []types.RoadmapItem{{
		ID:             fmt.Sprintf("leadership-%d-1", phase),
		Title:          "Develop Code Review Skills",
		Description:    "Learn to provide constructive feedback and mentor junior developers through code reviews. Focus on code quality, best practices, and collaborative development.",
		Type:           types.ItemSkill,
		Priority:       types.PriorityHigh,
		Difficulty:     types.DifficultyIntermediate,
		Duration:       "4-6 weeks",
		EstimatedHours: 60,
		Prerequisites:  []string{"Programming fundamentals", "Experience with version control"},
		Skills:         []string{"Code Review", "Mentoring", "Communication"},
		Category:       types.CategoryLeadership,
		Resources:      g.kb.Resources("Leadership"),
		Phase:          phase,
	}}

	if level.IsSeniorOrAbove() {
		items = append(items, types.RoadmapItem{
			ID:             fmt.Sprintf("leadership-%d-2", phase),
			Title:          "Technical Leadership Training",
			Description:    "Develop skills in technical decision making, team leadership, and cross-functional collaboration. Learn to drive technical initiatives and mentor team members.",
			Type:           types.ItemCourse,
			Priority:       types.PriorityCritical,
			Difficulty:     types.DifficultyAdvanced,
			Duration:       "8-12 weeks",
			EstimatedHours: 120,
			Prerequisites:  []string{"Technical expertise", "Communication skills", "2+ years of experience"},
			Skills:         []string{"Leadership", "Project Management", "Communication", "Decision Making"},
			Category:       types.CategoryLeadership,
			Resources:      g.kb.Resources("Leadership"),
			Phase:          phase,
		})
	}
	return items
}

// SpecializationItems returns a domain track for Frontend and Backend
// targets and a system design item from Senior up. Either, both or neither
// may apply.
func (g *Generator) SpecializationItems(target types.TargetRole, phase int) []types.RoadmapItem {
	items := []types.RoadmapItem{}

	switch target.Domain {
	case types.DomainFrontend:
		items = append(items, types.RoadmapItem{
			ID:             fmt.Sprintf("spec-%d-1", phase),
			Title:          "Advanced React Patterns & Performance",
			Description:    "Master advanced React patterns, performance optimization techniques, and microfrontend architecture. Learn to build scalable and maintainable frontend applications.",
			Type:           types.ItemSkill,
			Priority:       types.PriorityMedium,
			Difficulty:     types.DifficultyAdvanced,
			Duration:       "6-8 weeks",
			EstimatedHours: 80,
			Prerequisites:  []string{"React", "JavaScript", "TypeScript", "State Management"},
			Skills:         []string{"React", "Performance", "Architecture", "State Management"},
			Category:       types.CategoryTechnical,
			Resources:      g.kb.Resources("React"),
			Phase:          phase,
		})
	case types.DomainBackend:
		items = append(items, types.RoadmapItem{
			ID:             fmt.Sprintf("spec-%d-1", phase),
			Title:          "Distributed Systems & Microservices",
			Description:    "Learn to design and implement distributed systems and microservices architectures. Understand scalability patterns, service communication, and fault tolerance.",
			Type:           types.ItemSkill,
			Priority:       types.PriorityHigh,
			Difficulty:     types.DifficultyAdvanced,
			Duration:       "8-10 weeks",
			EstimatedHours: 100,
			Prerequisites:  []string{"Backend development", "Database design", "API Design"},
			Skills:         []string{"Microservices", "Distributed Systems", "Scalability", "Architecture"},
			Category:       types.CategoryTechnical,
			Resources:      g.kb.Resources("System Design"),
			Phase:          phase,
		})
	}

	if target.Level.IsSeniorOrAbove() {
		items = append(items, types.RoadmapItem{
			ID:             fmt.Sprintf("spec-%d-2", phase),
			Title:          "System Design Mastery",
			Description:    "Design large-scale distributed systems, understand trade-offs, and architectural patterns. Learn to make critical technical decisions for complex systems.",
			Type:           types.ItemSkill,
			Priority:       types.PriorityCritical,
			Difficulty:     types.DifficultyExpert,
			Duration:       "12-16 weeks",
			EstimatedHours: 160,
			Prerequisites:  []string{"Backend development", "Database design", "2+ years experience"},
			Skills:         []string{"System Design", "Architecture", "Scalability", "Decision Making"},
			Category:       types.CategoryTechnical,
			Resources:      g.kb.Resources("System Design"),
			Phase:          phase,
		})
	}
	return items
}

// ExperienceItems returns the portfolio and community items every roadmap
// ends with.
func (g *Generator) ExperienceItems(phase int) []types.RoadmapItem {
	return []types.RoadmapItem{
		{
			ID:             fmt.Sprintf("exp-%d-1", phase),
			Title:          "Build a Portfolio of Real Projects",
			Description:    "Create 2-3 substantial projects that demonstrate your skills in your target domain. Focus on solving real problems and showcasing your technical abilities.",
			Type:           types.ItemExperience,
			Priority:       types.PriorityHigh,
			Difficulty:     types.DifficultyIntermediate,
			Duration:       "Ongoing",
			EstimatedHours: 150,
			Prerequisites:  []string{"Core domain skills", "Git", "Deployment experience"},
			Skills:         []string{"Project Development", "Problem Solving", "Portfolio Building"},
			Category:       types.CategoryTechnical,
			Resources:      []types.Resource{},
			Phase:          phase,
		},
		{
			ID:             fmt.Sprintf("exp-%d-2", phase),
			Title:          "Technical Blog & Community Engagement",
			Description:    "Start writing technical blogs, contribute to open source projects, and engage with the developer community. Establish thought leadership in your domain.",
			Type:           types.ItemExperience,
			Priority:       types.PriorityMedium,
			Difficulty:     types.DifficultyIntermediate,
			Duration:       "Ongoing",
			EstimatedHours: 100,
			Prerequisites:  []string{"Domain expertise", "Communication skills"},
			Skills:         []string{"Communication", "Technical Writing", "Community Engagement", "Open Source"},
			Category:       types.CategorySoftSkills,
			Resources:      []types.Resource{},
			Phase:          phase,
		},
	}
}

// DifficultyForGap maps a gap size to a difficulty.
func DifficultyForGap(gap int) types.Difficulty {
	switch {
	case gap >= 4:
		return types.DifficultyExpert
	case gap >= 3:
		return types.DifficultyAdvanced
	case gap >= 2:
		return types.DifficultyIntermediate
	default:
		return types.DifficultyBeginner
	}
}

// DurationForGap renders a "{2g}-{2g+2} weeks" range.
func DurationForGap(gap int) string {
	weeks := gap * 2
	return fmt.Sprintf("%d-%d weeks", weeks, weeks+2)
}

// DifficultyForComplexity maps a project complexity to a difficulty,
// defaulting to Intermediate.
func DifficultyForComplexity(c types.Complexity) types.Difficulty {
	if d, ok := complexityDifficulty[c]; ok {
		return d
	}
	return types.DifficultyIntermediate
}

// HoursForEstimate converts the lower bound of a week range such as
// "8-12 weeks" to hours. Unparseable text yields 80.
func HoursForEstimate(estimate string) int {
	m := weekRange.FindStringSubmatch(estimate)
	if m == nil {
		return defaultProjectHours
	}
	weeks, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultProjectHours
	}
	return weeks * hoursPerWeek
}
