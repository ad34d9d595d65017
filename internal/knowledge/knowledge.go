// Package knowledge holds the static knowledge base behind roadmap
// generation: proficiency tables, learning resources, project templates and
// skill descriptions. Tables are loaded once and never mutated; every
// accessor returns copies so callers cannot alter shared state.
package knowledge

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/career-roadmap/internal/types"
)

//go:embed data/*.yaml
var dataFiles embed.FS

// Tier is a seniority band used to key the proficiency table.
type Tier string

// Seniority tiers.
const (
	TierJunior Tier = "junior"
	TierMid    Tier = "mid"
	TierSenior Tier = "senior"
	TierLead   Tier = "lead"
)

// Proficiency is the required level (0-10) of a skill at each tier.
type Proficiency struct {
	Junior int `yaml:"junior"`
	Mid    int `yaml:"mid"`
	Senior int `yaml:"senior"`
	Lead   int `yaml:"lead"`
}

// At returns the level for a tier, or 0 for an unknown tier.
func (p Proficiency) At(tier Tier) int {
	switch tier {
	case TierJunior:
		return p.Junior
	case TierMid:
		return p.Mid
	case TierSenior:
		return p.Senior
	case TierLead:
		return p.Lead
	default:
		return 0
	}
}

// KnowledgeBase is the read-only lookup data for roadmap generation.
type KnowledgeBase struct {
	proficiency   map[string]Proficiency
	resources     map[string][]types.Resource
	projects      map[types.Domain][]types.ProjectIdea
	descriptions  map[string]string
	prerequisites map[string][]string
	categories    map[string]types.Category
	jobTitles     []string
	careerPaths   map[string]types.CareerPath
}

// LoadError reports a knowledge base file that could not be read or parsed.
type LoadError struct {
	File  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load knowledge file %s: %v", e.File, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

type skillsFile struct {
	Descriptions  map[string]string         `yaml:"descriptions"`
	Prerequisites map[string][]string       `yaml:"prerequisites"`
	Categories    map[string]types.Category `yaml:"categories"`
}

type catalogFile struct {
	JobTitles   []string                    `yaml:"jobTitles"`
	CareerPaths map[string]types.CareerPath `yaml:"careerPaths"`
}

var (
	defaultOnce sync.Once
	defaultKB   *KnowledgeBase
	defaultErr  error
)

// Default returns the process-wide knowledge base built from the embedded
// tables. It panics if the embedded data is corrupt.
func Default() *KnowledgeBase {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(dataFiles, "data")
		if err != nil {
			defaultErr = err
			return
		}
		defaultKB, defaultErr = Load(sub)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("embedded knowledge base is invalid: %v", defaultErr))
	}
	return defaultKB
}

// Load reads proficiency.yaml, resources.yaml, projects.yaml, skills.yaml and
// catalog.yaml from fsys. Missing catalog.yaml is tolerated; the other files
// are required.
func Load(fsys fs.FS) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{}

	if err := decodeFile(fsys, "proficiency.yaml", &kb.proficiency); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, "resources.yaml", &kb.resources); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, "projects.yaml", &kb.projects); err != nil {
		return nil, err
	}

	var skills skillsFile
	if err := decodeFile(fsys, "skills.yaml", &skills); err != nil {
		return nil, err
	}
	kb.descriptions = skills.Descriptions
	kb.prerequisites = skills.Prerequisites
	kb.categories = skills.Categories

	var catalog catalogFile
	if _, err := fs.Stat(fsys, "catalog.yaml"); err == nil {
		if err := decodeFile(fsys, "catalog.yaml", &catalog); err != nil {
			return nil, err
		}
	}
	kb.jobTitles = catalog.JobTitles
	kb.careerPaths = catalog.CareerPaths

	return kb, nil
}

func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return &LoadError{File: name, Cause: err}
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return &LoadError{File: name, Cause: err}
	}
	return nil
}

// RequiredLevel returns the proficiency a skill needs at a tier. ok is false
// when the skill or tier is absent from the table.
func (kb *KnowledgeBase) RequiredLevel(skill string, tier Tier) (level int, ok bool) {
	p, exists := kb.proficiency[skill]
	if !exists {
		return 0, false
	}
	level = p.At(tier)
	return level, level > 0
}

// Resources returns the learning resources for a skill, never nil.
func (kb *KnowledgeBase) Resources(skill string) []types.Resource {
	src := kb.resources[skill]
	out := make([]types.Resource, len(src))
	for i, r := range src {
		if r.Rating != nil {
			rating := *r.Rating
			r.Rating = &rating
		}
		out[i] = r
	}
	return out
}

// Projects returns the project templates for a domain, or nil when the domain
// has none.
func (kb *KnowledgeBase) Projects(domain types.Domain) []types.ProjectIdea {
	src, ok := kb.projects[domain]
	if !ok {
		return nil
	}
	out := make([]types.ProjectIdea, len(src))
	for i, p := range src {
		out[i] = CopyProject(p)
	}
	return out
}

// CopyProject deep-copies a project template.
func CopyProject(p types.ProjectIdea) types.ProjectIdea {
	p.TechStack = cloneStrings(p.TechStack)
	p.Features = cloneStrings(p.Features)
	p.LearningOutcomes = cloneStrings(p.LearningOutcomes)
	return p
}

// Description returns the long-form description of a skill.
func (kb *KnowledgeBase) Description(skill string) (string, bool) {
	d, ok := kb.descriptions[skill]
	return d, ok
}

// Prerequisites returns the prerequisites of a skill, never nil.
func (kb *KnowledgeBase) Prerequisites(skill string) []string {
	return cloneStrings(kb.prerequisites[skill])
}

// Category returns the category of a skill, defaulting to Technical.
func (kb *KnowledgeBase) Category(skill string) types.Category {
	if c, ok := kb.categories[skill]; ok {
		return c
	}
	return types.CategoryTechnical
}

// JobTitles returns the catalog of current-job titles.
func (kb *KnowledgeBase) JobTitles() []string {
	return cloneStrings(kb.jobTitles)
}

// CareerPaths returns the curated career paths keyed by identifier.
func (kb *KnowledgeBase) CareerPaths() map[string]types.CareerPath {
	out := make(map[string]types.CareerPath, len(kb.careerPaths))
	for k, p := range kb.careerPaths {
		p.SkillsRequired = cloneStrings(p.SkillsRequired)
		p.Phases = append([]types.PathPhase(nil), p.Phases...)
		out[k] = p
	}
	return out
}

func cloneStrings(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}
