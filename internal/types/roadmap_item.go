package types

// ItemType is the kind of activity a roadmap item represents.
type ItemType string

// Roadmap item types.
const (
	ItemSkill         ItemType = "skill"
	ItemProject       ItemType = "project"
	ItemCourse        ItemType = "course"
	ItemCertification ItemType = "certification"
	ItemResource      ItemType = "resource"
	ItemExperience    ItemType = "experience"
)

// Difficulty of a roadmap item.
type Difficulty string

// Difficulty values.
const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExpert       Difficulty = "Expert"
)

// Category groups roadmap items by the kind of competence they build.
type Category string

// Category values. The wire values keep their spaces.
const (
	CategoryTechnical       Category = "Technical"
	CategorySoftSkills      Category = "Soft Skills"
	CategoryDomainKnowledge Category = "Domain Knowledge"
	CategoryTools           Category = "Tools"
	CategoryLeadership      Category = "Leadership"
)

// ResourceType is the medium of a learning resource.
type ResourceType string

// Resource types.
const (
	ResourceCourse        ResourceType = "course"
	ResourceBook          ResourceType = "book"
	ResourceArticle       ResourceType = "article"
	ResourceDocumentation ResourceType = "documentation"
	ResourceVideo         ResourceType = "video"
	ResourceTutorial      ResourceType = "tutorial"
	ResourceCertification ResourceType = "certification"
)

// Cost of a learning resource.
type Cost string

// Cost values.
const (
	CostFree         Cost = "Free"
	CostPaid         Cost = "Paid"
	CostSubscription Cost = "Subscription"
)

// Complexity of a project template.
type Complexity string

// Complexity values.
const (
	ComplexitySimple     Complexity = "Simple"
	ComplexityMedium     Complexity = "Medium"
	ComplexityComplex    Complexity = "Complex"
	ComplexityEnterprise Complexity = "Enterprise"
)

// Resource is a learning resource from the knowledge base.
type Resource struct {
	Title       string       `json:"title" yaml:"title"`
	Type        ResourceType `json:"type" yaml:"type"`
	URL         string       `json:"url,omitempty" yaml:"url,omitempty"`
	Platform    string       `json:"platform,omitempty" yaml:"platform,omitempty"`
	Cost        Cost         `json:"cost" yaml:"cost"`
	Rating      *float64     `json:"rating,omitempty" yaml:"rating,omitempty"` // 0-5
	Description string       `json:"description" yaml:"description"`
}

// ProjectIdea is a project template from the knowledge base.
type ProjectIdea struct {
	Title            string     `json:"title" yaml:"title"`
	Description      string     `json:"description" yaml:"description"`
	TechStack        []string   `json:"techStack" yaml:"techStack"`
	Complexity       Complexity `json:"complexity" yaml:"complexity"`
	Features         []string   `json:"features" yaml:"features"`
	LearningOutcomes []string   `json:"learningOutcomes" yaml:"learningOutcomes"`
	TimeEstimate     string     `json:"timeEstimate" yaml:"timeEstimate"`
}

// RoadmapItem is one actionable entry of a generated roadmap. Phase is set
// by the generator that created the item and never changes afterwards.
type RoadmapItem struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Type           ItemType      `json:"type"`
	Priority       Priority      `json:"priority"`
	Difficulty     Difficulty    `json:"difficulty"`
	Duration       string        `json:"duration"`
	EstimatedHours int           `json:"estimatedHours"`
	Prerequisites  []string      `json:"prerequisites"`
	Skills         []string      `json:"skills"`
	Category       Category      `json:"category"`
	Resources      []Resource    `json:"resources"`
	Projects       []ProjectIdea `json:"projects,omitempty"`
	Phase          int           `json:"phase"`
}

// CareerPath is a curated example path shown in the catalog.
type CareerPath struct {
	Title          string      `json:"title" yaml:"title"`
	Description    string      `json:"description" yaml:"description"`
	TotalDuration  string      `json:"totalDuration" yaml:"totalDuration"`
	SkillsRequired []string    `json:"skillsRequired" yaml:"skillsRequired"`
	AverageSalary  string      `json:"averageSalary,omitempty" yaml:"averageSalary,omitempty"`
	Phases         []PathPhase `json:"phases" yaml:"phases"`
}

// PathPhase is one stage of a curated career path.
type PathPhase struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Duration    string `json:"duration" yaml:"duration"`
}
