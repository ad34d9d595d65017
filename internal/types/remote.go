package types

import (
	"encoding/json"
	"fmt"
)

// Extension tags that remote roadmaps may carry beyond the closed enums.
const (
	PriorityImportant = "Important"
	ItemTypeAction    = "action"
)

// ItemPriority is the priority tag of a remote roadmap item. It holds either
// one of the closed Priority values or an extension tag such as "Important".
type ItemPriority struct {
	core      Priority
	extension string
}

// CorePriority wraps a closed Priority value.
func CorePriority(p Priority) ItemPriority {
	return ItemPriority{core: p}
}

// ExtensionPriority wraps a tag outside the closed Priority set.
func ExtensionPriority(tag string) ItemPriority {
	if p := Priority(tag); p.Rank() > 0 {
		return ItemPriority{core: p}
	}
	return ItemPriority{extension: tag}
}

// Known returns the closed Priority value when the tag is one.
func (p ItemPriority) Known() (Priority, bool) {
	return p.core, p.core != ""
}

// IsExtension reports whether the tag is outside the closed set.
func (p ItemPriority) IsExtension() bool {
	return p.core == "" && p.extension != ""
}

func (p ItemPriority) String() string {
	if p.core != "" {
		return string(p.core)
	}
	return p.extension
}

// MarshalJSON writes the tag as a plain string.
func (p ItemPriority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts any string tag.
func (p *ItemPriority) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("priority must be a string: %w", err)
	}
	*p = ExtensionPriority(tag)
	return nil
}

// ItemKind is the type tag of a remote roadmap item. It holds either one of
// the closed ItemType values or an extension tag such as "action".
type ItemKind struct {
	core      ItemType
	extension string
}

var knownItemTypes = map[ItemType]bool{
	ItemSkill: true, ItemProject: true, ItemCourse: true,
	ItemCertification: true, ItemResource: true, ItemExperience: true,
}

// CoreKind wraps a closed ItemType value.
func CoreKind(t ItemType) ItemKind {
	return ItemKind{core: t}
}

// ExtensionKind wraps a tag outside the closed ItemType set.
func ExtensionKind(tag string) ItemKind {
	if knownItemTypes[ItemType(tag)] {
		return ItemKind{core: ItemType(tag)}
	}
	return ItemKind{extension: tag}
}

// Known returns the closed ItemType value when the tag is one.
func (k ItemKind) Known() (ItemType, bool) {
	return k.core, k.core != ""
}

// IsExtension reports whether the tag is outside the closed set.
func (k ItemKind) IsExtension() bool {
	return k.core == "" && k.extension != ""
}

func (k ItemKind) String() string {
	if k.core != "" {
		return string(k.core)
	}
	return k.extension
}

// MarshalJSON writes the tag as a plain string.
func (k ItemKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON accepts any string tag.
func (k *ItemKind) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("type must be a string: %w", err)
	}
	*k = ExtensionKind(tag)
	return nil
}

// PhaseItem is a roadmap item as exchanged with the remote generation
// service. It is a superset of RoadmapItem.
type PhaseItem struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Type           ItemKind      `json:"type"`
	Priority       ItemPriority  `json:"priority"`
	Difficulty     Difficulty    `json:"difficulty"`
	Duration       string        `json:"duration"`
	EstimatedHours int           `json:"estimatedHours"`
	Prerequisites  []string      `json:"prerequisites"`
	Skills         []string      `json:"skills"`
	Completed      bool          `json:"completed"`
	Category       Category      `json:"category"`
	Resources      []Resource    `json:"resources"`
	Projects       []ProjectIdea `json:"projects,omitempty"`
	Phase          int           `json:"phase"`
}

// AsPhaseItem converts a locally generated item to the exchange shape.
func (it RoadmapItem) AsPhaseItem() PhaseItem {
	return PhaseItem{
		ID:             it.ID,
		Title:          it.Title,
		Description:    it.Description,
		Type:           CoreKind(it.Type),
		Priority:       CorePriority(it.Priority),
		Difficulty:     it.Difficulty,
		Duration:       it.Duration,
		EstimatedHours: it.EstimatedHours,
		Prerequisites:  it.Prerequisites,
		Skills:         it.Skills,
		Category:       it.Category,
		Resources:      it.Resources,
		Projects:       it.Projects,
		Phase:          it.Phase,
	}
}

// RoadmapPhase groups the items of one roadmap phase.
type RoadmapPhase struct {
	ID             int         `json:"id"`
	Title          string      `json:"title"`
	Goal           string      `json:"goal"`
	Focus          string      `json:"focus"`
	EstimatedHours int         `json:"estimatedHours"`
	EstimatedWeeks int         `json:"estimatedWeeks"`
	Items          []PhaseItem `json:"items"`
}

// RoadmapResponse is a complete phase-grouped roadmap, either produced
// locally or supplied by the remote generation service.
type RoadmapResponse struct {
	Phases              []RoadmapPhase `json:"phases"`
	TotalEstimatedHours int            `json:"totalEstimatedHours"`
	TotalEstimatedWeeks int            `json:"totalEstimatedWeeks"`
}

// RoadmapResult is what the remote collaborator hands back to callers. It is
// always a value: failures are reported in Error, never as a Go error.
type RoadmapResult struct {
	Success bool             `json:"success"`
	Data    *RoadmapResponse `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
}
