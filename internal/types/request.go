package types

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ProfileSkill is a skill with an optional self-rated level label.
type ProfileSkill struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
}

var labelledSkill = regexp.MustCompile(`^(.*?)\s*\((.*?)\)$`)

// ParseProfileSkill splits "Name (Level)" into its parts. Strings without a
// trailing parenthetical yield an empty Level.
func ParseProfileSkill(s string) ProfileSkill {
	s = strings.TrimSpace(s)
	if m := labelledSkill.FindStringSubmatch(s); m != nil {
		return ProfileSkill{Name: m[1], Level: m[2]}
	}
	return ProfileSkill{Name: s}
}

// String renders the skill in the "Name (Level)" convention.
func (s ProfileSkill) String() string {
	if s.Level == "" {
		return s.Name
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.Level)
}

// UnmarshalJSON accepts either "Name (Level)" or {"name": ..., "level": ...}.
func (s *ProfileSkill) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*s = ParseProfileSkill(raw)
		return nil
	}
	type plain ProfileSkill
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("skill must be a string or an object: %w", err)
	}
	*s = ProfileSkill(p)
	return nil
}

// UnmarshalYAML accepts the same two shapes as UnmarshalJSON.
func (s *ProfileSkill) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err == nil {
		*s = ParseProfileSkill(raw)
		return nil
	}
	type plain ProfileSkill
	var p plain
	if err := unmarshal(&p); err != nil {
		return fmt.Errorf("skill must be a string or a mapping: %w", err)
	}
	*s = ProfileSkill(p)
	return nil
}

// ProfileInput is the boundary form of CurrentProfile.
type ProfileInput struct {
	CurrentJob      string         `json:"currentJob" yaml:"currentJob" validate:"required"`
	Experience      string         `json:"experience" yaml:"experience" validate:"required"`
	Skills          []ProfileSkill `json:"skills" yaml:"skills" validate:"dive"`
	Specializations []string       `json:"specializations,omitempty" yaml:"specializations,omitempty"`
}

// GenerateRequest is the input for every roadmap operation exposed over the
// CLI and HTTP API.
type GenerateRequest struct {
	Profile        ProfileInput `json:"profile" yaml:"profile"`
	Target         TargetRole   `json:"target" yaml:"target"`
	CareerGoals    string       `json:"careerGoals,omitempty" yaml:"careerGoals,omitempty"`
	LearningStyle  string       `json:"learningStyle,omitempty" yaml:"learningStyle,omitempty"`
	TimeCommitment string       `json:"timeCommitment,omitempty" yaml:"timeCommitment,omitempty"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
