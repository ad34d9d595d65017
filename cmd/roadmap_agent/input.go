package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/career-roadmap/internal/types"
)

// requestFlags collects a GenerateRequest from an input file and/or flags.
// Flags that were set override the file.
type requestFlags struct {
	input           string
	currentJob      string
	experience      string
	skills          []string
	specializations []string
	targetTitle     string
	targetLevel     string
	targetDomain    string
	careerGoals     string
	learningStyle   string
	timeCommitment  string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "Request file (JSON or YAML) with profile and target")
	fl.StringVar(&f.currentJob, "current-job", "", "Current job title")
	fl.StringVar(&f.experience, "experience", "", `Experience, e.g. "3 years"`)
	fl.StringArrayVar(&f.skills, "skill", nil, `Skill as "Name (Level)"; repeatable`)
	fl.StringArrayVar(&f.specializations, "specialization", nil, "Specialization; repeatable")
	fl.StringVar(&f.targetTitle, "target-title", "", "Target job title")
	fl.StringVar(&f.targetLevel, "target-level", "", "Target level: Junior, Mid, Senior, Lead, Principal or Staff")
	fl.StringVar(&f.targetDomain, "target-domain", "", "Target domain: Frontend, Backend, Fullstack, Mobile, DevOps, Data, ML or Management")
	fl.StringVar(&f.careerGoals, "career-goals", "", "Free-text career goals")
	fl.StringVar(&f.learningStyle, "learning-style", "", "Preferred learning style")
	fl.StringVar(&f.timeCommitment, "time-commitment", "", `Weekly time commitment, e.g. "10 hours"`)
}

// build loads the input file, applies changed flags and validates.
func (f *requestFlags) build(cmd *cobra.Command) (types.GenerateRequest, error) {
	var req types.GenerateRequest
	if f.input != "" {
		loaded, err := loadRequest(f.input)
		if err != nil {
			return types.GenerateRequest{}, err
		}
		req = loaded
	}

	changed := cmd.Flags().Changed
	setString := func(flag string, dst *string, v string) {
		if changed(flag) {
			*dst = v
		}
	}
	setString("current-job", &req.Profile.CurrentJob, f.currentJob)
	setString("experience", &req.Profile.Experience, f.experience)
	setString("target-title", &req.Target.Title, f.targetTitle)
	setString("career-goals", &req.CareerGoals, f.careerGoals)
	setString("learning-style", &req.LearningStyle, f.learningStyle)
	setString("time-commitment", &req.TimeCommitment, f.timeCommitment)
	if changed("target-level") {
		req.Target.Level = types.Level(f.targetLevel)
	}
	if changed("target-domain") {
		req.Target.Domain = types.Domain(f.targetDomain)
	}
	if changed("skill") {
		req.Profile.Skills = make([]types.ProfileSkill, 0, len(f.skills))
		for _, s := range f.skills {
			req.Profile.Skills = append(req.Profile.Skills, types.ParseProfileSkill(s))
		}
	}
	if changed("specialization") {
		req.Profile.Specializations = append([]string(nil), f.specializations...)
	}

	if err := req.Validate(); err != nil {
		return types.GenerateRequest{}, fmt.Errorf("invalid request: %w", err)
	}
	return req, nil
}

// loadRequest reads a GenerateRequest from a .json, .yaml or .yml file.
func loadRequest(path string) (types.GenerateRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.GenerateRequest{}, fmt.Errorf("failed to read request file: %w", err)
	}

	var req types.GenerateRequest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &req)
	default:
		err = json.Unmarshal(data, &req)
	}
	if err != nil {
		return types.GenerateRequest{}, fmt.Errorf("failed to parse request file %s: %w", path, err)
	}
	return req, nil
}
