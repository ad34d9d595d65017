package roadmap

import (
	"strings"

	"github.com/jonathan/career-roadmap/internal/prompts"
	"github.com/jonathan/career-roadmap/internal/types"
)

const (
	promptFile = "roadmap.json"
	promptKey  = "career-roadmap"
)

// GeneratePrompt renders the profile and target into the instruction block
// sent to an external generation service. It does no roadmap logic.
func GeneratePrompt(profile types.CurrentProfile, target types.TargetRole) string {
	return prompts.Format(prompts.MustGet(promptFile, promptKey), map[string]string{
		"CurrentJob": profile.CurrentJob,
		"Experience": profile.Experience,
		"Level":      string(target.Level),
		"Title":      target.Title,
		"Domain":     string(target.Domain),
		"Skills":     strings.Join(profile.Skills, ", "),
	})
}
