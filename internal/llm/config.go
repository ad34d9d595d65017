// Package llm wraps the generative model used to draft roadmaps when no
// roadmap service is reachable.
package llm

// ModelTier selects a model by cost and capability.
type ModelTier string

const (
	// TierLite is the cheapest model, suitable for short structured answers.
	TierLite ModelTier = "lite"
	// TierStandard is the default tier for roadmap drafting.
	TierStandard ModelTier = "standard"
	// TierAdvanced trades latency for more thorough plans.
	TierAdvanced ModelTier = "advanced"
)

// ParseTier maps a flag value to a tier, defaulting to TierStandard.
func ParseTier(s string) ModelTier {
	switch ModelTier(s) {
	case TierLite, TierAdvanced:
		return ModelTier(s)
	default:
		return TierStandard
	}
}

// Config names the Gemini model behind each tier and the sampling
// temperature used for every call.
type Config struct {
	Models      map[ModelTier]string
	Temperature float32
}

// DefaultConfig returns the Gemini model lineup.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: 0.2,
	}
}

// ModelFor returns the model for tier, falling back to the standard and then
// the lite model. It returns "" when nothing is configured.
func (c *Config) ModelFor(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if m, ok := c.Models[t]; ok && m != "" {
			return m
		}
	}
	return ""
}

// WithModel returns a copy of c with tier mapped to model.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{
		Models:      make(map[ModelTier]string, len(c.Models)+1),
		Temperature: c.Temperature,
	}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}
