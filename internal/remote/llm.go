package remote

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonathan/career-roadmap/internal/llm"
	"github.com/jonathan/career-roadmap/internal/prompts"
	"github.com/jonathan/career-roadmap/internal/roadmap"
	"github.com/jonathan/career-roadmap/internal/types"
)

// LLMGenerator drafts roadmaps with a language model, using the same prompt
// the local generator publishes and the same decoder as the service client.
type LLMGenerator struct {
	client llm.Client
	tier   llm.ModelTier
	logger *slog.Logger
}

// NewLLMGenerator wraps an llm.Client.
func NewLLMGenerator(client llm.Client, tier llm.ModelTier, logger *slog.Logger) *LLMGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &LLMGenerator{client: client, tier: tier, logger: logger}
}

// Fetch implements Fetcher.
func (g *LLMGenerator) Fetch(ctx context.Context, req Request) types.RoadmapResult {
	text, err := g.client.GenerateJSON(ctx, llm.Request{
		System: prompts.MustGet("roadmap.json", "roadmap-json-system"),
		Prompt: LLMPrompt(req),
		Tier:   g.tier,
	})
	if err != nil {
		g.logger.Warn("roadmap model call failed", "model", g.client.Model(g.tier), "error", err)
		return Result(nil, modelError(err))
	}

	resp, err := Decode([]byte(llm.CleanJSONBlock(text)))
	if err != nil {
		g.logger.Warn("roadmap model returned an unusable document", "model", g.client.Model(g.tier), "error", err)
	}
	return Result(resp, err)
}

// LLMPrompt is the roadmap prompt plus any goals, learning style and time
// budget the request carries.
func LLMPrompt(req Request) string {
	var b strings.Builder
	b.WriteString(roadmap.GeneratePrompt(req.Profile, req.Target))
	if req.CareerGoals != "" {
		fmt.Fprintf(&b, "\nCareer goals: %s\n", req.CareerGoals)
	}
	if req.LearningStyle != "" {
		fmt.Fprintf(&b, "Preferred learning style: %s\n", req.LearningStyle)
	}
	if req.TimeCommitment != "" {
		fmt.Fprintf(&b, "Weekly time commitment: %s\n", req.TimeCommitment)
	}
	return b.String()
}
