package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var (
	// ErrNoAPIKey is returned when a Gemini client is requested without a key.
	ErrNoAPIKey = errors.New("API key is required")
	// ErrNoModel is returned when the requested tier has no model name.
	ErrNoModel = errors.New("no model configured")
	// ErrUnusableResponse wraps answers that arrived but carry no usable
	// text: blocked prompts, empty candidates, non-text parts.
	ErrUnusableResponse = errors.New("unusable model response")
)

// Request is a single JSON generation call.
type Request struct {
	System string
	Prompt string
	Tier   ModelTier
}

// Client generates JSON documents from prompts.
type Client interface {
	GenerateJSON(ctx context.Context, req Request) (string, error)
	Model(tier ModelTier) string
	Close() error
}

// GeminiClient implements Client on Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient connects to Gemini with apiKey. A nil config uses
// DefaultConfig.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, config: config}, nil
}

// GenerateJSON asks the tier's model for a JSON response and strips any
// markdown fence around it.
func (c *GeminiClient) GenerateJSON(ctx context.Context, req Request) (string, error) {
	name := c.config.ModelFor(req.Tier)
	if name == "" {
		return "", fmt.Errorf("%w for tier %s", ErrNoModel, req.Tier)
	}

	model := c.client.GenerativeModel(name)
	model.SetTemperature(c.config.Temperature)
	model.ResponseMIMEType = "application/json"
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return "", fmt.Errorf("%w: %v", ErrUnusableResponse, err)
		}
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// Model returns the model name used for tier.
func (c *GeminiClient) Model(tier ModelTier) string {
	return c.config.ModelFor(tier)
}

// Close releases the underlying connection.
func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", ErrUnusableResponse)
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content in response", ErrUnusableResponse)
	}

	var b strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: no text parts in response", ErrUnusableResponse)
	}
	return b.String(), nil
}
