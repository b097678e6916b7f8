package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the Gemini model used when none is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient implements Client using Google's GenAI SDK.
// Gemini has no developer role, so the prompt travels as one user content.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a GeminiClient for apiKey. baseURL may be empty.
func NewGeminiClient(ctx context.Context, apiKey, model, baseURL string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Name returns "gemini".
func (c *GeminiClient) Name() string { return "gemini" }

// Model returns the configured model.
func (c *GeminiClient) Model() string { return c.model }

// Validate lists the available models.
func (c *GeminiClient) Validate(ctx context.Context) error {
	if _, err := c.client.Models.List(ctx, &genai.ListModelsConfig{PageSize: 1}); err != nil {
		return fmt.Errorf("listing models: %w", err)
	}
	slog.Debug("gemini key accepted")
	return nil
}

// Complete generates content for a single user message.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	slog.Debug("sending generate content", "model", c.model, "prompt_len", len(prompt))

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyReply
	}
	return strings.TrimSpace(resp.Text()), nil
}
