package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultOpenAIModel is the model used when none is configured.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIClient implements Client on top of the official OpenAI SDK.
type OpenAIClient struct {
	sdk   openai.Client
	model string
}

// NewOpenAIClient creates an OpenAIClient for apiKey. baseURL may be empty.
// SDK retries are disabled: every call is attempted exactly once.
func NewOpenAIClient(apiKey, model, baseURL string) (*OpenAIClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIClient{
		sdk:   openai.NewClient(opts...),
		model: model,
	}, nil
}

// Name returns "openai".
func (c *OpenAIClient) Name() string { return "openai" }

// Model returns the configured model.
func (c *OpenAIClient) Model() string { return c.model }

// Validate lists the available models.
func (c *OpenAIClient) Validate(ctx context.Context) error {
	if _, err := c.sdk.Models.List(ctx); err != nil {
		return fmt.Errorf("listing models: %w", err)
	}
	slog.Debug("openai key accepted")
	return nil
}

// Complete sends a single chat completion request.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	slog.Debug("sending chat completion", "model", c.model, "prompt_len", len(prompt))

	resp, err := c.sdk.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.DeveloperMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
