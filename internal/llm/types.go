package llm

import (
	"context"
	"errors"
)

// ErrEmptyReply is returned when the service answers without any choice.
var ErrEmptyReply = errors.New("model returned no choices")

// Client abstracts a chat-completion service for testability.
type Client interface {
	// Name returns the provider identifier (e.g., "openai", "gemini").
	Name() string

	// Model returns the model identifier every completion is sent to.
	Model() string

	// Validate issues a lightweight authenticated call (list models) to
	// confirm the API key is accepted.
	Validate(ctx context.Context) error

	// Complete sends prompt as a single developer-role message and returns
	// the first choice's text, trimmed.
	Complete(ctx context.Context, prompt string) (string, error)
}
