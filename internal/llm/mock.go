package llm

import (
	"context"
	"sync"
)

// MockClient is a test double for Client.
type MockClient struct {
	mu            sync.Mutex
	DefaultResult string
	ModelName     string
	ValidateErr   error
	CompleteErr   error
	PromptHistory []string
	validations   int
}

// NewMockClient creates a new MockClient with sensible defaults.
func NewMockClient() *MockClient {
	return &MockClient{
		DefaultResult: "Mock LLM response",
		ModelName:     "mock-model",
	}
}

func (m *MockClient) Name() string  { return "mock" }
func (m *MockClient) Model() string { return m.ModelName }

func (m *MockClient) Validate(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validations++
	return m.ValidateErr
}

func (m *MockClient) Complete(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PromptHistory = append(m.PromptHistory, prompt)
	if m.CompleteErr != nil {
		return "", m.CompleteErr
	}
	return m.DefaultResult, nil
}

// GetPromptHistory returns all prompts sent to this mock.
func (m *MockClient) GetPromptHistory() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.PromptHistory))
	copy(result, m.PromptHistory)
	return result
}

// Validations returns how many times Validate was called.
func (m *MockClient) Validations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validations
}
