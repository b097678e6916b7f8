package config

// Config is the top-level sheetsmart configuration.
// Secrets (API keys, credential files) are never part of it.
type Config struct {
	Model   ModelConfig   `json:"model"`
	Sheets  SheetsConfig  `json:"sheets"`
	History HistoryConfig `json:"history"`
}

// Provider names the chat-completion service used for submissions.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// ModelConfig selects the chat-completion provider and model.
type ModelConfig struct {
	Provider Provider `json:"provider"`
	// Name is the model identifier. Empty leaves the choice to the provider
	// client's default.
	Name string `json:"name,omitempty"`
	// BaseURL overrides the provider endpoint. Empty means the provider default.
	BaseURL string `json:"base_url,omitempty"`
}

// Backend names the spreadsheet implementation.
type Backend string

const (
	BackendGoogle Backend = "google"
	BackendXLSX   Backend = "xlsx"
)

// SheetsConfig controls the spreadsheet backend and write-back styling.
type SheetsConfig struct {
	Backend   Backend     `json:"backend"`
	Highlight ColorConfig `json:"highlight"`
}

// ColorConfig is an RGB color with components in [0, 1].
type ColorConfig struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// HistoryConfig controls the run history log.
type HistoryConfig struct {
	Enabled *bool  `json:"enabled"`
	Dir     string `json:"dir"`
}

// IsEnabled returns whether run history is recorded.
// Defaults to true when not explicitly set.
func (h HistoryConfig) IsEnabled() bool {
	if h.Enabled == nil {
		return true
	}
	return *h.Enabled
}

// boolPtr returns a pointer to the given bool value.
func boolPtr(b bool) *bool {
	return &b
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Model: ModelConfig{
			Provider: ProviderOpenAI,
		},
		Sheets: SheetsConfig{
			Backend:   BackendGoogle,
			Highlight: ColorConfig{Red: 0.9, Green: 1.0, Blue: 0.9},
		},
		History: HistoryConfig{
			Enabled: boolPtr(true),
			Dir:     "~/.local/share/sheetsmart/history",
		},
	}
}
