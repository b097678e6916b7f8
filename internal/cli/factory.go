package cli

import (
	"context"
	"os"

	"github.com/alanmeadows/sheetsmart/internal/assistant"
	"github.com/alanmeadows/sheetsmart/internal/config"
	"github.com/alanmeadows/sheetsmart/internal/llm"
	"github.com/alanmeadows/sheetsmart/internal/sheets"
	"github.com/alanmeadows/sheetsmart/internal/store"
)

// newSessionOptions maps configuration onto session collaborators.
// Tests replace it to inject doubles.
var newSessionOptions = sessionOptions

func sessionOptions(cfg *config.Config) assistant.Options {
	opts := assistant.Options{
		NewClient: func(ctx context.Context, apiKey string) (llm.Client, error) {
			model := cfg.Model.Name
			if cfg.Model.Provider == config.ProviderGemini {
				client, err := llm.NewGeminiClient(ctx, apiKey, model, cfg.Model.BaseURL)
				if err != nil {
					return nil, err
				}
				return client, nil
			}
			client, err := llm.NewOpenAIClient(apiKey, model, cfg.Model.BaseURL)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
		NeedsCredentials: cfg.Sheets.Backend != config.BackendXLSX,
		Highlight: &sheets.Color{
			Red:   cfg.Sheets.Highlight.Red,
			Green: cfg.Sheets.Highlight.Green,
			Blue:  cfg.Sheets.Highlight.Blue,
		},
	}

	if cfg.Sheets.Backend == config.BackendXLSX {
		opts.NewSheets = func(context.Context, string) (sheets.Service, error) {
			return sheets.NewXLSXService(), nil
		}
	} else {
		opts.NewSheets = func(ctx context.Context, credentialsPath string) (sheets.Service, error) {
			return sheets.NewGoogleService(ctx, credentialsPath)
		}
	}

	if cfg.History.IsEnabled() {
		opts.History = store.NewHistory(cfg.HistoryDir())
	}
	return opts
}

// apiKeyFromEnv returns the provider's API key from the process environment.
func apiKeyFromEnv(cfg *config.Config) string {
	if cfg.Model.Provider == config.ProviderGemini {
		return os.Getenv("GEMINI_API_KEY")
	}
	return os.Getenv("OPENAI_API_KEY")
}
