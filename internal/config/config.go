package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/tidwall/jsonc"
)

// Load reads and merges configuration from the user-level JSONC file and an
// optional override file.
// Resolution order: defaults → user config (~/.config/sheetsmart/sheetsmart.jsonc)
// → override file → environment variables.
func Load(overridePath string) (*Config, error) {
	cfg := DefaultConfig()

	if userPath, err := UserConfigPath(); err == nil {
		if userMap, err := loadJSONC(userPath); err == nil {
			if err := mergeIntoConfig(&cfg, userMap); err != nil {
				return nil, fmt.Errorf("merging user config: %w", err)
			}
		}
	}

	if overridePath != "" {
		overrideMap, err := loadJSONC(overridePath)
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", overridePath, err)
		}
		if err := mergeIntoConfig(&cfg, overrideMap); err != nil {
			return nil, fmt.Errorf("merging override config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UserConfigPath returns the location of the user-level config file.
func UserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sheetsmart", "sheetsmart.jsonc"), nil
}

// Validate rejects unknown provider and backend names.
func (c *Config) Validate() error {
	switch c.Model.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unknown model provider %q (want openai or gemini)", c.Model.Provider)
	}
	switch c.Sheets.Backend {
	case BackendGoogle, BackendXLSX:
	default:
		return fmt.Errorf("unknown sheets backend %q (want google or xlsx)", c.Sheets.Backend)
	}
	return nil
}

// HistoryDir returns the history directory with a leading ~ expanded.
func (c *Config) HistoryDir() string {
	return expandHome(c.History.Dir)
}

// loadJSONC reads a JSONC file and returns it as a map.
func loadJSONC(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	jsonData := jsonc.ToJSON(data)
	var m map[string]any
	if err := json.Unmarshal(jsonData, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// mergeIntoConfig marshals the config to a map, deep-merges the source map over it,
// then unmarshals back to the Config struct.
func mergeIntoConfig(cfg *Config, src map[string]any) error {
	cfgBytes, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	var dst map[string]any
	if err := json.Unmarshal(cfgBytes, &dst); err != nil {
		return err
	}

	if err := mergo.Merge(&dst, src, mergo.WithOverride); err != nil {
		return err
	}

	merged, err := json.Marshal(dst)
	if err != nil {
		return err
	}
	return json.Unmarshal(merged, cfg)
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if p := os.Getenv("SHEETSMART_PROVIDER"); p != "" {
		cfg.Model.Provider = Provider(strings.ToLower(p))
	}
	if m := os.Getenv("SHEETSMART_MODEL"); m != "" {
		cfg.Model.Name = m
	}
	if b := os.Getenv("SHEETSMART_BACKEND"); b != "" {
		cfg.Sheets.Backend = Backend(strings.ToLower(b))
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
