package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv keeps the developer's shell from leaking into config tests.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SHEETSMART_PROVIDER", "")
	t.Setenv("SHEETSMART_MODEL", "")
	t.Setenv("SHEETSMART_BACKEND", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderOpenAI, cfg.Model.Provider)
	assert.Empty(t, cfg.Model.Name)
	assert.Equal(t, BackendGoogle, cfg.Sheets.Backend)
	assert.Equal(t, ColorConfig{Red: 0.9, Green: 1.0, Blue: 0.9}, cfg.Sheets.Highlight)
	assert.True(t, cfg.History.IsEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoadJSONC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.jsonc")

	content := []byte(`{
  // This is a JSONC comment
  "model": {
    "name": "gpt-4.1-mini"
  },
  "sheets": {
    "backend": "xlsx"
  }
}`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	m, err := loadJSONC(path)
	require.NoError(t, err)

	model, ok := m["model"].(map[string]any)
	require.True(t, ok, "expected model to be a map")
	assert.Equal(t, "gpt-4.1-mini", model["name"])

	sheets, ok := m["sheets"].(map[string]any)
	require.True(t, ok, "expected sheets to be a map")
	assert.Equal(t, "xlsx", sheets["backend"])
}

func TestLoadJSONC_FileNotFound(t *testing.T) {
	_, err := loadJSONC("/nonexistent/path/config.jsonc")
	assert.Error(t, err)
}

func TestLoadJSONC_MalformedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"model": {"name": "x"`), 0644))

	_, err := loadJSONC(path)
	assert.Error(t, err)
}

func TestMergeDeepPreservesNestedFields(t *testing.T) {
	cfg := DefaultConfig()

	src := map[string]any{
		"sheets": map[string]any{
			"highlight": map[string]any{"red": 1.0},
		},
	}
	require.NoError(t, mergeIntoConfig(&cfg, src))

	assert.Equal(t, 1.0, cfg.Sheets.Highlight.Red)
	assert.Equal(t, 1.0, cfg.Sheets.Highlight.Green)
	assert.Equal(t, 0.9, cfg.Sheets.Highlight.Blue)
	assert.Equal(t, BackendGoogle, cfg.Sheets.Backend)
	assert.Empty(t, cfg.Model.Name)
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("SHEETSMART_PROVIDER", "Gemini")
	t.Setenv("SHEETSMART_MODEL", "gemini-2.5-flash")
	t.Setenv("SHEETSMART_BACKEND", "XLSX")

	applyEnvOverrides(&cfg)

	assert.Equal(t, ProviderGemini, cfg.Model.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model.Name)
	assert.Equal(t, BackendXLSX, cfg.Sheets.Backend)
}

func TestValidateRejectsUnknownNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model.Provider = "bard"
	assert.ErrorContains(t, cfg.Validate(), "unknown model provider")

	cfg = DefaultConfig()
	cfg.Sheets.Backend = "csv"
	assert.ErrorContains(t, cfg.Validate(), "unknown sheets backend")
}

func TestHistoryDisabledExplicitly(t *testing.T) {
	h := HistoryConfig{Enabled: boolPtr(false)}
	assert.False(t, h.IsEnabled())
	assert.True(t, HistoryConfig{}.IsEnabled())
}

func TestHistoryDirExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(home, ".local/share/sheetsmart/history"), cfg.HistoryDir())

	cfg.History.Dir = "/var/lib/sheetsmart"
	assert.Equal(t, "/var/lib/sheetsmart", cfg.HistoryDir())
}

func TestLoadMergesUserAndOverride(t *testing.T) {
	clearEnv(t)
	userConfigDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", userConfigDir)

	dir := filepath.Join(userConfigDir, "sheetsmart")
	require.NoError(t, os.MkdirAll(dir, 0755))
	userConfig := []byte(`{"model":{"name":"user-model"},"sheets":{"backend":"xlsx"}}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sheetsmart.jsonc"), userConfig, 0644))

	overridePath := filepath.Join(t.TempDir(), "override.jsonc")
	require.NoError(t, os.WriteFile(overridePath, []byte(`{"model":{"name":"override-model"}}`), 0644))

	cfg, err := Load(overridePath)
	require.NoError(t, err)

	assert.Equal(t, "override-model", cfg.Model.Name)
	assert.Equal(t, BackendXLSX, cfg.Sheets.Backend)
	assert.Equal(t, ProviderOpenAI, cfg.Model.Provider)
}

func TestLoadMissingOverrideFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.jsonc"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidEnvProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SHEETSMART_PROVIDER", "nope")

	_, err := Load("")
	assert.ErrorContains(t, err, "unknown model provider")
}
