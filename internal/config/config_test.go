package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 0.3, cfg.Gemini.Temperature)
	assert.Equal(t, 1000, cfg.Gemini.MaxTokens)
	assert.Len(t, cfg.HuggingFace.Models, 3)
	assert.Equal(t, 0.7, cfg.HuggingFace.Temperature)
	assert.Equal(t, 500, cfg.HuggingFace.MaxNewTokens)
	assert.Equal(t, 20, cfg.HuggingFace.MinResponseLength)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.Gemini.APIKey)
	assert.Empty(t, cfg.HuggingFace.APIKey)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(mapLookup(map[string]string{
		"PORT":                   "8080",
		"GEMINI_API_KEY":         " gem-key ",
		"GEMINI_TEMPERATURE":     "0.5",
		"GEMINI_MAX_TOKENS":      "not-a-number",
		"HF_API_KEY":             "hf-key",
		"HF_MODELS":              "org/a, ,org/b",
		"HF_MIN_RESPONSE_LENGTH": "0",
		"AI_TIMEOUT":             "5s",
		"ALLOWED_ORIGINS":        "http://localhost:5173,https://example.com",
		"LOG_FORMAT":             "json",
		"LOG_LEVEL":              "",
	}))

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gem-key", cfg.Gemini.APIKey)
	assert.Equal(t, 0.5, cfg.Gemini.Temperature)
	assert.Equal(t, 1000, cfg.Gemini.MaxTokens, "invalid numbers keep the previous value")
	assert.Equal(t, "hf-key", cfg.HuggingFace.APIKey)
	assert.Equal(t, []string{"org/a", "org/b"}, cfg.HuggingFace.Models)
	assert.Equal(t, 0, cfg.HuggingFace.MinResponseLength)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"http://localhost:5173", "https://example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level, "empty values are ignored")
}

func TestAIConversion(t *testing.T) {
	cfg := Default()
	cfg.Gemini.APIKey = "g"
	cfg.HuggingFace.APIKey = "h"

	aiCfg := cfg.AI()
	assert.Equal(t, "g", aiCfg.GeminiAPIKey)
	assert.Equal(t, "h", aiCfg.HFAPIKey)
	assert.Equal(t, 20, aiCfg.MinResponseLength)
	assert.Equal(t, 30*time.Second, aiCfg.Timeout)

	cfg.HuggingFace.MinResponseLength = 0
	assert.Equal(t, -1, cfg.AI().MinResponseLength)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "explainer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "4000"
gemini:
  api_key: yaml-key
  model: gemini-pro
huggingface:
  models:
    - org/only
  min_response_length: 40
timeout: 10s
logging:
  level: debug
`), 0o600))

	for _, key := range []string{"PORT", "GEMINI_API_KEY", "HF_MODELS", "HF_MIN_RESPONSE_LENGTH", "AI_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	t.Setenv("GEMINI_MODEL", "gemini-from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "yaml-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-from-env", cfg.Gemini.Model)
	assert.Equal(t, []string{"org/only"}, cfg.HuggingFace.Models)
	assert.Equal(t, 40, cfg.HuggingFace.MinResponseLength)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 0.7, cfg.HuggingFace.Temperature, "unset yaml fields keep defaults")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv(PathEnv, "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}
