package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/wailsba22/arabic-explainer/internal/ai"
)

const (
	// PathEnv names the variable that points at the optional YAML file.
	PathEnv     = "EXPLAINER_CONFIG"
	defaultPath = "config.yaml"
)

// ServerConfig defines the HTTP server configuration.
type ServerConfig struct {
	Port           string   `yaml:"port"`
	Mode           string   `yaml:"mode"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// GeminiConfig defines the first provider tier.
type GeminiConfig struct {
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// HuggingFaceConfig defines the second provider tier.
type HuggingFaceConfig struct {
	APIKey            string   `yaml:"api_key"`
	Models            []string `yaml:"models"`
	BaseURL           string   `yaml:"base_url"`
	Temperature       float64  `yaml:"temperature"`
	MaxNewTokens      int      `yaml:"max_new_tokens"`
	MinResponseLength int      `yaml:"min_response_length"`
}

// LoggingConfig defines the logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Config is the top-level configuration struct.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	HuggingFace HuggingFaceConfig `yaml:"huggingface"`
	Timeout     time.Duration     `yaml:"timeout"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "3000"},
		Gemini: GeminiConfig{
			Model:       "gemini-1.5-flash",
			Temperature: 0.3,
			MaxTokens:   1000,
		},
		HuggingFace: HuggingFaceConfig{
			Models:            append([]string(nil), ai.DefaultHFModels...),
			Temperature:       0.7,
			MaxNewTokens:      500,
			MinResponseLength: 20,
		},
		Timeout: 30 * time.Second,
		Logging: LoggingConfig{Level: "info", Format: "text", Output: "stdout"},
	}
}

// Load reads the optional .env file, the optional YAML file and finally the
// process environment, each layer overriding the previous one. An empty path
// falls back to EXPLAINER_CONFIG and then to config.yaml; only an explicitly
// named file is required to exist.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	required := strings.TrimSpace(path) != ""
	if !required {
		if env := strings.TrimSpace(os.Getenv(PathEnv)); env != "" {
			path, required = env, true
		} else {
			path = defaultPath
		}
	}

	cfg := Default()
	if err := cfg.loadFile(path, required); err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from the environment. Unparseable numbers and
// durations are ignored with a warning.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	list := func(key string, dst *[]string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = splitList(v)
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				*dst = n
			} else {
				logrus.Warnf("ignoring %s=%q: %v", key, v, err)
			}
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				*dst = f
			} else {
				logrus.Warnf("ignoring %s=%q: %v", key, v, err)
			}
		}
	}

	str("PORT", &c.Server.Port)
	str("GIN_MODE", &c.Server.Mode)
	list("ALLOWED_ORIGINS", &c.Server.AllowedOrigins)

	str("GEMINI_API_KEY", &c.Gemini.APIKey)
	str("GEMINI_MODEL", &c.Gemini.Model)
	str("GEMINI_BASE_URL", &c.Gemini.BaseURL)
	float("GEMINI_TEMPERATURE", &c.Gemini.Temperature)
	integer("GEMINI_MAX_TOKENS", &c.Gemini.MaxTokens)

	str("HF_API_KEY", &c.HuggingFace.APIKey)
	list("HF_MODELS", &c.HuggingFace.Models)
	str("HF_BASE_URL", &c.HuggingFace.BaseURL)
	float("HF_TEMPERATURE", &c.HuggingFace.Temperature)
	integer("HF_MAX_NEW_TOKENS", &c.HuggingFace.MaxNewTokens)
	integer("HF_MIN_RESPONSE_LENGTH", &c.HuggingFace.MinResponseLength)

	if v, ok := lookup("AI_TIMEOUT"); ok && strings.TrimSpace(v) != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			c.Timeout = d
		} else {
			logrus.Warnf("ignoring AI_TIMEOUT=%q: %v", v, err)
		}
	}

	str("LOG_LEVEL", &c.Logging.Level)
	str("LOG_FORMAT", &c.Logging.Format)
	str("LOG_OUTPUT", &c.Logging.Output)
}

// AI converts the provider sections into the chain configuration. A minimum
// response length of zero or less only requires non-empty text.
func (c *Config) AI() ai.Config {
	minLength := c.HuggingFace.MinResponseLength
	if minLength <= 0 {
		minLength = -1
	}
	return ai.Config{
		GeminiAPIKey:      c.Gemini.APIKey,
		GeminiModel:       c.Gemini.Model,
		GeminiBaseURL:     c.Gemini.BaseURL,
		GeminiTemperature: c.Gemini.Temperature,
		GeminiMaxTokens:   c.Gemini.MaxTokens,
		HFAPIKey:          c.HuggingFace.APIKey,
		HFModels:          c.HuggingFace.Models,
		HFBaseURL:         c.HuggingFace.BaseURL,
		HFTemperature:     c.HuggingFace.Temperature,
		HFMaxNewTokens:    c.HuggingFace.MaxNewTokens,
		MinResponseLength: minLength,
		Timeout:           c.Timeout,
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
