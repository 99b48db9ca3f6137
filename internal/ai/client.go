package ai

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout           = 30 * time.Second
	defaultMinResponseLength = 20
)

// Config holds the credentials and tuning for every upstream tier.
type Config struct {
	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string
	GeminiTemperature float64
	GeminiMaxTokens   int

	HFAPIKey       string
	HFModels       []string
	HFBaseURL      string
	HFTemperature  float64
	HFMaxNewTokens int
	// MinResponseLength is the trimmed length a Hugging Face answer must
	// exceed. Zero selects the default; a negative value only requires
	// non-empty text.
	MinResponseLength int

	Timeout time.Duration
}

func (cfg Config) timeout() time.Duration {
	if cfg.Timeout <= 0 {
		return defaultTimeout
	}
	return cfg.Timeout
}

func (cfg Config) minResponseLength() int {
	switch {
	case cfg.MinResponseLength == 0:
		return defaultMinResponseLength
	case cfg.MinResponseLength < 0:
		return 0
	default:
		return cfg.MinResponseLength
	}
}

// New builds the provider chain: Gemini first, then each Hugging Face model
// in configured order. Tiers without a key are left out and logged.
func New(cfg Config, logger logrus.FieldLogger) (*Chain, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	var steps []Step

	gemini, err := NewGeminiClient(cfg)
	switch {
	case err == nil:
		steps = append(steps, Step{Provider: gemini, Accept: AcceptNonEmpty})
	case errors.Is(err, ErrDisabled):
		logger.Info("Gemini disabled - no API key configured")
	default:
		return nil, err
	}

	hfClients, err := NewHuggingFaceClients(cfg)
	switch {
	case err == nil:
		accept := AcceptMinLength(cfg.minResponseLength())
		for _, client := range hfClients {
			steps = append(steps, Step{Provider: client, Accept: accept})
		}
	case errors.Is(err, ErrDisabled):
		logger.Info("Hugging Face disabled - no API key configured")
	default:
		return nil, err
	}

	return NewChain(steps...).WithLogger(logger), nil
}
