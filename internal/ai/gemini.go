package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	defaultGeminiModel       = "gemini-1.5-flash"
	defaultGeminiBaseURL     = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiTemperature = 0.3
	defaultGeminiMaxTokens   = 1000

	maxErrorBody = 512
)

// GeminiClient calls the Gemini generateContent endpoint for a single model.
type GeminiClient struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// NewGeminiClient returns ErrDisabled when no Gemini key is configured.
func NewGeminiClient(cfg Config) (*GeminiClient, error) {
	apiKey := strings.TrimSpace(cfg.GeminiAPIKey)
	if apiKey == "" {
		return nil, ErrDisabled
	}
	model := strings.TrimSpace(cfg.GeminiModel)
	if model == "" {
		model = defaultGeminiModel
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.GeminiBaseURL), "/")
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	temp := cfg.GeminiTemperature
	if temp <= 0 {
		temp = defaultGeminiTemperature
	}
	maxTokens := cfg.GeminiMaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultGeminiMaxTokens
	}
	return &GeminiClient{
		httpClient:  &http.Client{Timeout: cfg.timeout()},
		apiKey:      apiKey,
		model:       model,
		baseURL:     baseURL,
		temperature: temp,
		maxTokens:   maxTokens,
	}, nil
}

// Name reports the Gemini model identifier.
func (c *GeminiClient) Name() string {
	return c.model
}

// Enabled reports whether the client can make outbound calls.
func (c *GeminiClient) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Generate sends a single-shot prompt and returns the concatenated text parts
// of the first candidate.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     c.temperature,
			MaxOutputTokens: c.maxTokens,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the key travels in the query string; keep it out of the error
		return "", fmt.Errorf("gemini request: %s", redact(err.Error(), c.apiKey))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode, truncate(string(raw), maxErrorBody))
	}
	if !gjson.ValidBytes(raw) {
		return "", fmt.Errorf("decode response: invalid json")
	}

	var text strings.Builder
	for _, part := range gjson.GetBytes(raw, "candidates.0.content.parts.#.text").Array() {
		text.WriteString(part.String())
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}
	return text.String(), nil
}

func redact(message, secret string) string {
	if secret == "" {
		return message
	}
	message = strings.ReplaceAll(message, url.QueryEscape(secret), "API_KEY_HIDDEN")
	return strings.ReplaceAll(message, secret, "API_KEY_HIDDEN")
}

func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}
