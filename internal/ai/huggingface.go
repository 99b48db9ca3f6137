package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	defaultHFBaseURL      = "https://api-inference.huggingface.co"
	defaultHFTemperature  = 0.7
	defaultHFMaxNewTokens = 500
)

// DefaultHFModels is the inference model order used when none is configured.
var DefaultHFModels = []string{
	"mistralai/Mixtral-8x7B-Instruct-v0.1",
	"meta-llama/Llama-2-7b-chat-hf",
	"google/flan-t5-xxl",
}

// HuggingFaceClient calls the hosted inference API for one model.
type HuggingFaceClient struct {
	httpClient   *http.Client
	apiKey       string
	model        string
	baseURL      string
	temperature  float64
	maxNewTokens int
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

// NewHuggingFaceClients builds one client per configured model, in order.
// It returns ErrDisabled when no Hugging Face key is configured.
func NewHuggingFaceClients(cfg Config) ([]*HuggingFaceClient, error) {
	apiKey := strings.TrimSpace(cfg.HFAPIKey)
	if apiKey == "" {
		return nil, ErrDisabled
	}
	models := cleanModels(cfg.HFModels)
	if len(models) == 0 {
		models = DefaultHFModels
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.HFBaseURL), "/")
	if baseURL == "" {
		baseURL = defaultHFBaseURL
	}
	temp := cfg.HFTemperature
	if temp <= 0 {
		temp = defaultHFTemperature
	}
	maxNew := cfg.HFMaxNewTokens
	if maxNew <= 0 {
		maxNew = defaultHFMaxNewTokens
	}

	httpClient := &http.Client{Timeout: cfg.timeout()}
	clients := make([]*HuggingFaceClient, 0, len(models))
	for _, model := range models {
		clients = append(clients, &HuggingFaceClient{
			httpClient:   httpClient,
			apiKey:       apiKey,
			model:        model,
			baseURL:      baseURL,
			temperature:  temp,
			maxNewTokens: maxNew,
		})
	}
	return clients, nil
}

// Name reports the inference model id.
func (c *HuggingFaceClient) Name() string {
	return c.model
}

// Enabled reports whether the client can make outbound calls.
func (c *HuggingFaceClient) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Generate posts the prompt to the model and extracts generated_text from
// either the list or the object response shape.
func (c *HuggingFaceClient) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	body, err := json.Marshal(hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxNewTokens:   c.maxNewTokens,
			Temperature:    c.temperature,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/models/"+c.model, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("huggingface request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("huggingface status %d: %s", resp.StatusCode, truncate(string(raw), maxErrorBody))
	}
	if !gjson.ValidBytes(raw) {
		return "", fmt.Errorf("decode response: invalid json")
	}

	text := gjson.GetBytes(raw, "0.generated_text").String()
	if text == "" {
		text = gjson.GetBytes(raw, "generated_text").String()
	}
	if text == "" {
		return "", fmt.Errorf("huggingface %s: %w", c.model, ErrEmptyResponse)
	}
	return text, nil
}

func cleanModels(models []string) []string {
	var out []string
	for _, model := range models {
		if trimmed := strings.TrimSpace(model); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
