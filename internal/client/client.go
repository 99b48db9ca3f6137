// Package client calls the explanation gateway and falls back to the local
// heuristic whenever the gateway cannot supply an AI explanation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/wailsba22/arabic-explainer/internal/heuristic"
)

const (
	// DefaultURL is the gateway address used during local development.
	DefaultURL = "http://localhost:3000/api/explain"
	// LocalModel identifies explanations produced without the gateway.
	LocalModel = "local-heuristic"

	defaultTimeout = 30 * time.Second
	maxErrorBody   = 256
)

var (
	// ErrFallback is returned by Remote when the gateway asked for local analysis.
	ErrFallback = errors.New("gateway requested local analysis")
	// ErrBadResponse is returned by Remote when the reply cannot be decoded.
	ErrBadResponse = errors.New("gateway response invalid")
)

// Config controls where and how long the client waits for the gateway.
type Config struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Result is an explanation and where it came from.
type Result struct {
	Text  string `json:"explanation"`
	Model string `json:"model"`
	Local bool   `json:"local"`
}

// Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	url        string
}

type explainRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// New returns a client for the configured gateway URL.
func New(cfg Config) *Client {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		url = DefaultURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{httpClient: httpClient, url: url}
}

// Explain asks the gateway first and renders the local heuristic when the
// gateway fails for any reason. It always returns an explanation.
func (c *Client) Explain(ctx context.Context, code, language string) Result {
	result, err := c.Remote(ctx, code, language)
	if err == nil {
		return result
	}
	logrus.WithError(err).WithField("language", language).Debug("using local analysis")
	return Local(code, language)
}

// Remote posts the snippet to the gateway without any fallback.
func (c *Client) Remote(ctx context.Context, code, language string) (Result, error) {
	body, err := json.Marshal(explainRequest{Code: code, Language: heuristic.DisplayName(language)})
	if err != nil {
		return Result{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		message := gjson.GetBytes(raw, "error").String()
		if message == "" {
			message = truncate(string(raw), maxErrorBody)
		}
		return Result{}, fmt.Errorf("gateway status %d: %s", resp.StatusCode, message)
	}
	if !gjson.ValidBytes(raw) {
		return Result{}, ErrBadResponse
	}

	payload := gjson.ParseBytes(raw)
	if payload.Get("fallback").Bool() {
		return Result{}, ErrFallback
	}
	explanation := payload.Get("explanation")
	if explanation.Type != gjson.String || strings.TrimSpace(explanation.String()) == "" {
		return Result{}, ErrFallback
	}
	return Result{Text: explanation.String(), Model: payload.Get("model").String()}, nil
}

// Local renders the heuristic explanation without any network access.
func Local(code, language string) Result {
	return Result{
		Text:  heuristic.Explain(code, language),
		Model: LocalModel,
		Local: true,
	}
}

func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}
