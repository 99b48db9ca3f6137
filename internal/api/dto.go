package api

import (
	"strings"

	"github.com/wailsba22/arabic-explainer/internal/heuristic"
)

// ExplainRequest is the body accepted by /api/explain and /api/analyze.
type ExplainRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// Valid reports whether both fields carry non-whitespace content.
func (r ExplainRequest) Valid() bool {
	return strings.TrimSpace(r.Code) != "" && strings.TrimSpace(r.Language) != ""
}

// ExplainResponse carries the text of the first provider that answered.
type ExplainResponse struct {
	Explanation string `json:"explanation"`
	Model       string `json:"model"`
}

// FallbackResponse tells the caller to run its local analysis instead.
type FallbackResponse struct {
	Explanation *string `json:"explanation"`
	Fallback    bool    `json:"fallback"`
	Message     string  `json:"message"`
}

// AnalyzeResponse is the server-side rendering of the local heuristic.
type AnalyzeResponse struct {
	Explanation string              `json:"explanation"`
	Model       string              `json:"model"`
	Analysis    *heuristic.Analysis `json:"analysis"`
}

// ConfigResponse describes the enabled explanation sources; keys are never included.
type ConfigResponse struct {
	AIEnabled  bool     `json:"ai_enabled"`
	Models     []string `json:"models"`
	LocalModel string   `json:"local_model"`
	Languages  []string `json:"languages"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
