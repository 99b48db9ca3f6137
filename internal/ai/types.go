package ai

import (
	"context"
	"errors"
)

// Explanation is the text returned by the first provider that produced an
// acceptable answer, along with that provider's model identifier.
type Explanation struct {
	Text  string `json:"explanation"`
	Model string `json:"model"`
}

// Provider is a single upstream model that turns a prompt into text.
type Provider interface {
	Name() string
	Enabled() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

// Explainer produces an explanation for a prompt. *Chain satisfies it.
type Explainer interface {
	Enabled() bool
	Models() []string
	Explain(ctx context.Context, prompt string) (Explanation, error)
}

var (
	// ErrDisabled is returned when a provider or the whole chain has no credentials.
	ErrDisabled = errors.New("ai provider disabled")
	// ErrExhausted is returned when every enabled provider failed.
	ErrExhausted = errors.New("ai providers exhausted")
	// ErrRejected marks provider output that did not satisfy its step's predicate.
	ErrRejected = errors.New("ai response rejected")
	// ErrEmptyResponse marks a successful upstream call without usable text.
	ErrEmptyResponse = errors.New("ai empty response")
)
