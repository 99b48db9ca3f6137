package ai

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/wailsba22/arabic-explainer/internal/util"
)

// Step pairs a provider with the predicate its output must satisfy before the
// chain stops. A nil Accept takes any text.
type Step struct {
	Provider Provider
	Accept   func(text string) bool
}

// Chain tries its steps in order and returns the first accepted output.
type Chain struct {
	steps  []Step
	logger logrus.FieldLogger
}

// NewChain returns a chain over the given steps. Steps with a nil provider are dropped.
func NewChain(steps ...Step) *Chain {
	kept := make([]Step, 0, len(steps))
	for _, step := range steps {
		if step.Provider != nil {
			kept = append(kept, step)
		}
	}
	return &Chain{steps: kept, logger: logrus.StandardLogger()}
}

// WithLogger swaps the logger used for per-step diagnostics.
func (c *Chain) WithLogger(logger logrus.FieldLogger) *Chain {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Enabled reports whether at least one step can be attempted.
func (c *Chain) Enabled() bool {
	return len(c.Models()) > 0
}

// Models lists the enabled provider names in attempt order.
func (c *Chain) Models() []string {
	if c == nil {
		return nil
	}
	var names []string
	for _, step := range c.steps {
		if step.Provider.Enabled() {
			names = append(names, step.Provider.Name())
		}
	}
	return names
}

// Explain walks the enabled steps sequentially. Provider failures and
// rejected outputs are logged and skipped; ErrExhausted is returned when no
// step succeeds and ErrDisabled when none could be attempted.
func (c *Chain) Explain(ctx context.Context, prompt string) (Explanation, error) {
	if !c.Enabled() {
		return Explanation{}, ErrDisabled
	}

	var lastErr error
	for _, step := range c.steps {
		if !step.Provider.Enabled() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return Explanation{}, err
		}

		name := step.Provider.Name()
		timer := util.StartTimer()
		text, err := step.Provider.Generate(ctx, prompt)
		if err == nil && step.Accept != nil && !step.Accept(text) {
			err = ErrRejected
		}

		entry := c.logger.WithFields(logrus.Fields{
			"model":       name,
			"duration_ms": timer.ElapsedMs(),
		})
		if err != nil {
			lastErr = err
			if errors.Is(err, ErrRejected) {
				entry.Warn("ai response rejected, trying next model")
			} else {
				entry.WithError(err).Warn("ai model failed, trying next model")
			}
			continue
		}

		entry.Info("ai explanation generated")
		return Explanation{Text: text, Model: name}, nil
	}

	if lastErr != nil {
		c.logger.WithError(lastErr).Warn("all ai models failed")
	}
	return Explanation{}, ErrExhausted
}

// AcceptNonEmpty accepts any text with non-whitespace content.
func AcceptNonEmpty(text string) bool {
	return strings.TrimSpace(text) != ""
}

// AcceptMinLength accepts text whose trimmed length in characters exceeds
// minimum. A minimum of zero or less behaves like AcceptNonEmpty.
func AcceptMinLength(minimum int) func(string) bool {
	if minimum <= 0 {
		return AcceptNonEmpty
	}
	return func(text string) bool {
		return utf8.RuneCountInString(strings.TrimSpace(text)) > minimum
	}
}
