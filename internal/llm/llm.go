// Package llm abstracts the generative-language collaborator. Replies are
// free text with no structural guarantee; callers own parsing and fallback.
package llm

import (
	"context"
	"errors"
)

// Completer sends a prompt to a generative-language model and returns the
// raw text reply. Implementations must honor context cancellation and
// deadlines; callers treat any error as "no usable reply".
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder completer.
var ErrNotConfigured = errors.New("llm completer not configured")

// Placeholder is a stub implementation used when no API key is configured.
// Every caller has a deterministic fallback, so the service stays usable.
type Placeholder struct{}

// Complete returns ErrNotConfigured.
func (Placeholder) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

var _ Completer = Placeholder{}
