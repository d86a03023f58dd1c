// Package llm wraps a language model backend behind a single-turn
// completion interface. Zukan only ever asks the model one question at a
// time, so there is no conversation state to carry.
package llm

import "context"

// Prompt is one completion request.
type Prompt struct {
	// System sets the model's role and constraints.
	System string

	// User is the question or task text.
	User string

	// MaxTokens bounds the completion length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0.
	Temperature float64
}

// Provider produces a text completion for a prompt.
type Provider interface {
	Complete(ctx context.Context, p Prompt) (string, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}
