package llm

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is reported at construction time so misconfiguration
// never reaches the network.
var ErrMissingAPIKey = errors.New("llm: API key is required")

// GenerateInput is a single completion request. Context snippets are
// already folded into Prompt by the caller; this layer does no token
// budgeting, truncation or streaming.
type GenerateInput struct {
	System string
	Prompt string
}

// Provider phrases a response for the given prompt.
type Provider interface {
	Generate(ctx context.Context, input GenerateInput) (string, error)
	Model() string
}
