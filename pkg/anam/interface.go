package anam

import "context"

// IAnam defines the avatar service operations the demos depend on.
type IAnam interface {
	CreateSessionToken(ctx context.Context, persona PersonaConfig) (string, error)
}
