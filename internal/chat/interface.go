package chat

import (
	"context"

	"memu-demos/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Respond runs one conversation round-trip: retrieve memory context,
	// generate a reply, then persist the new turns. Strictly sequential.
	Respond(ctx context.Context, sc model.Scope, input RespondInput) (RespondOutput, error)

	// LoadSample memorizes the bundled sample conversation. It runs at
	// most once per process.
	LoadSample(ctx context.Context, sc model.Scope) (LoadSampleOutput, error)

	// History returns the in-process transcript of a session.
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)

	// Reset clears the in-process transcript of a session.
	Reset(ctx context.Context, sc model.Scope, input ResetInput) error
}
