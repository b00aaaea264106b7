package avatar

import (
	"context"

	"memu-demos/internal/model"
)

// UseCase is the avatar session controller. It exchanges credentials with
// the avatar service and persists relayed transcript events; all audio and
// video streaming stays between the browser SDK and the provider.
type UseCase interface {
	// StartSession mints a session token with a memory-enriched persona
	// prompt and registers a new session in connecting state.
	StartSession(ctx context.Context, sc model.Scope, input StartSessionInput) (StartSessionOutput, error)

	// HandleEvent applies one relayed browser event to the session state
	// machine. Events addressed to an ended session report ErrSessionEnded
	// and have no effect.
	HandleEvent(ctx context.Context, sessionID string, event Event) error

	// EndSession transitions the session to ended and persists the
	// accumulated transcript.
	EndSession(ctx context.Context, sessionID string) error

	// Save persists the transcript collected so far without ending the
	// session.
	Save(ctx context.Context, sessionID string) (SaveOutput, error)

	// Status reports session state and transcript.
	Status(ctx context.Context, sessionID string) (StatusOutput, error)

	// Personas lists the selectable avatar and voice identities.
	Personas(ctx context.Context) (avatars, voices []PersonaOption)
}
