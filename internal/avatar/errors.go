package avatar

import "errors"

// Domain-specific errors for the avatar package.
var (
	ErrSessionNotFound = errors.New("avatar session not found")
	ErrSessionEnded    = errors.New("avatar session has ended")
	ErrUnknownEvent    = errors.New("unknown avatar event type")
)
