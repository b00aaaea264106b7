package memu

import "errors"

// Failure signals surfaced to callers. Each external failure mode maps to
// exactly one sentinel so callers can tell them apart without string
// matching. None of them are retried by this package.
var (
	// ErrAuthentication covers a missing key (reported before any network
	// I/O) and provider 401/403 responses.
	ErrAuthentication = errors.New("memu: authentication failed")

	// ErrUnavailable covers transport-level failures reaching the provider.
	ErrUnavailable = errors.New("memu: service unavailable")

	// ErrMalformedResponse covers provider responses that cannot be decoded.
	ErrMalformedResponse = errors.New("memu: malformed response")
)
