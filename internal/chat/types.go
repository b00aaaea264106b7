package chat

import "memu-demos/internal/model"

// RespondInput is one user message addressed to a session.
type RespondInput struct {
	SessionID string
	Message   string
}

// RespondOutput is the generated reply plus the context that shaped it.
type RespondOutput struct {
	SessionID string
	Reply     string
	Snippets  []model.Snippet
	Model     string

	// Persisted is false when the turn was displayed but the follow-up
	// memorize call failed. The reply is not retracted in that case.
	Persisted bool
}

// LoadSampleOutput reports the sample conversation ingestion.
type LoadSampleOutput struct {
	TaskID    string
	TurnCount int
}

// HistoryInput selects a session transcript.
type HistoryInput struct {
	SessionID string
}

// HistoryOutput is the session transcript for display.
type HistoryOutput struct {
	SessionID string
	Turns     []model.Turn
}

// ResetInput selects a session to clear.
type ResetInput struct {
	SessionID string
}
