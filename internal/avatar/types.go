package avatar

import "memu-demos/internal/model"

// ConnectionState is the streaming session state, driven by the
// provider-emitted events the browser relays back.
type ConnectionState string

const (
	StateNotConnected ConnectionState = "not-connected"
	StateConnecting   ConnectionState = "connecting"
	StateConnected    ConnectionState = "connected"
	StateEnded        ConnectionState = "ended"
)

// EventType classifies a relayed browser event.
type EventType string

const (
	EventConnectionState EventType = "connection_state"
	EventTranscript      EventType = "transcript"
)

// Event is one provider event relayed from the browser SDK.
type Event struct {
	Type EventType `json:"type"`

	// Connection-state events.
	State string `json:"state,omitempty"`

	// Transcript events (user speech-to-text, agent text-to-speech).
	Role  string `json:"role,omitempty"`
	Text  string `json:"text,omitempty"`
	Final bool   `json:"final,omitempty"`
}

// PersonaOption is one selectable avatar or voice identity.
type PersonaOption struct {
	Label string `json:"label"`
	ID    string `json:"id"`
}

// StartSessionInput optionally overrides the configured persona.
type StartSessionInput struct {
	PersonaName  string
	AvatarID     string
	VoiceID      string
	SystemPrompt string
}

// StartSessionOutput carries the minted session credential.
type StartSessionOutput struct {
	SessionID    string
	SessionToken string
	State        ConnectionState
	MemoryUsed   bool
}

// StatusOutput reports a session's state and transcript size.
type StatusOutput struct {
	SessionID string
	State     ConnectionState
	TurnCount int
	Turns     []model.Turn
}

// SaveOutput reports an explicit transcript flush.
type SaveOutput struct {
	TaskID    string
	TurnCount int
}
