package model

import "time"

// Role identifies the speaker of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single conversation turn. Turns are appended to the in-process
// transcript for display and shipped to the memory service for persistence.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Snippet is one piece of context returned by the memory service. Snippets
// are read-only, consumed once per turn and never cached locally.
type Snippet struct {
	// Tier is the provider hierarchy level the snippet came from:
	// "category" (aggregated summary), "item" (extracted fact) or
	// "resource" (raw data).
	Tier    string  `json:"tier"`
	Summary string  `json:"summary"`
	Score   float64 `json:"score,omitempty"`
}
