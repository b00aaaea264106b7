package anam

// DefaultBaseURL is the hosted avatar service endpoint.
const DefaultBaseURL = "https://api.anam.ai"

// PersonaConfig describes the avatar persona a streaming session runs with.
// Field names follow the provider wire format.
type PersonaConfig struct {
	Name                    string `json:"name"`
	AvatarID                string `json:"avatarId"`
	VoiceID                 string `json:"voiceId"`
	LLMID                   string `json:"llmId"`
	SystemPrompt            string `json:"systemPrompt"`
	MaxSessionLengthSeconds int    `json:"maxSessionLengthSeconds,omitempty"`
}

// SessionTokenRequest is the body for POST /v1/auth/session-token.
type SessionTokenRequest struct {
	PersonaConfig PersonaConfig `json:"personaConfig"`
}

// SessionTokenResponse carries the short-lived credential authorizing one
// browser streaming session.
type SessionTokenResponse struct {
	SessionToken string `json:"sessionToken"`
}
