package http

import (
	"memu-demos/internal/avatar"
	"memu-demos/internal/model"
	"memu-demos/pkg/response"
)

type startSessionReq struct {
	UserID       string `json:"user_id"`
	PersonaName  string `json:"persona_name"`
	AvatarID     string `json:"avatar_id"`
	VoiceID      string `json:"voice_id"`
	SystemPrompt string `json:"system_prompt"`
}

type startSessionResp struct {
	SessionID    string `json:"session_id"`
	SessionToken string `json:"session_token"`
	State        string `json:"state"`
	MemoryUsed   bool   `json:"memory_used"`
}

func newStartSessionResp(out avatar.StartSessionOutput) startSessionResp {
	return startSessionResp{
		SessionID:    out.SessionID,
		SessionToken: out.SessionToken,
		State:        string(out.State),
		MemoryUsed:   out.MemoryUsed,
	}
}

type personasResp struct {
	Avatars []avatar.PersonaOption `json:"avatars"`
	Voices  []avatar.PersonaOption `json:"voices"`
}

type turnResp struct {
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	Timestamp response.DateTime `json:"timestamp"`
}

type statusResp struct {
	SessionID string     `json:"session_id"`
	State     string     `json:"state"`
	TurnCount int        `json:"turn_count"`
	Turns     []turnResp `json:"turns"`
}

func newStatusResp(out avatar.StatusOutput) statusResp {
	turns := make([]turnResp, 0, len(out.Turns))
	for _, t := range out.Turns {
		turns = append(turns, turnResp{
			Role:      string(t.Role),
			Content:   t.Content,
			Timestamp: response.DateTime(t.Timestamp),
		})
	}
	return statusResp{
		SessionID: out.SessionID,
		State:     string(out.State),
		TurnCount: out.TurnCount,
		Turns:     turns,
	}
}

type saveResp struct {
	TaskID    string `json:"task_id"`
	TurnCount int    `json:"turn_count"`
}

func (h *handler) scopeFor(userID string) model.Scope {
	if userID == "" {
		return h.defaultScope
	}
	sc := h.defaultScope
	sc.UserID = userID
	sc.Username = userID
	return sc
}
