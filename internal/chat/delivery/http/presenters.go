package http

import (
	"memu-demos/internal/chat"
	"memu-demos/internal/model"
	"memu-demos/pkg/response"
)

type respondReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
	UserID    string `json:"user_id"`
}

type snippetResp struct {
	Tier    string  `json:"tier"`
	Summary string  `json:"summary"`
	Score   float64 `json:"score,omitempty"`
}

type respondResp struct {
	SessionID string        `json:"session_id"`
	Reply     string        `json:"reply"`
	Model     string        `json:"model"`
	Persisted bool          `json:"persisted"`
	Snippets  []snippetResp `json:"snippets"`
}

type turnResp struct {
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	Timestamp response.DateTime `json:"timestamp"`
}

type historyResp struct {
	SessionID string     `json:"session_id"`
	Turns     []turnResp `json:"turns"`
}

type loadSampleResp struct {
	TaskID    string `json:"task_id"`
	TurnCount int    `json:"turn_count"`
}

func (h *handler) scopeFor(userID string) model.Scope {
	sc := h.defaultScope
	if userID != "" {
		sc.UserID = userID
	}
	return sc
}

func newRespondResp(out chat.RespondOutput) respondResp {
	snippets := make([]snippetResp, len(out.Snippets))
	for i, s := range out.Snippets {
		snippets[i] = snippetResp{Tier: s.Tier, Summary: s.Summary, Score: s.Score}
	}
	return respondResp{
		SessionID: out.SessionID,
		Reply:     out.Reply,
		Model:     out.Model,
		Persisted: out.Persisted,
		Snippets:  snippets,
	}
}

func newHistoryResp(out chat.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = turnResp{
			Role:      string(t.Role),
			Content:   t.Content,
			Timestamp: response.DateTime(t.Timestamp),
		}
	}
	return historyResp{SessionID: out.SessionID, Turns: turns}
}
