package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"memu-demos/internal/chat"
	"memu-demos/internal/session"
	"memu-demos/pkg/memu"
	"memu-demos/pkg/response"
)

// Respond godoc
// @Summary     Send a chat message
// @Description Runs one conversation round-trip: memory retrieval, LLM generation, persistence.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body respondReq true "User message"
// @Success     200 {object} respondResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Provider authentication failed"
// @Failure     409 {object} response.Resp "Session busy"
// @Router      /api/v1/chat [POST]
func (h *handler) Respond(c *gin.Context) {
	ctx := c.Request.Context()

	var req respondReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Respond(ctx, h.scopeFor(req.UserID), chat.RespondInput{
		SessionID: req.SessionID,
		Message:   req.Message,
	})
	if err != nil {
		h.l.Errorf(ctx, "chat handler: Respond failed: %v", err)
		switch {
		case errors.Is(err, session.ErrBusy):
			response.Conflict(c, err)
		case errors.Is(err, memu.ErrAuthentication):
			response.Unauthorized(c)
		default:
			response.Error(c, err, nil)
		}
		return
	}

	response.OK(c, newRespondResp(out))
}

// History godoc
// @Summary     Session transcript
// @Description Returns the in-process transcript of a chat session.
// @Tags        Chat
// @Produce     json
// @Param       session_id query string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Query("session_id")
	out, err := h.uc.History(ctx, h.defaultScope, chat.HistoryInput{SessionID: sessionID})
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			response.NotFound(c, err)
			return
		}
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newHistoryResp(out))
}

// Reset godoc
// @Summary     Clear session transcript
// @Description Drops the in-process transcript; provider-side memory is untouched.
// @Tags        Chat
// @Produce     json
// @Param       session_id query string true "Session ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/chat/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Query("session_id")
	if err := h.uc.Reset(ctx, h.defaultScope, chat.ResetInput{SessionID: sessionID}); err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			response.NotFound(c, err)
			return
		}
		response.Error(c, err, nil)
		return
	}

	response.OK(c, map[string]string{"status": "cleared"})
}

// LoadSample godoc
// @Summary     Load the sample conversation
// @Description Memorizes the bundled sample conversation into the memory service. Runs once.
// @Tags        Memory
// @Produce     json
// @Success     200 {object} loadSampleResp
// @Failure     400 {object} response.Resp "Already loaded or unreadable"
// @Failure     401 {object} response.Resp "Provider authentication failed"
// @Router      /api/v1/memory/sample [POST]
func (h *handler) LoadSample(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.LoadSample(ctx, h.defaultScope)
	if err != nil {
		h.l.Errorf(ctx, "chat handler: LoadSample failed: %v", err)
		if errors.Is(err, memu.ErrAuthentication) {
			response.Unauthorized(c)
			return
		}
		response.Error(c, err, nil)
		return
	}

	response.OK(c, loadSampleResp{TaskID: out.TaskID, TurnCount: out.TurnCount})
}
