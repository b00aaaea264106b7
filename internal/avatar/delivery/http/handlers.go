package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"memu-demos/internal/avatar"
	"memu-demos/pkg/anam"
	"memu-demos/pkg/response"
)

// StartSession godoc
// @Summary     Start an avatar session
// @Description Mints a streaming session token for the configured persona, enriched with memory context.
// @Tags        Avatar
// @Accept      json
// @Produce     json
// @Param       body body startSessionReq false "Persona overrides"
// @Success     200 {object} startSessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Provider authentication failed"
// @Router      /api/v1/avatar/session [POST]
func (h *handler) StartSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req startSessionReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.StartSession(ctx, h.scopeFor(req.UserID), avatar.StartSessionInput{
		PersonaName:  req.PersonaName,
		AvatarID:     req.AvatarID,
		VoiceID:      req.VoiceID,
		SystemPrompt: req.SystemPrompt,
	})
	if err != nil {
		h.l.Errorf(ctx, "avatar handler: StartSession failed: %v", err)
		if errors.Is(err, anam.ErrAuthentication) {
			response.Unauthorized(c)
			return
		}
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newStartSessionResp(out))
}

// Personas godoc
// @Summary     Selectable personas
// @Description Lists the avatar and voice identities the demo can stream.
// @Tags        Avatar
// @Produce     json
// @Success     200 {object} personasResp
// @Router      /api/v1/avatar/personas [GET]
func (h *handler) Personas(c *gin.Context) {
	avatars, voices := h.uc.Personas(c.Request.Context())
	response.OK(c, personasResp{Avatars: avatars, Voices: voices})
}

// Status godoc
// @Summary     Session status
// @Description Reports connection state and the transcript collected so far.
// @Tags        Avatar
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} statusResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/avatar/session/{id} [GET]
func (h *handler) Status(c *gin.Context) {
	out, err := h.uc.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, avatar.ErrSessionNotFound) {
			response.NotFound(c, err)
			return
		}
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newStatusResp(out))
}

// Save godoc
// @Summary     Save the transcript
// @Description Persists the transcript collected so far without ending the session.
// @Tags        Avatar
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} saveResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/avatar/session/{id}/save [POST]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Save(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "avatar handler: Save failed: %v", err)
		if errors.Is(err, avatar.ErrSessionNotFound) {
			response.NotFound(c, err)
			return
		}
		response.Error(c, err, nil)
		return
	}

	response.OK(c, saveResp{TaskID: out.TaskID, TurnCount: out.TurnCount})
}

// End godoc
// @Summary     End the session
// @Description Transitions the session to ended and persists its transcript.
// @Tags        Avatar
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/avatar/session/{id}/end [POST]
func (h *handler) End(c *gin.Context) {
	if err := h.uc.EndSession(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, avatar.ErrSessionNotFound) {
			response.NotFound(c, err)
			return
		}
		response.Error(c, err, nil)
		return
	}

	response.OK(c, map[string]string{"status": "ended"})
}
