package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"memu-demos/internal/avatar"
)

// streamNotice is a server-to-browser control frame on the event socket.
type streamNotice struct {
	Type  string `json:"type"`
	State string `json:"state,omitempty"`
	Error string `json:"error,omitempty"`
}

// Stream godoc
// @Summary     Session event socket
// @Description Upgrades to a websocket over which the browser relays provider events (connection state, transcripts).
// @Tags        Avatar
// @Param       id path string true "Session ID"
// @Success     101 {string} string "Switching Protocols"
// @Router      /api/v1/avatar/session/{id}/events [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("id")

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Errorf(ctx, "avatar handler: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var event avatar.Event
		if err := conn.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.l.Warnf(ctx, "avatar handler: event socket for session %s closed: %v", sessionID, err)
			}
			return
		}

		switch err := h.uc.HandleEvent(ctx, sessionID, event); {
		case err == nil:

		case errors.Is(err, avatar.ErrSessionEnded):
			// Tell the browser the session is over, then stop reading.
			_ = conn.WriteJSON(streamNotice{Type: "session_ended", State: string(avatar.StateEnded)})
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended"))
			return

		case errors.Is(err, avatar.ErrSessionNotFound):
			_ = conn.WriteJSON(streamNotice{Type: "error", Error: "session not found"})
			return

		default:
			h.l.Errorf(ctx, "avatar handler: event for session %s rejected: %v", sessionID, err)
			_ = conn.WriteJSON(streamNotice{Type: "error", Error: err.Error()})
		}
	}
}
