package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"memu-demos/internal/avatar"
	"memu-demos/internal/model"
	pkgLog "memu-demos/pkg/log"
)

// Handler is the public interface for the avatar HTTP delivery layer.
type Handler interface {
	StartSession(c *gin.Context)
	Personas(c *gin.Context)
	Status(c *gin.Context)
	Save(c *gin.Context)
	End(c *gin.Context)
	Stream(c *gin.Context)
}

type handler struct {
	l            pkgLog.Logger
	uc           avatar.UseCase
	defaultScope model.Scope
	upgrader     websocket.Upgrader
}

// New creates a new HTTP handler for the avatar domain. defaultScope is the
// demo identity used when a request carries no user of its own.
func New(l pkgLog.Logger, uc avatar.UseCase, defaultScope model.Scope) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		defaultScope: defaultScope,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The demo pages are served from this same process.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}
