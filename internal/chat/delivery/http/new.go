package http

import (
	"github.com/gin-gonic/gin"

	"memu-demos/internal/chat"
	"memu-demos/internal/model"
	pkgLog "memu-demos/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Respond(c *gin.Context)
	History(c *gin.Context)
	Reset(c *gin.Context)
	LoadSample(c *gin.Context)
}

type handler struct {
	l            pkgLog.Logger
	uc           chat.UseCase
	defaultScope model.Scope
}

// New creates a new HTTP handler for the chat domain. defaultScope is the
// demo identity used when a request carries no user of its own.
func New(l pkgLog.Logger, uc chat.UseCase, defaultScope model.Scope) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		defaultScope: defaultScope,
	}
}
