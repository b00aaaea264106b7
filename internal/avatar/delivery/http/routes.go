package http

import (
	"github.com/gin-gonic/gin"

	"memu-demos/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	avatarGroup := rg.Group("/avatar")
	{
		avatarGroup.GET("/personas", h.Personas)
		avatarGroup.POST("/session", mw.RateLimit(), h.StartSession)
		avatarGroup.GET("/session/:id", h.Status)
		avatarGroup.GET("/session/:id/events", h.Stream)
		avatarGroup.POST("/session/:id/save", h.Save)
		avatarGroup.POST("/session/:id/end", h.End)
	}
}
