package http

import (
	"github.com/gin-gonic/gin"

	"memu-demos/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.POST("", mw.RateLimit(), h.Respond)
		chatGroup.GET("/history", h.History)
		chatGroup.POST("/reset", h.Reset)
	}

	memoryGroup := rg.Group("/memory")
	{
		memoryGroup.POST("/sample", mw.RateLimit(), h.LoadSample)
	}
}
