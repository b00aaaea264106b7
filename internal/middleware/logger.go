package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with method, path, status and
// latency. Websocket upgrades log on disconnect, which is fine.
func (m Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		m.l.Infof(c.Request.Context(), "http: %s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// Recovery converts panics into 500s so a bad request cannot take the
// process down.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "http: panic recovered on %s %s: %v",
			c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatus(500)
	})
}
