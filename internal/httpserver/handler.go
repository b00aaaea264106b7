package httpserver

import (
	"context"
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	avatarHTTP "memu-demos/internal/avatar/delivery/http"
	chatHTTP "memu-demos/internal/chat/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	srv.registerStaticRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.Recovery())
	srv.gin.Use(srv.mw.RequestLogger())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if srv.chatHandler != nil {
		chatHTTP.RegisterRoutes(api, srv.chatHandler, srv.mw)
		srv.l.Infof(ctx, "Chat domain registered")
	}

	if srv.avatarHandler != nil {
		avatarHTTP.RegisterRoutes(api, srv.avatarHandler, srv.mw)
		srv.l.Infof(ctx, "Avatar domain registered")
	}
}

// registerStaticRoutes serves the demo page and its assets.
func (srv *HTTPServer) registerStaticRoutes() {
	if srv.staticDir == "" {
		return
	}

	srv.gin.Static("/static", srv.staticDir)

	if srv.indexPage != "" {
		index := filepath.Join(srv.staticDir, srv.indexPage)
		srv.gin.GET("/", func(c *gin.Context) {
			c.File(index)
		})
	}
}
