package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	avatarHTTP "memu-demos/internal/avatar/delivery/http"
	chatHTTP "memu-demos/internal/chat/delivery/http"
	"memu-demos/internal/middleware"
	"memu-demos/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server. Each demo binary
// wires the handlers for its own domain and leaves the other nil.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Chatbot demo
	chatHandler chatHTTP.Handler

	// Avatar demo
	avatarHandler avatarHTTP.Handler

	// Demo pages
	staticDir string
	indexPage string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   middleware.RateLimitConfig

	// Chatbot demo
	ChatHandler chatHTTP.Handler

	// Avatar demo
	AvatarHandler avatarHTTP.Handler

	// Demo pages
	StaticDir string
	IndexPage string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		mw:            middleware.New(logger, cfg.RateLimit),
		chatHandler:   cfg.ChatHandler,
		avatarHandler: cfg.AvatarHandler,
		staticDir:     cfg.StaticDir,
		indexPage:     cfg.IndexPage,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil && srv.avatarHandler == nil {
		return errors.New("at least one domain handler is required")
	}
	return nil
}
