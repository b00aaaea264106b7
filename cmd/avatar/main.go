package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"memu-demos/config"
	_ "memu-demos/docs" // Swagger docs
	avatarHTTP "memu-demos/internal/avatar/delivery/http"
	"memu-demos/internal/avatar/usecase"
	memuRepo "memu-demos/internal/chat/repository/memu"
	"memu-demos/internal/httpserver"
	"memu-demos/internal/middleware"
	"memu-demos/internal/model"
	"memu-demos/pkg/anam"
	"memu-demos/pkg/log"
	"memu-demos/pkg/memu"
)

// @title       MemU Avatar Demo API
// @description AI avatar sessions with memory-enriched personas.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration (.env is optional, real env wins)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting MemU avatar demo...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Anam URL: %s", cfg.Anam.BaseURL)

	// 3. Credentials are checked before any provider is dialed.
	if err := cfg.ValidateAvatar(); err != nil {
		logger.Errorf(ctx, "Invalid configuration: %v", err)
		return
	}

	// 4. Providers
	anamClient := anam.NewClient(cfg.Anam.BaseURL, cfg.Anam.APIKey)
	memuClient := memu.NewClient(cfg.Memu.BaseURL, cfg.Memu.APIKey)

	// 5. Avatar domain
	memoryRepo := memuRepo.New(memuClient, logger)

	avatarUC := usecase.New(logger, anamClient, memoryRepo, usecase.Config{
		PersonaName:       cfg.Avatar.PersonaName,
		AvatarID:          cfg.Avatar.AvatarID,
		VoiceID:           cfg.Avatar.VoiceID,
		LLMID:             cfg.Avatar.LLMID,
		SystemPrompt:      cfg.Avatar.SystemPrompt,
		MaxSessionSeconds: cfg.Avatar.MaxSessionSeconds,
		MemoryEnabled:     cfg.Avatar.MemoryEnabled,
		RetrievalMode:     cfg.Memu.RetrievalMode,
		ContextQuery:      cfg.Avatar.ContextQuery,
	})

	defaultScope := model.Scope{
		UserID:    cfg.Chat.UserID,
		Username:  cfg.Chat.UserID,
		AgentID:   cfg.Chat.AgentID,
		AgentName: cfg.Chat.AgentID,
	}
	avatarHandler := avatarHTTP.New(logger, avatarUC, defaultScope)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		},
		AvatarHandler: avatarHandler,
		StaticDir:     cfg.Static.Dir,
		IndexPage:     "avatar.html",
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
