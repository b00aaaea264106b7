package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"memu-demos/config"
	_ "memu-demos/docs" // Swagger docs
	chatHTTP "memu-demos/internal/chat/delivery/http"
	memuRepo "memu-demos/internal/chat/repository/memu"
	"memu-demos/internal/chat/usecase"
	"memu-demos/internal/httpserver"
	"memu-demos/internal/middleware"
	"memu-demos/internal/model"
	"memu-demos/internal/session"
	"memu-demos/pkg/llm"
	"memu-demos/pkg/log"
	"memu-demos/pkg/memu"
)

const (
	maxSessions = 1024
	sessionTTL  = 30 * time.Minute
)

// @title       MemU Chatbot Demo API
// @description Memory-backed chatbot: MemU retrieval, OpenRouter generation, MemU persistence.
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

	logger.Info(ctx, "Starting MemU chatbot demo...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "MemU URL: %s", cfg.Memu.BaseURL)

	// 3. Credentials are checked before any provider is dialed.
	if err := cfg.ValidateChatbot(); err != nil {
		logger.Errorf(ctx, "Invalid configuration: %v", err)
		return
	}

	// 4. Providers
	memuClient := memu.NewClient(cfg.Memu.BaseURL, cfg.Memu.APIKey)

	provider, err := llm.NewOpenRouter(llm.Config{
		APIKey:   cfg.OpenRouter.APIKey,
		BaseURL:  cfg.OpenRouter.BaseURL,
		Model:    cfg.OpenRouter.Model,
		Referrer: cfg.OpenRouter.Referrer,
		Title:    cfg.OpenRouter.Title,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM provider: %v", err)
		return
	}
	logger.Infof(ctx, "LLM model: %s", provider.Model())

	// 5. Chat domain
	memoryRepo := memuRepo.New(memuClient, logger)
	sessions := session.NewStore(maxSessions, sessionTTL)

	chatUC := usecase.New(logger, provider, memoryRepo, sessions, usecase.Config{
		SystemPrompt:  cfg.Chat.SystemPrompt,
		RetrievalMode: cfg.Memu.RetrievalMode,
		RetrieveLimit: cfg.Memu.RetrieveLimit,
		SamplePath:    cfg.Chat.SamplePath,
	})

	defaultScope := model.Scope{
		UserID:    cfg.Chat.UserID,
		Username:  cfg.Chat.UserID,
		AgentID:   cfg.Chat.AgentID,
		AgentName: cfg.Chat.AgentID,
	}
	chatHandler := chatHTTP.New(logger, chatUC, defaultScope)

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
		ChatHandler: chatHandler,
		StaticDir:   cfg.Static.Dir,
		IndexPage:   "chat.html",
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
