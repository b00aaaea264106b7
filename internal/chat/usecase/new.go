package usecase

import (
	"sync"

	"memu-demos/internal/chat/repository"
	"memu-demos/internal/session"
	"memu-demos/pkg/llm"
	pkgLog "memu-demos/pkg/log"
)

// DefaultSystemPrompt frames the assistant for memory-aware replies.
const DefaultSystemPrompt = "You are a helpful assistant with access to past conversations."

// Config carries the orchestration knobs that come from configuration.
type Config struct {
	SystemPrompt  string
	RetrievalMode string // "embedding" or "llm", passed through to the provider
	RetrieveLimit int
	SamplePath    string
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      llm.Provider
	repo     repository.MemoryRepository
	sessions *session.Store
	cfg      Config

	sampleMu     sync.Mutex
	sampleLoaded bool
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	provider llm.Provider,
	repo repository.MemoryRepository,
	sessions *session.Store,
	cfg Config,
) *implUseCase {
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	return &implUseCase{
		l:        l,
		llm:      provider,
		repo:     repo,
		sessions: sessions,
		cfg:      cfg,
	}
}
