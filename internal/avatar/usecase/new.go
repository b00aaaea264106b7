package usecase

import (
	"sync"
	"time"

	"memu-demos/internal/avatar"
	"memu-demos/internal/chat/repository"
	"memu-demos/internal/model"
	"memu-demos/pkg/anam"
	pkgLog "memu-demos/pkg/log"
)

const (
	defaultMaxSessionSeconds = 600
	defaultContextQuery      = "general conversation context"

	// Transcripts shorter than this are not worth memorizing; a lone turn
	// carries no conversational signal.
	minTurnsToMemorize = 2
)

// Config carries persona defaults and memory settings from configuration.
type Config struct {
	PersonaName       string
	AvatarID          string
	VoiceID           string
	LLMID             string
	SystemPrompt      string
	MaxSessionSeconds int

	MemoryEnabled bool
	RetrievalMode string
	ContextQuery  string

	AvatarOptions []avatar.PersonaOption
	VoiceOptions  []avatar.PersonaOption
}

// liveSession is the controller-side record of one streaming session.
type liveSession struct {
	id       string
	scope    model.Scope
	state    avatar.ConnectionState
	deadline time.Time
	turns    []model.Turn
}

type implUseCase struct {
	l    pkgLog.Logger
	anam anam.IAnam
	repo repository.MemoryRepository
	cfg  Config

	mu       sync.Mutex
	sessions map[string]*liveSession

	now func() time.Time
}

// New creates a new avatar session controller.
func New(l pkgLog.Logger, client anam.IAnam, repo repository.MemoryRepository, cfg Config) *implUseCase {
	if cfg.MaxSessionSeconds <= 0 {
		cfg.MaxSessionSeconds = defaultMaxSessionSeconds
	}
	if cfg.ContextQuery == "" {
		cfg.ContextQuery = defaultContextQuery
	}
	if len(cfg.AvatarOptions) == 0 && cfg.AvatarID != "" {
		cfg.AvatarOptions = []avatar.PersonaOption{{Label: cfg.PersonaName, ID: cfg.AvatarID}}
	}
	if len(cfg.VoiceOptions) == 0 && cfg.VoiceID != "" {
		cfg.VoiceOptions = []avatar.PersonaOption{{Label: cfg.PersonaName, ID: cfg.VoiceID}}
	}
	return &implUseCase{
		l:        l,
		anam:     client,
		repo:     repo,
		cfg:      cfg,
		sessions: make(map[string]*liveSession),
		now:      time.Now,
	}
}
