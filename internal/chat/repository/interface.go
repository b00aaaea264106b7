package repository

import (
	"context"

	"memu-demos/internal/model"
)

// RetrieveOptions selects what context to fetch from the memory service.
type RetrieveOptions struct {
	Query string
	// Mode is "embedding" or "llm"; the provider does all ranking.
	Mode  string
	Limit int
}

// MemoryRepository is the domain-facing adapter over the external memory
// service. It performs no local ranking, merging or caching.
type MemoryRepository interface {
	// MemorizeTurns persists conversation turns.
	MemorizeTurns(ctx context.Context, sc model.Scope, turns []model.Turn) (taskID string, err error)

	// RetrieveContext returns the provider-ordered context snippets for a
	// query.
	RetrieveContext(ctx context.Context, sc model.Scope, opt RetrieveOptions) ([]model.Snippet, error)
}
