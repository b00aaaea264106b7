package memu

import (
	"context"
	"fmt"
	"time"

	"memu-demos/internal/chat/repository"
	"memu-demos/internal/model"
	pkgLog "memu-demos/pkg/log"
	pkgMemu "memu-demos/pkg/memu"
)

const defaultRetrieveLimit = 5

type memoryRepository struct {
	client pkgMemu.IMemU
	l      pkgLog.Logger
}

// New creates a MemoryRepository backed by the MemU client.
func New(client pkgMemu.IMemU, l pkgLog.Logger) repository.MemoryRepository {
	return &memoryRepository{client: client, l: l}
}

// MemorizeTurns ships turns to the provider for ingestion.
func (r *memoryRepository) MemorizeTurns(ctx context.Context, sc model.Scope, turns []model.Turn) (string, error) {
	conversation := make([]pkgMemu.Message, len(turns))
	for i, t := range turns {
		conversation[i] = pkgMemu.Message{
			Role:      string(t.Role),
			Content:   t.Content,
			CreatedAt: t.Timestamp.Format(time.RFC3339),
		}
	}

	resp, err := r.client.MemorizeConversation(ctx, pkgMemu.MemorizeRequest{
		Conversation: conversation,
		UserID:       sc.UserID,
		UserName:     sc.Username,
		AgentID:      sc.AgentID,
		AgentName:    sc.AgentName,
	})
	if err != nil {
		return "", fmt.Errorf("memorize turns: %w", err)
	}

	r.l.Debugf(ctx, "memorize accepted: task=%s status=%s turns=%d", resp.TaskID, resp.Status, len(turns))
	return resp.TaskID, nil
}

// RetrieveContext flattens the provider's category/item/resource hierarchy
// into snippets, keeping the provider's ordering. Results are consumed
// once per turn; nothing is cached.
func (r *memoryRepository) RetrieveContext(ctx context.Context, sc model.Scope, opt repository.RetrieveOptions) ([]model.Snippet, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultRetrieveLimit
	}

	resp, err := r.client.Retrieve(ctx, pkgMemu.RetrieveRequest{
		Query:  opt.Query,
		UserID: sc.UserID,
		Method: opt.Mode,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("retrieve context: %w", err)
	}

	snippets := make([]model.Snippet, 0, len(resp.Categories)+len(resp.Items)+len(resp.Resources))
	for _, cat := range resp.Categories {
		if cat.Summary == "" {
			continue
		}
		snippets = append(snippets, model.Snippet{Tier: "category", Summary: cat.Summary})
	}
	for _, item := range resp.Items {
		if item.Summary == "" {
			continue
		}
		snippets = append(snippets, model.Snippet{Tier: "item", Summary: item.Summary, Score: item.Score})
	}
	for _, res := range resp.Resources {
		if res.Caption == "" {
			continue
		}
		snippets = append(snippets, model.Snippet{Tier: "resource", Summary: res.Caption})
	}

	return snippets, nil
}
