package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"memu-demos/internal/chat"
	"memu-demos/internal/chat/repository"
	"memu-demos/internal/model"
	"memu-demos/pkg/llm"
)

// Respond runs one conversation round-trip: retrieve → generate → append →
// memorize. The session stays in processing state for the whole chain, so
// a session never has two round-trips in flight.
func (uc *implUseCase) Respond(ctx context.Context, sc model.Scope, input chat.RespondInput) (chat.RespondOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.RespondOutput{}, chat.ErrEmptyMessage
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	sess := uc.sessions.GetOrCreate(sessionID, sc)
	if err := sess.Begin(); err != nil {
		return chat.RespondOutput{}, err
	}
	defer sess.Finish()

	uc.l.Infof(ctx, "chat: respond user=%s session=%s", sc.UserID, sessionID)

	// Step 1: retrieve context from the memory service.
	snippets, err := uc.repo.RetrieveContext(ctx, sc, repository.RetrieveOptions{
		Query: input.Message,
		Mode:  uc.cfg.RetrievalMode,
		Limit: uc.cfg.RetrieveLimit,
	})
	if err != nil {
		return chat.RespondOutput{}, fmt.Errorf("failed to retrieve memory context: %w", err)
	}

	// Step 2: generate a reply with the context folded into the prompt.
	reply, err := uc.llm.Generate(ctx, llm.GenerateInput{
		System: uc.cfg.SystemPrompt,
		Prompt: buildPrompt(snippets, input.Message),
	})
	if err != nil {
		return chat.RespondOutput{}, fmt.Errorf("failed to generate reply: %w", err)
	}

	now := time.Now()
	userTurn := model.Turn{Role: model.RoleUser, Content: input.Message, Timestamp: now}
	assistantTurn := model.Turn{Role: model.RoleAssistant, Content: reply, Timestamp: time.Now()}
	sess.Append(userTurn, assistantTurn)

	out := chat.RespondOutput{
		SessionID: sessionID,
		Reply:     reply,
		Snippets:  snippets,
		Model:     uc.llm.Model(),
		Persisted: true,
	}

	// Step 3: persist the new turns. The reply has already been produced;
	// a memorize failure is reported, not retried, and does not retract it.
	if _, err := uc.repo.MemorizeTurns(ctx, sc, []model.Turn{userTurn, assistantTurn}); err != nil {
		uc.l.Errorf(ctx, "chat: memorize failed for session %s: %v", sessionID, err)
		out.Persisted = false
	}

	return out, nil
}

// buildPrompt concatenates retrieved context with the user's message.
// No token budgeting or truncation; the request passes through as-is.
func buildPrompt(snippets []model.Snippet, message string) string {
	var b strings.Builder
	if len(snippets) > 0 {
		b.WriteString("Relevant past information:\n")
		for _, s := range snippets {
			b.WriteString("- ")
			b.WriteString(s.Summary)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("Human: ")
	b.WriteString(message)
	b.WriteString("\nAI:")
	return b.String()
}
