package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"memu-demos/internal/avatar"
	"memu-demos/internal/chat/repository"
	"memu-demos/internal/model"
	"memu-demos/pkg/anam"
)

// StartSession retrieves general memory context, folds it into the persona
// system prompt, and exchanges the persona for a short-lived session token.
func (uc *implUseCase) StartSession(ctx context.Context, sc model.Scope, input avatar.StartSessionInput) (avatar.StartSessionOutput, error) {
	memoryContext := ""
	memoryUsed := false
	if uc.cfg.MemoryEnabled {
		snippets, err := uc.repo.RetrieveContext(ctx, sc, repository.RetrieveOptions{
			Query: uc.cfg.ContextQuery,
			Mode:  uc.cfg.RetrievalMode,
		})
		if err != nil {
			// The avatar still works without memories; start the session
			// with the base prompt.
			uc.l.Warnf(ctx, "avatar: could not retrieve memory context: %v", err)
		} else if len(snippets) > 0 {
			var b strings.Builder
			for _, s := range snippets {
				b.WriteString(s.Summary)
				b.WriteString("\n")
			}
			memoryContext = strings.TrimRight(b.String(), "\n")
			memoryUsed = true
		}
	}

	persona := anam.PersonaConfig{
		Name:                    uc.cfg.PersonaName,
		AvatarID:                uc.cfg.AvatarID,
		VoiceID:                 uc.cfg.VoiceID,
		LLMID:                   uc.cfg.LLMID,
		SystemPrompt:            buildSystemPrompt(uc.cfg.SystemPrompt, memoryContext),
		MaxSessionLengthSeconds: uc.cfg.MaxSessionSeconds,
	}
	if input.PersonaName != "" {
		persona.Name = input.PersonaName
	}
	if input.AvatarID != "" {
		persona.AvatarID = input.AvatarID
	}
	if input.VoiceID != "" {
		persona.VoiceID = input.VoiceID
	}
	if input.SystemPrompt != "" {
		persona.SystemPrompt = buildSystemPrompt(input.SystemPrompt, memoryContext)
	}

	token, err := uc.anam.CreateSessionToken(ctx, persona)
	if err != nil {
		return avatar.StartSessionOutput{}, fmt.Errorf("failed to create avatar session token: %w", err)
	}

	sessionID := uuid.NewString()
	uc.mu.Lock()
	uc.sessions[sessionID] = &liveSession{
		id:       sessionID,
		scope:    sc,
		state:    avatar.StateConnecting,
		deadline: uc.now().Add(time.Duration(uc.cfg.MaxSessionSeconds) * time.Second),
	}
	uc.mu.Unlock()

	uc.l.Infof(ctx, "avatar: session %s started, persona=%s memory=%t", sessionID, persona.Name, memoryUsed)

	return avatar.StartSessionOutput{
		SessionID:    sessionID,
		SessionToken: token,
		State:        avatar.StateConnecting,
		MemoryUsed:   memoryUsed,
	}, nil
}

// buildSystemPrompt appends retrieved memories to the base persona prompt.
func buildSystemPrompt(base, memoryContext string) string {
	if memoryContext == "" {
		return base
	}
	return fmt.Sprintf(`%s

You have the following relevant memories from previous conversations:
<memory>
%s
</memory>

Use these memories to provide personalized, context-aware responses. Reference past conversations naturally when relevant.`, base, memoryContext)
}

// Status reports session state and the transcript collected so far.
func (uc *implUseCase) Status(ctx context.Context, sessionID string) (avatar.StatusOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	sess, ok := uc.sessions[sessionID]
	if !ok {
		return avatar.StatusOutput{}, avatar.ErrSessionNotFound
	}

	turns := make([]model.Turn, len(sess.turns))
	copy(turns, sess.turns)

	return avatar.StatusOutput{
		SessionID: sessionID,
		State:     sess.state,
		TurnCount: len(turns),
		Turns:     turns,
	}, nil
}

// Personas lists the selectable avatar and voice identities.
func (uc *implUseCase) Personas(ctx context.Context) (avatars, voices []avatar.PersonaOption) {
	return uc.cfg.AvatarOptions, uc.cfg.VoiceOptions
}
