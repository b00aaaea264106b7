package usecase

import (
	"context"
	"fmt"

	"memu-demos/internal/avatar"
	"memu-demos/internal/model"
)

// HandleEvent applies one relayed browser event. The state machine is
// {not-connected, connecting, connected, ended}; once a session is ended —
// by a disconnect or by the token deadline passing — events are dropped.
func (uc *implUseCase) HandleEvent(ctx context.Context, sessionID string, event avatar.Event) error {
	uc.mu.Lock()
	sess, ok := uc.sessions[sessionID]
	if !ok {
		uc.mu.Unlock()
		return avatar.ErrSessionNotFound
	}

	if sess.state == avatar.StateEnded {
		uc.mu.Unlock()
		return avatar.ErrSessionEnded
	}

	// Token expiry ends the session regardless of what the event says.
	if uc.now().After(sess.deadline) {
		turns := uc.endLocked(sess)
		uc.mu.Unlock()
		uc.persistTranscript(ctx, sess, turns)
		return avatar.ErrSessionEnded
	}

	switch event.Type {
	case avatar.EventConnectionState:
		switch event.State {
		case "connected":
			sess.state = avatar.StateConnected
		case "connecting":
			sess.state = avatar.StateConnecting
		case "disconnected", "closed":
			turns := uc.endLocked(sess)
			uc.mu.Unlock()
			uc.persistTranscript(ctx, sess, turns)
			return nil
		}
		uc.mu.Unlock()
		return nil

	case avatar.EventTranscript:
		// Interim transcripts are partial hypotheses; only final ones
		// become turns.
		if !event.Final || event.Text == "" {
			uc.mu.Unlock()
			return nil
		}
		role := model.RoleAssistant
		if event.Role == "user" {
			role = model.RoleUser
		}
		sess.turns = append(sess.turns, model.Turn{
			Role:      role,
			Content:   event.Text,
			Timestamp: uc.now(),
		})
		uc.mu.Unlock()
		return nil

	default:
		uc.mu.Unlock()
		return fmt.Errorf("%w: %q", avatar.ErrUnknownEvent, event.Type)
	}
}

// EndSession transitions to ended and persists the transcript.
func (uc *implUseCase) EndSession(ctx context.Context, sessionID string) error {
	uc.mu.Lock()
	sess, ok := uc.sessions[sessionID]
	if !ok {
		uc.mu.Unlock()
		return avatar.ErrSessionNotFound
	}
	if sess.state == avatar.StateEnded {
		uc.mu.Unlock()
		return nil
	}
	turns := uc.endLocked(sess)
	uc.mu.Unlock()

	uc.persistTranscript(ctx, sess, turns)
	return nil
}

// Save persists the transcript collected so far without ending the session.
func (uc *implUseCase) Save(ctx context.Context, sessionID string) (avatar.SaveOutput, error) {
	uc.mu.Lock()
	sess, ok := uc.sessions[sessionID]
	if !ok {
		uc.mu.Unlock()
		return avatar.SaveOutput{}, avatar.ErrSessionNotFound
	}
	turns := make([]model.Turn, len(sess.turns))
	copy(turns, sess.turns)
	sc := sess.scope
	uc.mu.Unlock()

	if !uc.cfg.MemoryEnabled || len(turns) < minTurnsToMemorize {
		return avatar.SaveOutput{TurnCount: len(turns)}, nil
	}

	taskID, err := uc.repo.MemorizeTurns(ctx, sc, turns)
	if err != nil {
		return avatar.SaveOutput{}, fmt.Errorf("failed to save transcript to memory: %w", err)
	}
	return avatar.SaveOutput{TaskID: taskID, TurnCount: len(turns)}, nil
}

// endLocked marks the session ended and returns a transcript copy.
// Caller holds uc.mu.
func (uc *implUseCase) endLocked(sess *liveSession) []model.Turn {
	sess.state = avatar.StateEnded
	turns := make([]model.Turn, len(sess.turns))
	copy(turns, sess.turns)
	return turns
}

// persistTranscript is the end-of-session memorize. Failures are logged,
// not retried; the session is over either way.
func (uc *implUseCase) persistTranscript(ctx context.Context, sess *liveSession, turns []model.Turn) {
	if !uc.cfg.MemoryEnabled || len(turns) < minTurnsToMemorize {
		return
	}
	if _, err := uc.repo.MemorizeTurns(ctx, sess.scope, turns); err != nil {
		uc.l.Errorf(ctx, "avatar: failed to memorize transcript for session %s: %v", sess.id, err)
		return
	}
	uc.l.Infof(ctx, "avatar: session %s transcript memorized, %d turns", sess.id, len(turns))
}
