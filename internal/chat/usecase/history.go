package usecase

import (
	"context"

	"memu-demos/internal/chat"
	"memu-demos/internal/model"
)

// History returns the in-process transcript for display. The transcript is
// owned by the UI session; it is not fetched from the memory service.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input chat.HistoryInput) (chat.HistoryOutput, error) {
	sess, ok := uc.sessions.Get(input.SessionID)
	if !ok {
		return chat.HistoryOutput{}, chat.ErrSessionNotFound
	}
	return chat.HistoryOutput{
		SessionID: input.SessionID,
		Turns:     sess.Transcript(),
	}, nil
}

// Reset clears the in-process transcript of a session. Provider-side
// memory is untouched; it belongs to the external service.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope, input chat.ResetInput) error {
	sess, ok := uc.sessions.Get(input.SessionID)
	if !ok {
		return chat.ErrSessionNotFound
	}
	sess.Reset()
	uc.l.Infof(ctx, "chat: session %s transcript cleared", input.SessionID)
	return nil
}
