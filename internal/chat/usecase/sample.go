package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"memu-demos/internal/chat"
	"memu-demos/internal/model"
)

// sampleTurn is the on-disk format of the bundled sample conversation.
type sampleTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// LoadSample reads the sample conversation file and memorizes it. The file
// is consumed once; repeated calls report ErrSampleAlreadyLoaded.
func (uc *implUseCase) LoadSample(ctx context.Context, sc model.Scope) (chat.LoadSampleOutput, error) {
	uc.sampleMu.Lock()
	defer uc.sampleMu.Unlock()

	if uc.sampleLoaded {
		return chat.LoadSampleOutput{}, chat.ErrSampleAlreadyLoaded
	}

	raw, err := os.ReadFile(uc.cfg.SamplePath)
	if err != nil {
		return chat.LoadSampleOutput{}, fmt.Errorf("failed to read sample conversation %s: %w", uc.cfg.SamplePath, err)
	}

	var sample []sampleTurn
	if err := json.Unmarshal(raw, &sample); err != nil {
		return chat.LoadSampleOutput{}, fmt.Errorf("failed to parse sample conversation: %w", err)
	}
	if len(sample) == 0 {
		return chat.LoadSampleOutput{}, fmt.Errorf("sample conversation is empty")
	}

	now := time.Now()
	turns := make([]model.Turn, len(sample))
	for i, st := range sample {
		turns[i] = model.Turn{
			Role:      model.Role(st.Role),
			Content:   st.Content,
			Timestamp: now,
		}
	}

	taskID, err := uc.repo.MemorizeTurns(ctx, sc, turns)
	if err != nil {
		return chat.LoadSampleOutput{}, fmt.Errorf("failed to memorize sample conversation: %w", err)
	}

	uc.sampleLoaded = true
	uc.l.Infof(ctx, "chat: sample conversation memorized, %d turns, task=%s", len(turns), taskID)

	return chat.LoadSampleOutput{TaskID: taskID, TurnCount: len(turns)}, nil
}
