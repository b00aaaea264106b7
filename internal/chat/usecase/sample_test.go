package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"memu-demos/internal/chat"
	"memu-demos/internal/model"
	"memu-demos/internal/session"
)

func writeSampleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "example_conversation.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write sample file: %v", err)
	}
	return path
}

func TestLoadSample(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u-1"}

	t.Run("Loads Once", func(t *testing.T) {
		path := writeSampleFile(t, `[
			{"role": "user", "content": "I adopted a cat named Miso"},
			{"role": "assistant", "content": "Congratulations on the new family member!"}
		]`)

		var gotTurns []model.Turn
		repo := &recordingRepo{
			memorizeFunc: func(turns []model.Turn) (string, error) {
				gotTurns = turns
				return "task-7", nil
			},
		}
		uc := New(&mockLogger{}, &recordingLLM{}, repo, session.NewStore(0, 0), Config{SamplePath: path})

		out, err := uc.LoadSample(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TurnCount != 2 || out.TaskID != "task-7" {
			t.Errorf("unexpected output: %+v", out)
		}
		if len(gotTurns) != 2 || gotTurns[0].Role != model.RoleUser {
			t.Errorf("sample turns not forwarded: %+v", gotTurns)
		}

		_, err = uc.LoadSample(ctx, sc)
		if !errors.Is(err, chat.ErrSampleAlreadyLoaded) {
			t.Errorf("expected ErrSampleAlreadyLoaded on second load, got %v", err)
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		uc := New(&mockLogger{}, &recordingLLM{}, &recordingRepo{}, session.NewStore(0, 0),
			Config{SamplePath: "does/not/exist.json"})
		if _, err := uc.LoadSample(ctx, sc); err == nil {
			t.Errorf("expected error for missing sample file")
		}
	})

	t.Run("Malformed File", func(t *testing.T) {
		path := writeSampleFile(t, `{not json`)
		uc := New(&mockLogger{}, &recordingLLM{}, &recordingRepo{}, session.NewStore(0, 0), Config{SamplePath: path})
		if _, err := uc.LoadSample(ctx, sc); err == nil {
			t.Errorf("expected error for malformed sample file")
		}
	})

	t.Run("Memorize Failure Allows Retry", func(t *testing.T) {
		path := writeSampleFile(t, `[{"role": "user", "content": "hi"}]`)
		fail := true
		repo := &recordingRepo{
			memorizeFunc: func(turns []model.Turn) (string, error) {
				if fail {
					return "", errors.New("provider down")
				}
				return "task-1", nil
			},
		}
		uc := New(&mockLogger{}, &recordingLLM{}, repo, session.NewStore(0, 0), Config{SamplePath: path})

		if _, err := uc.LoadSample(ctx, sc); err == nil {
			t.Fatalf("expected first load to fail")
		}
		fail = false
		if _, err := uc.LoadSample(ctx, sc); err != nil {
			t.Errorf("expected retry after failure to succeed, got %v", err)
		}
	})
}
