package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"memu-demos/internal/avatar"
	"memu-demos/internal/chat/repository"
	"memu-demos/internal/model"
	"memu-demos/pkg/anam"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockAnam struct {
	lastPersona anam.PersonaConfig
	err         error
}

func (m *mockAnam) CreateSessionToken(ctx context.Context, persona anam.PersonaConfig) (string, error) {
	m.lastPersona = persona
	if m.err != nil {
		return "", m.err
	}
	return "tok-1", nil
}

type mockRepo struct {
	memorized    [][]model.Turn
	retrieveFunc func(opt repository.RetrieveOptions) ([]model.Snippet, error)
}

func (m *mockRepo) MemorizeTurns(ctx context.Context, sc model.Scope, turns []model.Turn) (string, error) {
	m.memorized = append(m.memorized, turns)
	return "task-1", nil
}

func (m *mockRepo) RetrieveContext(ctx context.Context, sc model.Scope, opt repository.RetrieveOptions) ([]model.Snippet, error) {
	if m.retrieveFunc != nil {
		return m.retrieveFunc(opt)
	}
	return nil, nil
}

func testConfig() Config {
	return Config{
		PersonaName:       "Maya",
		AvatarID:          "avatar-1",
		VoiceID:           "voice-1",
		LLMID:             "llm-1",
		SystemPrompt:      "You are Maya.",
		MaxSessionSeconds: 600,
		MemoryEnabled:     true,
	}
}

func TestStartSession(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u-1"}

	t.Run("Memory Context Enriches Prompt", func(t *testing.T) {
		client := &mockAnam{}
		repo := &mockRepo{
			retrieveFunc: func(opt repository.RetrieveOptions) ([]model.Snippet, error) {
				return []model.Snippet{{Tier: "item", Summary: "User has a cat named Miso"}}, nil
			},
		}
		uc := New(&mockLogger{}, client, repo, testConfig())

		out, err := uc.StartSession(ctx, sc, avatar.StartSessionInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.SessionToken != "tok-1" || out.State != avatar.StateConnecting {
			t.Errorf("unexpected output: %+v", out)
		}
		if !out.MemoryUsed {
			t.Errorf("expected memory context to be used")
		}
		if !strings.Contains(client.lastPersona.SystemPrompt, "<memory>") ||
			!strings.Contains(client.lastPersona.SystemPrompt, "Miso") {
			t.Errorf("memories not folded into prompt: %q", client.lastPersona.SystemPrompt)
		}
	})

	t.Run("Retrieval Failure Is Tolerated", func(t *testing.T) {
		client := &mockAnam{}
		repo := &mockRepo{
			retrieveFunc: func(opt repository.RetrieveOptions) ([]model.Snippet, error) {
				return nil, errors.New("memory service down")
			},
		}
		uc := New(&mockLogger{}, client, repo, testConfig())

		out, err := uc.StartSession(ctx, sc, avatar.StartSessionInput{})
		if err != nil {
			t.Fatalf("session should start without memories: %v", err)
		}
		if out.MemoryUsed {
			t.Errorf("MemoryUsed should be false after retrieval failure")
		}
		if client.lastPersona.SystemPrompt != "You are Maya." {
			t.Errorf("expected base prompt, got %q", client.lastPersona.SystemPrompt)
		}
	})

	t.Run("Persona Overrides Applied", func(t *testing.T) {
		client := &mockAnam{}
		uc := New(&mockLogger{}, client, &mockRepo{}, testConfig())

		_, err := uc.StartSession(ctx, sc, avatar.StartSessionInput{
			PersonaName: "Richard",
			AvatarID:    "avatar-2",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.lastPersona.Name != "Richard" || client.lastPersona.AvatarID != "avatar-2" {
			t.Errorf("overrides not applied: %+v", client.lastPersona)
		}
		if client.lastPersona.VoiceID != "voice-1" {
			t.Errorf("unset fields should keep defaults: %+v", client.lastPersona)
		}
	})

	t.Run("Token Error Propagates", func(t *testing.T) {
		client := &mockAnam{err: anam.ErrAuthentication}
		uc := New(&mockLogger{}, client, &mockRepo{}, testConfig())

		_, err := uc.StartSession(ctx, sc, avatar.StartSessionInput{})
		if !errors.Is(err, anam.ErrAuthentication) {
			t.Errorf("expected auth error to propagate, got %v", err)
		}
	})
}

func startSession(t *testing.T, uc *implUseCase) string {
	t.Helper()
	out, err := uc.StartSession(context.Background(), model.Scope{UserID: "u-1"}, avatar.StartSessionInput{})
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	return out.SessionID
}

func TestHandleEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Connection Lifecycle", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, &mockAnam{}, repo, testConfig())
		id := startSession(t, uc)

		if err := uc.HandleEvent(ctx, id, avatar.Event{Type: avatar.EventConnectionState, State: "connected"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		st, _ := uc.Status(ctx, id)
		if st.State != avatar.StateConnected {
			t.Errorf("expected connected, got %s", st.State)
		}

		for _, ev := range []avatar.Event{
			{Type: avatar.EventTranscript, Role: "user", Text: "hello avatar", Final: true},
			{Type: avatar.EventTranscript, Role: "assistant", Text: "hello!", Final: true},
			{Type: avatar.EventTranscript, Role: "user", Text: "partial...", Final: false},
		} {
			if err := uc.HandleEvent(ctx, id, ev); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		st, _ = uc.Status(ctx, id)
		if st.TurnCount != 2 {
			t.Errorf("only final transcripts should become turns, got %d", st.TurnCount)
		}

		if err := uc.HandleEvent(ctx, id, avatar.Event{Type: avatar.EventConnectionState, State: "disconnected"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		st, _ = uc.Status(ctx, id)
		if st.State != avatar.StateEnded {
			t.Errorf("disconnect should end the session, got %s", st.State)
		}
		if len(repo.memorized) != 1 || len(repo.memorized[0]) != 2 {
			t.Errorf("transcript should be memorized on end: %+v", repo.memorized)
		}
	})

	t.Run("Events After Ended Are Dropped", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockAnam{}, &mockRepo{}, testConfig())
		id := startSession(t, uc)

		if err := uc.EndSession(ctx, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := uc.HandleEvent(ctx, id, avatar.Event{Type: avatar.EventTranscript, Role: "user", Text: "late", Final: true})
		if !errors.Is(err, avatar.ErrSessionEnded) {
			t.Errorf("expected ErrSessionEnded, got %v", err)
		}
		st, _ := uc.Status(ctx, id)
		if st.TurnCount != 0 {
			t.Errorf("no turns should be recorded after end, got %d", st.TurnCount)
		}
	})

	t.Run("Token Expiry Ends Session", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, &mockAnam{}, repo, testConfig())
		id := startSession(t, uc)

		uc.HandleEvent(ctx, id, avatar.Event{Type: avatar.EventConnectionState, State: "connected"})
		uc.HandleEvent(ctx, id, avatar.Event{Type: avatar.EventTranscript, Role: "user", Text: "hi", Final: true})
		uc.HandleEvent(ctx, id, avatar.Event{Type: avatar.EventTranscript, Role: "assistant", Text: "hello", Final: true})

		// Jump past the session deadline.
		uc.now = func() time.Time { return time.Now().Add(time.Hour) }

		err := uc.HandleEvent(ctx, id, avatar.Event{Type: avatar.EventTranscript, Role: "user", Text: "too late", Final: true})
		if !errors.Is(err, avatar.ErrSessionEnded) {
			t.Errorf("expected ErrSessionEnded on expiry, got %v", err)
		}

		st, _ := uc.Status(ctx, id)
		if st.State != avatar.StateEnded {
			t.Errorf("expected ended state after expiry, got %s", st.State)
		}
		if st.TurnCount != 2 {
			t.Errorf("expired event must not append a turn, got %d turns", st.TurnCount)
		}
		if len(repo.memorized) != 1 {
			t.Errorf("transcript should be memorized on expiry: %+v", repo.memorized)
		}
	})

	t.Run("Unknown Session", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockAnam{}, &mockRepo{}, testConfig())
		err := uc.HandleEvent(ctx, "nope", avatar.Event{Type: avatar.EventTranscript})
		if !errors.Is(err, avatar.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Unknown Event Type", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockAnam{}, &mockRepo{}, testConfig())
		id := startSession(t, uc)
		err := uc.HandleEvent(ctx, id, avatar.Event{Type: "telemetry"})
		if !errors.Is(err, avatar.ErrUnknownEvent) {
			t.Errorf("expected ErrUnknownEvent, got %v", err)
		}
	})
}

func TestSaveAndEnd(t *testing.T) {
	ctx := context.Background()

	t.Run("Save Below Threshold Is Noop", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, &mockAnam{}, repo, testConfig())
		id := startSession(t, uc)

		uc.HandleEvent(ctx, id, avatar.Event{Type: avatar.EventTranscript, Role: "user", Text: "hi", Final: true})

		out, err := uc.Save(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TaskID != "" || len(repo.memorized) != 0 {
			t.Errorf("single-turn transcript should not be memorized")
		}
	})

	t.Run("Save Keeps Session Alive", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, &mockAnam{}, repo, testConfig())
		id := startSession(t, uc)

		uc.HandleEvent(ctx, id, avatar.Event{Type: avatar.EventTranscript, Role: "user", Text: "hi", Final: true})
		uc.HandleEvent(ctx, id, avatar.Event{Type: avatar.EventTranscript, Role: "assistant", Text: "hello", Final: true})

		out, err := uc.Save(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TaskID != "task-1" || out.TurnCount != 2 {
			t.Errorf("unexpected save output: %+v", out)
		}

		st, _ := uc.Status(ctx, id)
		if st.State == avatar.StateEnded {
			t.Errorf("Save must not end the session")
		}
	})

	t.Run("Memory Disabled Skips Persistence", func(t *testing.T) {
		cfg := testConfig()
		cfg.MemoryEnabled = false
		repo := &mockRepo{}
		uc := New(&mockLogger{}, &mockAnam{}, repo, cfg)
		id := startSession(t, uc)

		uc.HandleEvent(ctx, id, avatar.Event{Type: avatar.EventTranscript, Role: "user", Text: "hi", Final: true})
		uc.HandleEvent(ctx, id, avatar.Event{Type: avatar.EventTranscript, Role: "assistant", Text: "hello", Final: true})

		if err := uc.EndSession(ctx, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.memorized) != 0 {
			t.Errorf("nothing should be memorized with memory disabled")
		}
	})

	t.Run("EndSession Idempotent", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, &mockAnam{}, repo, testConfig())
		id := startSession(t, uc)

		uc.HandleEvent(ctx, id, avatar.Event{Type: avatar.EventTranscript, Role: "user", Text: "hi", Final: true})
		uc.HandleEvent(ctx, id, avatar.Event{Type: avatar.EventTranscript, Role: "assistant", Text: "hello", Final: true})

		if err := uc.EndSession(ctx, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.EndSession(ctx, id); err != nil {
			t.Fatalf("second EndSession should be a noop: %v", err)
		}
		if len(repo.memorized) != 1 {
			t.Errorf("transcript should be memorized exactly once, got %d", len(repo.memorized))
		}
	})
}
