package usecase

import (
	"context"

	"memu-demos/internal/chat/repository"
	"memu-demos/internal/model"
	"memu-demos/pkg/llm"
)

// Mock logger for testing
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

// recordingRepo records memory calls in order for invariant checks.
type recordingRepo struct {
	calls *[]string

	retrieveFunc func(opt repository.RetrieveOptions) ([]model.Snippet, error)
	memorizeFunc func(turns []model.Turn) (string, error)
}

func (r *recordingRepo) MemorizeTurns(ctx context.Context, sc model.Scope, turns []model.Turn) (string, error) {
	if r.calls != nil {
		*r.calls = append(*r.calls, "memorize")
	}
	if r.memorizeFunc != nil {
		return r.memorizeFunc(turns)
	}
	return "task-1", nil
}

func (r *recordingRepo) RetrieveContext(ctx context.Context, sc model.Scope, opt repository.RetrieveOptions) ([]model.Snippet, error) {
	if r.calls != nil {
		*r.calls = append(*r.calls, "retrieve")
	}
	if r.retrieveFunc != nil {
		return r.retrieveFunc(opt)
	}
	return nil, nil
}

// recordingLLM records generate calls in order for invariant checks.
type recordingLLM struct {
	calls *[]string

	generateFunc func(input llm.GenerateInput) (string, error)
}

func (p *recordingLLM) Generate(ctx context.Context, input llm.GenerateInput) (string, error) {
	if p.calls != nil {
		*p.calls = append(*p.calls, "generate")
	}
	if p.generateFunc != nil {
		return p.generateFunc(input)
	}
	return "mock reply", nil
}

func (p *recordingLLM) Model() string {
	return "mock-model"
}
