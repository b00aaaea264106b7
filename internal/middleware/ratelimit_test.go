package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
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

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(cfg RateLimitConfig) *gin.Engine {
		mw := New(&mockLogger{}, cfg)
		router := gin.New()
		router.POST("/limited", mw.RateLimit(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("Burst Then Throttle", func(t *testing.T) {
		// Refill is negligible within the test, so only the burst passes.
		router := newRouter(RateLimitConfig{RequestsPerSecond: 0.001, Burst: 3})

		codes := make([]int, 0, 5)
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/limited", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			router.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		for i, code := range codes[:3] {
			if code != http.StatusOK {
				t.Errorf("request %d should pass, got %d", i, code)
			}
		}
		for i, code := range codes[3:] {
			if code != http.StatusTooManyRequests {
				t.Errorf("request %d should be throttled, got %d", i+3, code)
			}
		}
	})

	t.Run("Buckets Are Per Client", func(t *testing.T) {
		router := newRouter(RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1})

		for _, addr := range []string{"10.0.0.1:1234", "10.0.0.2:1234"} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/limited", nil)
			req.RemoteAddr = addr
			router.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("first request from %s should pass, got %d", addr, w.Code)
			}
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		lim := newIPLimiter(RateLimitConfig{})
		if lim.cfg.RequestsPerSecond != defaultRequestsPerSecond || lim.cfg.Burst != defaultBurst {
			t.Errorf("defaults not applied: %+v", lim.cfg)
		}
	})
}
