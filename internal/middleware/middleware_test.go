package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"chatbot-router/config"
	"chatbot-router/internal/middleware"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, config.RateLimitConfig{})

	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Generated When Absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.HeaderRequestID); got == "" {
			t.Error("expected generated request id header")
		}
	})

	t.Run("Propagated When Present", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "abc-123")
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.HeaderRequestID); got != "abc-123" {
			t.Errorf("expected propagated request id, got %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newServer := func(perMin int) *gin.Engine {
		mw := middleware.New(&mockLogger{}, config.RateLimitConfig{PerMin: perMin})
		r := gin.New()
		r.Use(mw.RateLimit())
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("Within Burst", func(t *testing.T) {
		r := newServer(5)
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})

	t.Run("Over Burst", func(t *testing.T) {
		r := newServer(2)
		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			codes = append(codes, w.Code)
		}
		if codes[2] != http.StatusTooManyRequests {
			t.Errorf("expected 429 on third request, got %v", codes)
		}
	})

	t.Run("Per Client Isolation", func(t *testing.T) {
		r := newServer(1)
		hit := func(ip string) int {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = ip + ":1234"
			r.ServeHTTP(w, req)
			return w.Code
		}

		if code := hit("203.0.113.1"); code != http.StatusOK {
			t.Fatalf("first client first request: expected 200, got %d", code)
		}
		if code := hit("203.0.113.1"); code != http.StatusTooManyRequests {
			t.Fatalf("first client second request: expected 429, got %d", code)
		}
		if code := hit("203.0.113.2"); code != http.StatusOK {
			t.Errorf("second client must not share the first client's limiter, got %d", code)
		}
	})

	t.Run("Oldest Client Evicted When Table Full", func(t *testing.T) {
		r := newServer(1)
		hit := func(ip string) int {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = ip + ":1234"
			r.ServeHTTP(w, req)
			return w.Code
		}

		if code := hit("203.0.113.1"); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if code := hit("203.0.113.1"); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 once the budget is spent, got %d", code)
		}

		// Flood with enough distinct clients to push the first one out.
		for i := 0; i < middleware.MaxTrackedClients; i++ {
			hit(fmt.Sprintf("10.%d.%d.%d", (i>>16)&0xff, (i>>8)&0xff, i&0xff))
		}

		if code := hit("203.0.113.1"); code != http.StatusOK {
			t.Errorf("expected fresh limiter after eviction, got %d", code)
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		r := newServer(0)
		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 with limiter disabled, got %d", w.Code)
			}
		}
	})
}
