package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
	appctx "github.com/jsamuelsen11/taskflow-service/internal/app/context"
)

func TestStack_FullPipeline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	for _, mw := range middleware.Stack(middleware.StackConfig{Logger: testLogger(&buf), Timeout: 5 * time.Second}) {
		r.Use(mw)
	}
	r.Get("/api/v1/tasks/{taskId}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if middleware.RequestIDFromContext(ctx) == "" || middleware.CorrelationIDFromContext(ctx) == "" {
			t.Error("request or correlation ID missing from context")
		}
		if appctx.FromContext(ctx) == nil {
			t.Error("request context missing")
		}
		if _, ok := ctx.Deadline(); !ok {
			t.Error("no deadline on context")
		}
		_, _ = w.Write([]byte(`{"taskId":"t-7"}`))
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t-7", http.NoBody)
	req.Header.Set("X-Request-ID", "req-stack-1")
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != "req-stack-1" {
		t.Errorf("X-Correlation-ID = %q, want the request ID", got)
	}
	logs := buf.String()
	for _, want := range []string{"request completed", "route=/api/v1/tasks/{taskId}", "request_id=req-stack-1"} {
		if !strings.Contains(logs, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestStack_PanicBecomesProblem(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	for _, mw := range middleware.Stack(middleware.StackConfig{Logger: discardLogger(), Timeout: time.Second}) {
		r.Use(mw)
	}
	r.Post("/api/v1/tasks/{taskId}/review", func(http.ResponseWriter, *http.Request) { panic("nil outcome") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/tasks/t-1/review", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID")
	}
}
