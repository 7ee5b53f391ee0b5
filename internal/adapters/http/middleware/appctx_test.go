package middleware_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
	appctx "github.com/jsamuelsen11/taskflow-service/internal/app/context"
)

type noopAction string

func (a noopAction) Execute(context.Context) error  { return nil }
func (a noopAction) Rollback(context.Context) error { return nil }
func (a noopAction) Description() string            { return string(a) }

func TestAppContext_FreshPerRequest(t *testing.T) {
	t.Parallel()

	var seen []*appctx.RequestContext
	handler := middleware.AppContext(discardLogger())(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = append(seen, appctx.FromContext(r.Context()))
	}))

	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t-1", http.NoBody))
	}

	if len(seen) != 2 || seen[0] == nil || seen[1] == nil {
		t.Fatalf("request contexts = %v, want two non-nil", seen)
	}
	if seen[0] == seen[1] {
		t.Error("two requests shared one RequestContext")
	}
}

func TestAppContext_WarnsOnUncommittedActions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var rc *appctx.RequestContext
	handler := middleware.AppContext(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc = appctx.FromContext(r.Context())
		if err := rc.AddAction(noopAction("upload proof.pdf")); err != nil {
			t.Errorf("AddAction: %v", err)
		}
		w.WriteHeader(http.StatusBadRequest)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/tasks/t-1/submit", http.NoBody))

	if !strings.Contains(buf.String(), "discarded uncommitted actions") || !strings.Contains(buf.String(), "upload proof.pdf") {
		t.Errorf("log output = %q, want a warning naming the dropped action", buf.String())
	}
	if err := rc.Commit(context.Background()); err == nil {
		t.Error("Commit after the request finished succeeded, want ErrAlreadyCommitted")
	}
}

func TestAppContext_QuietAfterCommit(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.AppContext(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		rc := appctx.FromContext(r.Context())
		_ = rc.AddAction(noopAction("insert task"))
		if err := rc.Commit(r.Context()); err != nil {
			t.Errorf("Commit: %v", err)
		}
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/tasks", http.NoBody))

	if strings.Contains(buf.String(), "discarded") {
		t.Errorf("unexpected warning: %s", buf.String())
	}
}
