package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
)

func TestTimeout_CopiesFinishedResponse(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(time.Second, 0)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"surveyId":"s-1"}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/survey/create", http.NoBody))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if rec.Body.String() != `{"surveyId":"s-1"}` {
		t.Errorf("body = %q", rec.Body.String())
	}
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", rec.Header().Get("Content-Type"))
	}
}

func TestTimeout_ImplicitOK(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(time.Second, 0)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/process", http.NoBody))

	if rec.Code != http.StatusOK || rec.Body.String() != "[]" {
		t.Errorf("response = (%d, %q), want (200, \"[]\")", rec.Code, rec.Body.String())
	}
}

func TestTimeout_ExpiredWritesProblem(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(50*time.Millisecond, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		_, _ = w.Write([]byte("too late"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/alltasks", http.NoBody))

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	if strings.Contains(rec.Body.String(), "too late") {
		t.Error("late handler output reached the client")
	}
}

func TestTimeout_UploadDeadline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		want        time.Duration
	}{
		{"json uses the default", "application/json", time.Second},
		{"multipart uses the upload deadline", "multipart/form-data; boundary=abc", time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var remaining time.Duration
			handler := middleware.Timeout(time.Second, time.Hour)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				deadline, ok := r.Context().Deadline()
				if !ok {
					t.Error("context has no deadline")
				}
				remaining = time.Until(deadline)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/taskAttachments", http.NoBody)
			req.Header.Set("Content-Type", tt.contentType)
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if remaining > tt.want || remaining < tt.want-time.Minute/2 {
				t.Errorf("remaining = %v, want about %v", remaining, tt.want)
			}
		})
	}
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(middleware.Timeout(time.Second, 0)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }),
	))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/process", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
