package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
)

// jsonLines decodes every JSON log line in buf.
func jsonLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func accessLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	for _, m := range jsonLines(t, buf) {
		if m["msg"] == "request completed" {
			return m
		}
	}
	t.Fatalf("no access line in %s", buf.String())
	return nil
}

func TestLogging_AccessLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		method    string
		path      string
		status    int
		body      string
		wantLevel string
	}{
		{name: "success at info", method: http.MethodGet, path: "/api/v1/process", status: http.StatusOK, body: "[]", wantLevel: "INFO"},
		{name: "created at info", method: http.MethodPost, path: "/api/v1/tasks", status: http.StatusCreated, wantLevel: "INFO"},
		{name: "client error at warn", method: http.MethodGet, path: "/api/v1/tasks/nope", status: http.StatusNotFound, wantLevel: "WARN"},
		{name: "server error at error", method: http.MethodDelete, path: "/api/v1/taskAttachments/a/1", status: http.StatusBadGateway, wantLevel: "ERROR"},
		{name: "probe at debug", method: http.MethodGet, path: "/health/ready", status: http.StatusOK, wantLevel: "DEBUG"},
		{name: "failing probe still errors", method: http.MethodGet, path: "/health/ready", status: http.StatusServiceUnavailable, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.path, http.NoBody))

			line := accessLine(t, &buf)
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, tt.method, line["method"])
			assert.Equal(t, tt.path, line["path"])
			assert.InDelta(t, tt.status, line["status"], 0)
			assert.InDelta(t, len(tt.body), line["bytes"], 0)
			assert.Contains(t, line, "duration")
		})
	}
}

func TestLogging_ProbesQuietAtInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := middleware.Logging(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	assert.Zero(t, buf.Len())
}

func TestLogging_RequestScopedLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := middleware.RequestID()(middleware.CorrelationID()(middleware.Logging(logger)(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "loading task")
		}),
	)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t-1", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-1")
	req.Header.Set("X-Correlation-ID", "corr-log-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	lines := jsonLines(t, &buf)
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, "req-log-1", line["request_id"], line["msg"])
		assert.Equal(t, "corr-log-1", line["correlation_id"], line["msg"])
	}
	assert.Equal(t, "loading task", lines[0]["msg"])
}

func TestLogging_RoutePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(slog.New(slog.NewJSONHandler(&buf, nil))))
	r.Get("/api/v1/tasks/{taskId}/details", func(http.ResponseWriter, *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t-42/details", http.NoBody))

	line := accessLine(t, &buf)
	assert.Equal(t, "/api/v1/tasks/{taskId}/details", line["route"])
	assert.Equal(t, "/api/v1/tasks/t-42/details", line["path"])
}

func TestLogging_DebugHeadersRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	handler := middleware.Logging(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/employees", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("Accept", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var headers map[string]any
	for _, line := range jsonLines(t, &buf) {
		if line["msg"] == "request headers" {
			headers, _ = line["headers"].(map[string]any)
		}
	}
	require.NotNil(t, headers)
	assert.Equal(t, "[REDACTED]", headers["Authorization"])
	assert.Equal(t, "application/json", headers["Accept"])
	assert.NotContains(t, buf.String(), "secret-token")
}
