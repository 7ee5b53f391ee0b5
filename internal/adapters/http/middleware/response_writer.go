package middleware

import "net/http"

// statusRecorder remembers the final status and body size of a response.
// Recovery, OpenTelemetry, and Logging share one per request.
type statusRecorder struct {
	http.ResponseWriter
	status    int
	committed bool
	size      int64
}

// recordStatus wraps w, reusing the recorder an outer middleware installed.
func recordStatus(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader passes informational statuses through untouched and keeps
// only the first final one.
func (sr *statusRecorder) WriteHeader(code int) {
	if code >= 100 && code < 200 && code != http.StatusSwitchingProtocols {
		sr.ResponseWriter.WriteHeader(code)
		return
	}
	if sr.committed {
		return
	}
	sr.status, sr.committed = code, true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.committed = true
	n, err := sr.ResponseWriter.Write(b)
	sr.size += int64(n)
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (sr *statusRecorder) Unwrap() http.ResponseWriter { return sr.ResponseWriter }
