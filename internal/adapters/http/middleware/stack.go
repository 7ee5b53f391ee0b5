package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/telemetry"
)

// StackConfig carries what the global middleware needs.
type StackConfig struct {
	Logger        *slog.Logger
	Metrics       *telemetry.Metrics
	Timeout       time.Duration
	UploadTimeout time.Duration
}

// Stack returns the global middleware, outermost first, for the router to
// install with Use.
func Stack(cfg StackConfig) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(cfg.Logger),
		RequestID(),
		CorrelationID(),
		AppContext(cfg.Logger),
		OpenTelemetry(cfg.Metrics),
		Logging(cfg.Logger),
		Timeout(cfg.Timeout, cfg.UploadTimeout),
	}
}
