package handlers

import (
	"cmp"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const (
	probeAlive    = "alive"
	probeReady    = "ready"
	probeNotReady = "not_ready"
	checkPass     = "pass"
	checkFail     = "fail"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler returns a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: probeAlive})
}

// Readiness handles GET /health/ready. Any failing check turns the probe
// into a 503 so the load balancer stops routing here.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	results := h.registry.CheckAll(ctx)

	resp := dto.HealthResponse{Status: probeReady, Checks: make([]dto.HealthCheckResult, 0, len(results))}
	for name, err := range results {
		check := dto.HealthCheckResult{Name: name, Status: checkPass}
		if err != nil {
			check.Status = checkFail
			check.Error = err.Error()
			resp.Status = probeNotReady
			logging.FromContext(ctx).WarnContext(ctx, "readiness check failed",
				slog.String("check", name),
				slog.Any("error", err),
			)
		}
		resp.Checks = append(resp.Checks, check)
	}
	slices.SortFunc(resp.Checks, func(a, b dto.HealthCheckResult) int { return cmp.Compare(a.Name, b.Name) })

	code := http.StatusOK
	if resp.Status == probeNotReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
