package ports

import (
	"context"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// WorkflowMetrics records business events alongside the HTTP instruments.
// Implementations must tolerate concurrent use.
type WorkflowMetrics interface {
	// TaskTransition counts a task moving into status.
	TaskTransition(ctx context.Context, status domain.RecStatus)
	// AccessDecision counts one event access check. reason is empty when granted.
	AccessDecision(ctx context.Context, granted bool, reason string)
}
