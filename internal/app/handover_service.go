package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

var _ ports.HandoverService = (*HandoverService)(nil)

// HandoverService runs the handover workflow: employees request, admins
// approve or reject.
type HandoverService struct {
	handovers ports.HandoverRepository
	tasks     ports.TaskRepository
	users     ports.UserRepository
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

// NewHandoverService creates a HandoverService.
func NewHandoverService(
	handovers ports.HandoverRepository, tasks ports.TaskRepository, users ports.UserRepository, logger *slog.Logger,
) *HandoverService {
	return &HandoverService{
		handovers: handovers,
		tasks:     tasks,
		users:     users,
		logger:    orDiscard(logger),
		now:       systemNow,
		newID:     newUUID,
	}
}

// RequestHandover files one pending request per task for the principal.
func (s *HandoverService) RequestHandover(ctx context.Context, principal domain.Principal, taskIDs []string) ([]domain.Handover, error) {
	s.logger.InfoContext(ctx, "requesting handover", slog.Int("tasks", len(taskIDs)))

	seen := make(map[string]bool, len(taskIDs))
	ids := make([]string, 0, len(taskIDs))
	for _, id := range taskIDs {
		id = strings.TrimSpace(id)
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, domain.NewValidationError("taskIds", "must contain at least one task")
	}

	now := s.now()
	requests := make([]domain.Handover, len(ids))
	for i, id := range ids {
		task, err := currentTask(ctx, s.tasks, id)
		if err != nil {
			return nil, fmt.Errorf("task %s: %w", id, err)
		}
		requests[i] = domain.Handover{
			ID:                   s.newID(),
			TaskID:               id,
			OriginalEmployeeID:   principal.UserID,
			Status:               domain.HandoverPending,
			RequestedOn:          now,
			TaskTitle:            task.Title,
			OriginalEmployeeName: principal.UserName,
		}
	}

	if err := s.handovers.CreateHandovers(ctx, requests); err != nil {
		s.logger.ErrorContext(ctx, "failed to request handover",
			slog.String("operation", "RequestHandover"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return requests, nil
}

// PendingHandovers lists open requests, oldest first.
func (s *HandoverService) PendingHandovers(ctx context.Context) ([]domain.Handover, error) {
	return s.handovers.PendingHandovers(ctx)
}

// DecideHandover approves or rejects a pending request. Approval moves the
// original employee's assignments on the task to the new employee.
func (s *HandoverService) DecideHandover(ctx context.Context, principal domain.Principal, d domain.HandoverDecision) (*domain.Handover, error) {
	s.logger.InfoContext(ctx, "deciding handover",
		slog.String("handover_id", d.HandoverID),
		slog.String("action", string(d.Action)),
	)

	if err := d.Validate(); err != nil {
		return nil, err
	}
	h, err := s.handovers.Handover(ctx, d.HandoverID)
	if err != nil {
		return nil, err
	}
	if h.Status != domain.HandoverPending {
		return nil, fmt.Errorf("handover already %s: %w", strings.ToLower(string(h.Status)), domain.ErrConflict)
	}

	now := s.now()
	h.ActionedBy = principal.UserID
	h.ActionedOn = &now

	if d.Action == domain.ActionReject {
		h.Status = domain.HandoverRejected
		err = s.handovers.RejectHandover(ctx, h)
	} else {
		if _, err := activeUser(ctx, s.users, d.NewEmployeeID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("newEmployeeId", "must be an active user")
			}
			return nil, err
		}
		h.Status = domain.HandoverApproved
		h.NewEmployeeID = d.NewEmployeeID
		err = s.handovers.ApproveHandover(ctx, h)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to decide handover",
			slog.String("operation", "DecideHandover"),
			slog.String("handover_id", d.HandoverID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return h, nil
}
