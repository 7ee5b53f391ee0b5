package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

var _ ports.AssignmentService = (*AssignmentService)(nil)

// AssignmentService manages who works on a task.
type AssignmentService struct {
	assignments ports.AssignmentRepository
	tasks       ports.TaskRepository
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
}

// NewAssignmentService creates an AssignmentService.
func NewAssignmentService(assignments ports.AssignmentRepository, tasks ports.TaskRepository, logger *slog.Logger) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		tasks:       tasks,
		logger:      orDiscard(logger),
		now:         systemNow,
		newID:       newUUID,
	}
}

// CreateAssignment assigns a user to an existing task. Without an explicit
// manager the task's reviewer manages the assignment.
func (s *AssignmentService) CreateAssignment(ctx context.Context, principal domain.Principal, a domain.Assignment) (*domain.Assignment, error) {
	s.logger.InfoContext(ctx, "creating assignment",
		slog.String("task_id", a.TaskID),
		slog.String("user_id", a.UserID),
	)

	if err := a.Validate(); err != nil {
		return nil, err
	}
	task, err := currentTask(ctx, s.tasks, a.TaskID)
	if err != nil {
		return nil, err
	}

	a.ID = s.newID()
	a.RecSeq = 1
	a.RecStatus = domain.RecPending
	a.DataStatus = domain.DataActive
	a.AssignedBy = principal.UserID
	a.CreatedOn = s.now()
	if a.ManagerID == "" {
		a.ManagerID = task.ReviewBy
	}

	if err := s.assignments.CreateAssignment(ctx, &a); err != nil {
		s.logger.ErrorContext(ctx, "failed to create assignment",
			slog.String("operation", "CreateAssignment"),
			slog.String("task_id", a.TaskID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &a, nil
}

// AssignmentsByTask lists the task's active assignments.
func (s *AssignmentService) AssignmentsByTask(ctx context.Context, taskID string) ([]domain.Assignment, error) {
	return s.assignments.AssignmentsByTask(ctx, taskID)
}

// AssignmentsByUser pages through the user's assignments.
func (s *AssignmentService) AssignmentsByUser(ctx context.Context, userID string, query domain.TaskQuery) (*domain.TaskPage[domain.AssignmentView], error) {
	if err := query.Normalize(); err != nil {
		return nil, err
	}
	views, total, err := s.assignments.AssignmentsByUser(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	return &domain.TaskPage[domain.AssignmentView]{Items: views, Total: total, Page: query.Page, Limit: query.Limit}, nil
}

// UpdateAssignment applies a partial update and returns the stored row.
func (s *AssignmentService) UpdateAssignment(ctx context.Context, id string, recSeq int, patch domain.AssignmentPatch) (*domain.Assignment, error) {
	s.logger.InfoContext(ctx, "updating assignment", slog.String("assignment_id", id))

	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domain.NewValidationError("body", "at least one field must be provided")
	}

	updated, err := s.assignments.UpdateAssignment(ctx, id, recSeq, patch, s.now())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update assignment",
			slog.String("operation", "UpdateAssignment"),
			slog.String("assignment_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// RemoveAssignment soft-deletes the assignment.
func (s *AssignmentService) RemoveAssignment(ctx context.Context, id string, recSeq int) error {
	s.logger.InfoContext(ctx, "removing assignment", slog.String("assignment_id", id))

	if err := s.assignments.DeactivateAssignment(ctx, id, recSeq, s.now()); err != nil {
		s.logger.ErrorContext(ctx, "failed to remove assignment",
			slog.String("operation", "RemoveAssignment"),
			slog.String("assignment_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
