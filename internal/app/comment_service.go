package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

var _ ports.CommentService = (*CommentService)(nil)

// CommentService manages task comments.
type CommentService struct {
	comments ports.CommentRepository
	tasks    ports.TaskRepository
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// NewCommentService creates a CommentService.
func NewCommentService(comments ports.CommentRepository, tasks ports.TaskRepository, logger *slog.Logger) *CommentService {
	return &CommentService{
		comments: comments,
		tasks:    tasks,
		logger:   orDiscard(logger),
		now:      systemNow,
		newID:    newUUID,
	}
}

// AddComment records a comment by the principal on an existing task.
func (s *CommentService) AddComment(ctx context.Context, principal domain.Principal, c domain.Comment) (*domain.Comment, error) {
	s.logger.InfoContext(ctx, "adding comment", slog.String("task_id", c.TaskID))

	c.Text = strings.TrimSpace(c.Text)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if _, err := currentTask(ctx, s.tasks, c.TaskID); err != nil {
		return nil, err
	}

	c.ID = s.newID()
	c.RecSeq = 1
	c.DataStatus = domain.DataActive
	c.CreatedBy = principal.UserID
	c.CreatedOn = s.now()
	c.ModifiedOn = nil
	c.AuthorName = principal.UserName

	if err := s.comments.CreateComment(ctx, &c); err != nil {
		s.logger.ErrorContext(ctx, "failed to add comment",
			slog.String("operation", "AddComment"),
			slog.String("task_id", c.TaskID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &c, nil
}

// Comments lists the task's comments oldest first.
func (s *CommentService) Comments(ctx context.Context, taskID string) ([]domain.Comment, error) {
	return s.comments.CommentsByTask(ctx, taskID)
}

// EditComment replaces the comment text.
func (s *CommentService) EditComment(ctx context.Context, id string, recSeq int, text string) (*domain.Comment, error) {
	s.logger.InfoContext(ctx, "editing comment", slog.String("comment_id", id))

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("commentText", "is required")
	}
	updated, err := s.comments.UpdateComment(ctx, id, recSeq, text, s.now())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to edit comment",
			slog.String("operation", "EditComment"),
			slog.String("comment_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// RemoveComment soft-deletes the comment.
func (s *CommentService) RemoveComment(ctx context.Context, id string, recSeq int) error {
	s.logger.InfoContext(ctx, "removing comment", slog.String("comment_id", id))

	if err := s.comments.DeactivateComment(ctx, id, recSeq, s.now()); err != nil {
		s.logger.ErrorContext(ctx, "failed to remove comment",
			slog.String("operation", "RemoveComment"),
			slog.String("comment_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
