package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	appctx "github.com/jsamuelsen11/taskflow-service/internal/app/context"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

var _ ports.AttachmentService = (*AttachmentService)(nil)

// AttachmentService stores task files and serves them through presigned URLs.
type AttachmentService struct {
	attachments ports.AttachmentRepository
	tasks       ports.TaskRepository
	objects     ports.ObjectStore
	signer      signer
	concurrency int
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
}

// NewAttachmentService creates an AttachmentService. Downloads are signed
// for presignTTL; concurrency bounds parallel uploads and presigns.
func NewAttachmentService(
	attachments ports.AttachmentRepository, tasks ports.TaskRepository, objects ports.ObjectStore,
	presignTTL time.Duration, concurrency int, logger *slog.Logger,
) *AttachmentService {
	concurrency = max(concurrency, 1)
	return &AttachmentService{
		attachments: attachments,
		tasks:       tasks,
		objects:     objects,
		signer:      signer{store: objects, ttl: presignTTL, workers: concurrency},
		concurrency: concurrency,
		logger:      orDiscard(logger),
		now:         systemNow,
		newID:       newUUID,
	}
}

// Upload stores files for an existing task and records them.
func (s *AttachmentService) Upload(ctx context.Context, principal domain.Principal, taskID string, files []domain.Upload) ([]domain.Attachment, error) {
	s.logger.InfoContext(ctx, "uploading attachments",
		slog.String("task_id", taskID),
		slog.Int("files", len(files)),
	)

	if strings.TrimSpace(taskID) == "" {
		return nil, domain.NewValidationError("taskId", "is required")
	}
	if len(files) == 0 {
		return nil, domain.NewValidationError("files", "at least one file is required")
	}
	if _, err := currentTask(ctx, s.tasks, taskID); err != nil {
		return nil, err
	}

	rows, uploads := stageUploads(s.objects, s.newID, files, domain.Attachment{
		TaskID:     taskID,
		RecSeq:     1,
		DataStatus: domain.DataActive,
		CreatedBy:  principal.UserID,
		CreatedOn:  s.now(),
	})
	for i := range rows {
		rows[i].UploaderName = principal.UserName
		rows[i].UploaderRole = principal.Role
	}

	rc := appctx.Ensure(ctx)
	if err := rc.AddLimitedGroup(s.concurrency, uploads...); err != nil {
		return nil, err
	}
	if err := rc.AddAction(domain.Step{
		Name: "insert attachments for " + taskID,
		Run: func(ctx context.Context) error {
			return s.attachments.CreateAttachments(ctx, rows)
		},
	}); err != nil {
		return nil, err
	}
	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to upload attachments",
			slog.String("operation", "Upload"),
			slog.String("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := s.signer.sign(ctx, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// AttachmentsByTask lists the task's files with download URLs.
func (s *AttachmentService) AttachmentsByTask(ctx context.Context, taskID string) ([]domain.Attachment, error) {
	list, err := s.attachments.AttachmentsByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.signed(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// AllAttachments lists every active file with download URLs.
func (s *AttachmentService) AllAttachments(ctx context.Context) ([]domain.Attachment, error) {
	list, err := s.attachments.AllAttachments(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.signed(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetAttachment returns one file with a download URL.
func (s *AttachmentService) GetAttachment(ctx context.Context, id string, recSeq int) (*domain.Attachment, error) {
	a, err := s.attachments.Attachment(ctx, id, recSeq)
	if err != nil {
		return nil, err
	}
	one := []domain.Attachment{*a}
	if err := s.signed(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// RemoveAttachment soft-deletes the record. The stored object is kept.
func (s *AttachmentService) RemoveAttachment(ctx context.Context, id string, recSeq int) error {
	s.logger.InfoContext(ctx, "removing attachment", slog.String("attachment_id", id))

	if err := s.attachments.DeactivateAttachment(ctx, id, recSeq, s.now()); err != nil {
		s.logger.ErrorContext(ctx, "failed to remove attachment",
			slog.String("operation", "RemoveAttachment"),
			slog.String("attachment_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func (s *AttachmentService) signed(ctx context.Context, list []domain.Attachment) error {
	if err := s.signer.sign(ctx, list); err != nil {
		s.logger.ErrorContext(ctx, "failed to presign attachments",
			slog.String("operation", "presign"),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
