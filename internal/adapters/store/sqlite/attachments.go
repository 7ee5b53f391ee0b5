package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

const attachmentColumns = `f.attachment_id, f.task_id, f.rec_seq, f.file_key, f.file_url, f.file_name,
	f.is_creation_doc, f.data_status, f.created_by, f.created_on,
	COALESCE(u.user_name, ''), COALESCE(u.role, '')`

const attachmentJoins = ` FROM task_attachments f LEFT JOIN users u ON u.user_id = f.created_by`

func scanAttachment(row scanner) (domain.Attachment, error) {
	var a domain.Attachment
	err := row.Scan(&a.ID, &a.TaskID, &a.RecSeq, &a.FileKey, &a.FileURL, &a.FileName,
		&a.IsCreationDoc, &a.DataStatus, &a.CreatedBy, &a.CreatedOn,
		&a.UploaderName, &a.UploaderRole)
	return a, err
}

func insertAttachment(ctx context.Context, ex execer, a *domain.Attachment) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO task_attachments (
			attachment_id, rec_seq, task_id, file_key, file_url, file_name,
			is_creation_doc, data_status, created_by, created_on
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.RecSeq, a.TaskID, a.FileKey, a.FileURL, a.FileName,
		a.IsCreationDoc, a.DataStatus, a.CreatedBy, a.CreatedOn.UTC(),
	)
	return err
}

func (s *Store) queryAttachments(ctx context.Context, op, where string, args ...any) ([]domain.Attachment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+attachmentColumns+attachmentJoins+where+` ORDER BY f.created_on, f.attachment_id`, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := []domain.Attachment{}
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate: %w", op, err)
	}
	return out, nil
}

// CreateAttachments implements ports.AttachmentRepository.
func (s *Store) CreateAttachments(ctx context.Context, attachments []domain.Attachment) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for i := range attachments {
			if err := insertAttachment(ctx, tx, &attachments[i]); err != nil {
				return wrapErr("insert attachment", err)
			}
		}
		return nil
	})
}

// AttachmentsByTask implements ports.AttachmentRepository.
func (s *Store) AttachmentsByTask(ctx context.Context, taskID string) ([]domain.Attachment, error) {
	return s.queryAttachments(ctx, "select attachments by task",
		` WHERE f.task_id = ? AND f.data_status = 'A'`, taskID)
}

// AllAttachments implements ports.AttachmentRepository.
func (s *Store) AllAttachments(ctx context.Context) ([]domain.Attachment, error) {
	return s.queryAttachments(ctx, "select attachments", ` WHERE f.data_status = 'A'`)
}

// attachmentsForTasks groups the active attachments of the given tasks by task ID.
func (s *Store) attachmentsForTasks(ctx context.Context, taskIDs []string) (map[string][]domain.Attachment, error) {
	list, err := s.queryAttachments(ctx, "select dashboard attachments",
		` WHERE f.data_status = 'A' AND f.task_id IN (`+placeholders(len(taskIDs))+`)`,
		stringArgs(taskIDs)...)
	if err != nil {
		return nil, err
	}
	byTask := make(map[string][]domain.Attachment, len(taskIDs))
	for _, a := range list {
		byTask[a.TaskID] = append(byTask[a.TaskID], a)
	}
	return byTask, nil
}

// Attachment implements ports.AttachmentRepository.
func (s *Store) Attachment(ctx context.Context, id string, recSeq int) (*domain.Attachment, error) {
	a, err := scanAttachment(s.db.QueryRowContext(ctx, `
		SELECT `+attachmentColumns+attachmentJoins+`
		WHERE f.attachment_id = ? AND f.rec_seq = ? AND f.data_status = 'A'`, id, recSeq))
	if err != nil {
		return nil, wrapErr("select attachment", err)
	}
	return &a, nil
}

// DeactivateAttachment implements ports.AttachmentRepository. The stored
// object is left in place.
func (s *Store) DeactivateAttachment(ctx context.Context, id string, recSeq int, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE task_attachments SET data_status = 'I', modified_on = ?
		WHERE attachment_id = ? AND rec_seq = ? AND data_status = 'A'`,
		at.UTC(), id, recSeq,
	)
	if err != nil {
		return wrapErr("deactivate attachment", err)
	}
	return requireAffected("deactivate attachment", res)
}
