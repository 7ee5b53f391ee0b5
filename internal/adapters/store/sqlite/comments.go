package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

const commentColumns = `c.comment_id, c.task_id, c.rec_seq, c.comment_text, c.data_status,
	c.created_by, c.created_on, c.modified_on, COALESCE(u.user_name, '')`

const commentJoins = ` FROM task_comments c LEFT JOIN users u ON u.user_id = c.created_by`

func scanComment(row scanner) (domain.Comment, error) {
	var (
		c          domain.Comment
		modifiedOn sql.NullTime
	)
	err := row.Scan(&c.ID, &c.TaskID, &c.RecSeq, &c.Text, &c.DataStatus,
		&c.CreatedBy, &c.CreatedOn, &modifiedOn, &c.AuthorName)
	c.ModifiedOn = timePtr(modifiedOn)
	return c, err
}

func insertComment(ctx context.Context, ex execer, c *domain.Comment) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO task_comments (
			comment_id, rec_seq, task_id, comment_text, data_status, created_by, created_on, modified_on
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.RecSeq, c.TaskID, c.Text, c.DataStatus, c.CreatedBy, c.CreatedOn.UTC(), nullableTime(c.ModifiedOn),
	)
	return err
}

// CreateComment implements ports.CommentRepository.
func (s *Store) CreateComment(ctx context.Context, comment *domain.Comment) error {
	return wrapErr("insert comment", insertComment(ctx, s.db, comment))
}

// CommentsByTask implements ports.CommentRepository.
func (s *Store) CommentsByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+commentColumns+commentJoins+`
		WHERE c.task_id = ? AND c.data_status = 'A'
		ORDER BY c.created_on ASC, c.comment_id`, taskID)
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	defer rows.Close()

	out := []domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return out, nil
}

// UpdateComment implements ports.CommentRepository.
func (s *Store) UpdateComment(
	ctx context.Context, id string, recSeq int, text string, at time.Time,
) (*domain.Comment, error) {
	var updated domain.Comment
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE task_comments SET comment_text = ?, modified_on = ?
			WHERE comment_id = ? AND rec_seq = ? AND data_status = 'A'`,
			text, at.UTC(), id, recSeq,
		)
		if err != nil {
			return wrapErr("update comment", err)
		}
		if err := requireAffected("update comment", res); err != nil {
			return err
		}

		updated, err = scanComment(tx.QueryRowContext(ctx, `
			SELECT `+commentColumns+commentJoins+`
			WHERE c.comment_id = ? AND c.rec_seq = ?`, id, recSeq))
		return wrapErr("reload comment", err)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeactivateComment implements ports.CommentRepository.
func (s *Store) DeactivateComment(ctx context.Context, id string, recSeq int, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE task_comments SET data_status = 'I', modified_on = ?
		WHERE comment_id = ? AND rec_seq = ? AND data_status = 'A'`,
		at.UTC(), id, recSeq,
	)
	if err != nil {
		return wrapErr("deactivate comment", err)
	}
	return requireAffected("deactivate comment", res)
}
