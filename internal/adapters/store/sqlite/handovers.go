package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

const handoverSelect = `SELECT h.handover_id, h.task_id, h.original_employee_id, h.new_employee_id,
		h.request_status, h.requested_on, h.actioned_by, h.actioned_on,
		COALESCE(t.task_title, ''), COALESCE(u.user_name, '')
	FROM task_handovers h
	LEFT JOIN current_tasks t ON t.task_id = h.task_id
	LEFT JOIN users u ON u.user_id = h.original_employee_id`

func scanHandover(row scanner) (domain.Handover, error) {
	var (
		h                     domain.Handover
		newEmployee, actioner sql.NullString
		actionedOn            sql.NullTime
	)
	err := row.Scan(&h.ID, &h.TaskID, &h.OriginalEmployeeID, &newEmployee,
		&h.Status, &h.RequestedOn, &actioner, &actionedOn,
		&h.TaskTitle, &h.OriginalEmployeeName)
	h.NewEmployeeID = newEmployee.String
	h.ActionedBy = actioner.String
	h.ActionedOn = timePtr(actionedOn)
	return h, err
}

// CreateHandovers implements ports.HandoverRepository.
func (s *Store) CreateHandovers(ctx context.Context, handovers []domain.Handover) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for i := range handovers {
			h := &handovers[i]
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO task_handovers (
					handover_id, task_id, original_employee_id, request_status, requested_on
				) VALUES (?, ?, ?, ?, ?)`,
				h.ID, h.TaskID, h.OriginalEmployeeID, h.Status, h.RequestedOn.UTC(),
			); err != nil {
				return wrapErr("insert handover", err)
			}
		}
		return nil
	})
}

// PendingHandovers implements ports.HandoverRepository.
func (s *Store) PendingHandovers(ctx context.Context) ([]domain.Handover, error) {
	rows, err := s.db.QueryContext(ctx, handoverSelect+`
		WHERE h.request_status = ?
		ORDER BY h.requested_on ASC, h.handover_id`, domain.HandoverPending)
	if err != nil {
		return nil, fmt.Errorf("select pending handovers: %w", err)
	}
	defer rows.Close()

	out := []domain.Handover{}
	for rows.Next() {
		h, err := scanHandover(rows)
		if err != nil {
			return nil, fmt.Errorf("scan handover: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate handovers: %w", err)
	}
	return out, nil
}

// Handover implements ports.HandoverRepository.
func (s *Store) Handover(ctx context.Context, id string) (*domain.Handover, error) {
	h, err := scanHandover(s.db.QueryRowContext(ctx, handoverSelect+` WHERE h.handover_id = ?`, id))
	if err != nil {
		return nil, wrapErr("select handover", err)
	}
	return &h, nil
}

// decideHandover records the decision on a pending request. A request that
// is no longer pending is a conflict.
func decideHandover(ctx context.Context, ex execer, h *domain.Handover) error {
	res, err := ex.ExecContext(ctx, `
		UPDATE task_handovers
		SET request_status = ?, new_employee_id = ?, actioned_by = ?, actioned_on = ?
		WHERE handover_id = ? AND request_status = ?`,
		h.Status, nullable(h.NewEmployeeID), h.ActionedBy, nullableTime(h.ActionedOn),
		h.ID, domain.HandoverPending,
	)
	if err != nil {
		return wrapErr("update handover", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update handover: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update handover %s: no longer pending: %w", h.ID, domain.ErrConflict)
	}
	return nil
}

// ApproveHandover implements ports.HandoverRepository.
func (s *Store) ApproveHandover(ctx context.Context, handover *domain.Handover) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE task_assignments SET assigned_to = ?, modified_on = ?
			WHERE task_id = ? AND assigned_to = ? AND data_status = 'A'`,
			handover.NewEmployeeID, nullableTime(handover.ActionedOn),
			handover.TaskID, handover.OriginalEmployeeID,
		); err != nil {
			return wrapErr("reassign assignments", err)
		}
		return decideHandover(ctx, tx, handover)
	})
}

// RejectHandover implements ports.HandoverRepository.
func (s *Store) RejectHandover(ctx context.Context, handover *domain.Handover) error {
	return decideHandover(ctx, s.db, handover)
}
