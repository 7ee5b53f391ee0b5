package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

const assignmentColumns = `a.assignment_id, a.task_id, a.rec_seq, a.assigned_to, a.manager_id, a.assigned_by,
	a.planned_start_date, a.planned_end_date, a.actual_start_date, a.actual_end_date,
	a.rec_status, a.data_status, a.completed_by, a.completed_on, a.created_on, a.modified_on`

type assignmentRow struct {
	assignment   domain.Assignment
	managerID    sql.NullString
	assignedBy   sql.NullString
	plannedStart sql.NullString
	plannedEnd   sql.NullString
	actualStart  sql.NullString
	actualEnd    sql.NullString
	completedBy  sql.NullString
	completedOn  sql.NullTime
	modifiedOn   sql.NullTime
}

func (r *assignmentRow) dest() []any {
	a := &r.assignment
	return []any{
		&a.ID, &a.TaskID, &a.RecSeq, &a.UserID, &r.managerID, &r.assignedBy,
		&r.plannedStart, &r.plannedEnd, &r.actualStart, &r.actualEnd,
		&a.RecStatus, &a.DataStatus, &r.completedBy, &r.completedOn, &a.CreatedOn, &r.modifiedOn,
	}
}

func (r *assignmentRow) value() domain.Assignment {
	a := r.assignment
	a.ManagerID = r.managerID.String
	a.AssignedBy = r.assignedBy.String
	a.PlannedStartDate = r.plannedStart.String
	a.PlannedEndDate = r.plannedEnd.String
	a.ActualStartDate = r.actualStart.String
	a.ActualEndDate = r.actualEnd.String
	a.CompletedBy = r.completedBy.String
	a.CompletedOn = timePtr(r.completedOn)
	a.ModifiedOn = timePtr(r.modifiedOn)
	return a
}

func insertAssignment(ctx context.Context, ex execer, a *domain.Assignment) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO task_assignments (
			assignment_id, task_id, rec_seq, assigned_to, manager_id, assigned_by,
			planned_start_date, planned_end_date, actual_start_date, actual_end_date,
			rec_status, data_status, completed_by, completed_on, created_on, modified_on
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.TaskID, a.RecSeq, a.UserID, nullable(a.ManagerID), nullable(a.AssignedBy),
		nullable(a.PlannedStartDate), nullable(a.PlannedEndDate),
		nullable(a.ActualStartDate), nullable(a.ActualEndDate),
		a.RecStatus, a.DataStatus, nullable(a.CompletedBy), nullableTime(a.CompletedOn),
		a.CreatedOn.UTC(), nullableTime(a.ModifiedOn),
	)
	return err
}

// CreateAssignment implements ports.AssignmentRepository.
func (s *Store) CreateAssignment(ctx context.Context, assignment *domain.Assignment) error {
	return wrapErr("insert assignment", insertAssignment(ctx, s.db, assignment))
}

// AssignmentsByTask implements ports.AssignmentRepository.
func (s *Store) AssignmentsByTask(ctx context.Context, taskID string) ([]domain.Assignment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+assignmentColumns+` FROM task_assignments a
		WHERE a.task_id = ? AND a.data_status = 'A'
		ORDER BY a.created_on, a.assignment_id`, taskID)
	if err != nil {
		return nil, fmt.Errorf("select assignments by task: %w", err)
	}
	defer rows.Close()

	out := []domain.Assignment{}
	for rows.Next() {
		var r assignmentRow
		if err := rows.Scan(r.dest()...); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		out = append(out, r.value())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignments: %w", err)
	}
	return out, nil
}

// AssignmentsByUser implements ports.AssignmentRepository. The status filter
// applies to the assignment; search and sort apply to the task.
func (s *Store) AssignmentsByUser(
	ctx context.Context, userID string, query domain.TaskQuery,
) ([]domain.AssignmentView, int, error) {
	conds := []string{"a.assigned_to = ?", "a.data_status = 'A'"}
	args := []any{userID}
	if query.Status != "" {
		conds = append(conds, "a.rec_status = ?")
		args = append(args, query.Status)
	}
	if query.Search != "" {
		conds = append(conds, `(t.task_title LIKE ? ESCAPE '\' OR t.task_description LIKE ? ESCAPE '\')`)
		p := likePattern(query.Search)
		args = append(args, p, p)
	}
	from := ` FROM task_assignments a
		JOIN current_tasks t ON t.task_id = a.task_id
		LEFT JOIN users bu ON bu.user_id = a.assigned_by
		LEFT JOIN users mu ON mu.user_id = a.manager_id
		WHERE ` + strings.Join(conds, " AND ")

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*)`+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count assignments by user: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+assignmentColumns+`, t.task_title, COALESCE(bu.user_name, ''), COALESCE(mu.user_name, '')`+
			from+orderClause(query),
		append(args, query.Limit, query.Offset())...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("select assignments by user: %w", err)
	}
	defer rows.Close()

	out := []domain.AssignmentView{}
	for rows.Next() {
		var (
			r assignmentRow
			v domain.AssignmentView
		)
		if err := rows.Scan(append(r.dest(), &v.TaskTitle, &v.AssignedByName, &v.ReviewerName)...); err != nil {
			return nil, 0, fmt.Errorf("scan assignment view: %w", err)
		}
		v.Assignment = r.value()
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate assignment views: %w", err)
	}
	return out, total, nil
}

// ActiveAssignment implements ports.AssignmentRepository.
func (s *Store) ActiveAssignment(ctx context.Context, taskID string, userID string) (*domain.Assignment, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+assignmentColumns+` FROM task_assignments a
		WHERE a.task_id = ? AND a.assigned_to = ? AND a.data_status = 'A'
		ORDER BY a.created_on DESC, a.rec_seq DESC
		LIMIT 1`, taskID, userID)
	var r assignmentRow
	if err := row.Scan(r.dest()...); err != nil {
		return nil, wrapErr("select active assignment", err)
	}
	a := r.value()
	return &a, nil
}

// UpdateAssignment implements ports.AssignmentRepository.
func (s *Store) UpdateAssignment(
	ctx context.Context, id string, recSeq int, patch domain.AssignmentPatch, at time.Time,
) (*domain.Assignment, error) {
	sets := []string{"modified_on = ?"}
	args := []any{at.UTC()}
	addString := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+" = ?")
			args = append(args, nullable(*v))
		}
	}
	addString("assigned_to", patch.UserID)
	addString("manager_id", patch.ManagerID)
	addString("planned_start_date", patch.PlannedStartDate)
	addString("planned_end_date", patch.PlannedEndDate)
	addString("actual_start_date", patch.ActualStartDate)
	addString("actual_end_date", patch.ActualEndDate)
	if patch.RecStatus != nil {
		sets = append(sets, "rec_status = ?")
		args = append(args, *patch.RecStatus)
	}

	var updated domain.Assignment
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE task_assignments SET `+strings.Join(sets, ", ")+`
			WHERE assignment_id = ? AND rec_seq = ? AND data_status = 'A'`,
			append(args, id, recSeq)...,
		)
		if err != nil {
			return wrapErr("update assignment", err)
		}
		if err := requireAffected("update assignment", res); err != nil {
			return err
		}

		var r assignmentRow
		if err := tx.QueryRowContext(ctx, `
			SELECT `+assignmentColumns+` FROM task_assignments a
			WHERE a.assignment_id = ? AND a.rec_seq = ?`, id, recSeq,
		).Scan(r.dest()...); err != nil {
			return wrapErr("reload assignment", err)
		}
		updated = r.value()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeactivateAssignment implements ports.AssignmentRepository.
func (s *Store) DeactivateAssignment(ctx context.Context, id string, recSeq int, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE task_assignments SET data_status = 'I', modified_on = ?
		WHERE assignment_id = ? AND rec_seq = ? AND data_status = 'A'`,
		at.UTC(), id, recSeq,
	)
	if err != nil {
		return wrapErr("deactivate assignment", err)
	}
	return requireAffected("deactivate assignment", res)
}
