package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

const taskColumns = `t.task_id, t.rec_seq, t.org_id, t.rec_status, t.data_status,
	t.task_title, t.task_description,
	t.planned_start_date, t.planned_end_date, t.planned_start_time, t.planned_end_time,
	t.pool_task, t.group_task, t.mandatory, t.proof_required, t.important,
	t.review_by, t.created_by, t.created_on, t.modified_by, t.modified_on`

// A draft is a D row that has never been modified; a reviewer's approval
// also sets D but always stamps modified_on.
const draftPredicate = `t.rec_status = 'D' AND t.modified_on IS NULL`

// plannedEndExpr renders the planned end as "YYYY-MM-DD HH:MM:SS". A missing
// time counts as the end of the day.
const plannedEndExpr = `planned_end_date || ' ' || CASE
		WHEN planned_end_time IS NULL THEN '23:59:59'
		WHEN length(planned_end_time) = 5 THEN planned_end_time || ':00'
		ELSE planned_end_time
	END`

var taskSortColumns = map[domain.TaskSortField]string{
	domain.SortCreatedOn:        "t.created_on",
	domain.SortModifiedOn:       "t.modified_on",
	domain.SortPlannedEndDate:   "t.planned_end_date",
	domain.SortPlannedStartDate: "t.planned_start_date",
	domain.SortTaskTitle:        "t.task_title",
}

// taskRow holds the nullable columns of a task while scanning.
type taskRow struct {
	task       domain.Task
	startDate  sql.NullString
	endDate    sql.NullString
	startTime  sql.NullString
	endTime    sql.NullString
	reviewBy   sql.NullString
	modifiedBy sql.NullString
	modifiedOn sql.NullTime
}

func (r *taskRow) dest() []any {
	t := &r.task
	return []any{
		&t.ID, &t.RecSeq, &t.OrgID, &t.RecStatus, &t.DataStatus,
		&t.Title, &t.Description,
		&r.startDate, &r.endDate, &r.startTime, &r.endTime,
		&t.PoolTask, &t.GroupTask, &t.Mandatory, &t.ProofRequired, &t.Important,
		&r.reviewBy, &t.CreatedBy, &t.CreatedOn, &r.modifiedBy, &r.modifiedOn,
	}
}

func (r *taskRow) value() domain.Task {
	t := r.task
	t.PlannedStartDate = r.startDate.String
	t.PlannedEndDate = r.endDate.String
	t.PlannedStartTime = r.startTime.String
	t.PlannedEndTime = r.endTime.String
	t.ReviewBy = r.reviewBy.String
	t.ModifiedBy = r.modifiedBy.String
	t.ModifiedOn = timePtr(r.modifiedOn)
	return t
}

func insertTask(ctx context.Context, ex execer, t *domain.Task) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO tasks (
			task_id, rec_seq, org_id, rec_status, data_status,
			task_title, task_description,
			planned_start_date, planned_end_date, planned_start_time, planned_end_time,
			pool_task, group_task, mandatory, proof_required, important,
			review_by, created_by, created_on, modified_by, modified_on
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.RecSeq, t.OrgID, t.RecStatus, t.DataStatus,
		t.Title, t.Description,
		nullable(t.PlannedStartDate), nullable(t.PlannedEndDate),
		nullable(t.PlannedStartTime), nullable(t.PlannedEndTime),
		t.PoolTask, t.GroupTask, t.Mandatory, t.ProofRequired, t.Important,
		nullable(t.ReviewBy), t.CreatedBy, t.CreatedOn.UTC(), nullable(t.ModifiedBy), nullableTime(t.ModifiedOn),
	)
	return err
}

// CreateTask implements ports.TaskRepository.
func (s *Store) CreateTask(
	ctx context.Context, task *domain.Task, assignments []domain.Assignment, attachments []domain.Attachment,
) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := insertTask(ctx, tx, task); err != nil {
			return wrapErr("insert task", err)
		}
		for i := range assignments {
			if err := insertAssignment(ctx, tx, &assignments[i]); err != nil {
				return wrapErr("insert task assignment", err)
			}
		}
		for i := range attachments {
			if err := insertAttachment(ctx, tx, &attachments[i]); err != nil {
				return wrapErr("insert task attachment", err)
			}
		}
		return nil
	})
}

// SaveDraft implements ports.TaskRepository.
func (s *Store) SaveDraft(ctx context.Context, task *domain.Task) error {
	return wrapErr("insert draft", insertTask(ctx, s.db, task))
}

// PublishDraft implements ports.TaskRepository.
func (s *Store) PublishDraft(
	ctx context.Context, taskID string, update *domain.Task, by string, at time.Time,
) (*domain.Task, error) {
	var published domain.Task
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			SELECT `+taskColumns+` FROM current_tasks t
			WHERE t.task_id = ? AND `+draftPredicate, taskID)
		var r taskRow
		if err := row.Scan(r.dest()...); err != nil {
			return wrapErr("select draft", err)
		}
		draft := r.value()

		if _, err := tx.ExecContext(ctx, `
			UPDATE tasks SET data_status = 'I', modified_by = ?, modified_on = ?
			WHERE task_id = ? AND rec_seq = ?`,
			by, at.UTC(), draft.ID, draft.RecSeq,
		); err != nil {
			return wrapErr("retire draft", err)
		}

		published = *update
		published.ID = draft.ID
		published.RecSeq = draft.RecSeq + 1
		published.OrgID = draft.OrgID
		published.RecStatus = domain.RecPending
		published.DataStatus = domain.DataActive
		published.CreatedBy = draft.CreatedBy
		published.CreatedOn = draft.CreatedOn
		published.ModifiedBy = by
		modified := at
		published.ModifiedOn = &modified

		return wrapErr("insert published version", insertTask(ctx, tx, &published))
	})
	if err != nil {
		return nil, err
	}
	return &published, nil
}

// CurrentTask implements ports.TaskRepository.
func (s *Store) CurrentTask(ctx context.Context, taskID string) (*domain.Task, error) {
	return currentTask(ctx, s.db, taskID)
}

func currentTask(ctx context.Context, q querier, taskID string) (*domain.Task, error) {
	row := q.QueryRowContext(ctx, `
		SELECT `+taskColumns+` FROM current_tasks t WHERE t.task_id = ?`, taskID)
	var r taskRow
	if err := row.Scan(r.dest()...); err != nil {
		return nil, wrapErr("select current task", err)
	}
	t := r.value()
	return &t, nil
}

// taskFilter builds the WHERE clause shared by the paged task lists. The
// leading condition binds the list to a user.
func taskFilter(leading string, leadingArgs []any, query domain.TaskQuery) (string, []any) {
	conds := []string{}
	args := []any{}
	if leading != "" {
		conds = append(conds, leading)
		args = append(args, leadingArgs...)
	}
	if query.Status != "" {
		conds = append(conds, "t.rec_status = ?")
		args = append(args, query.Status)
	}
	if query.Search != "" {
		conds = append(conds, `(t.task_title LIKE ? ESCAPE '\' OR t.task_description LIKE ? ESCAPE '\')`)
		p := likePattern(query.Search)
		args = append(args, p, p)
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderClause renders a whitelisted ORDER BY with LIMIT and OFFSET
// placeholders. Unknown fields fall back to created_on.
func orderClause(query domain.TaskQuery) string {
	col, ok := taskSortColumns[query.SortBy]
	if !ok {
		col = taskSortColumns[domain.SortCreatedOn]
	}
	dir := "DESC"
	if query.SortOrder == domain.SortAsc {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, t.task_id %s LIMIT ? OFFSET ?", col, dir, dir)
}

// ListTasks implements ports.TaskRepository.
func (s *Store) ListTasks(ctx context.Context, query domain.TaskQuery) ([]domain.Task, int, error) {
	where, args := taskFilter("", nil, query)

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM current_tasks t`+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM current_tasks t`+where+orderClause(query),
		append(args, query.Limit, query.Offset())...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var r taskRow
		if err := rows.Scan(r.dest()...); err != nil {
			return nil, 0, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, r.value())
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, total, nil
}

// DeactivateTask implements ports.TaskRepository.
func (s *Store) DeactivateTask(ctx context.Context, taskID string, by string, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET data_status = 'I', modified_by = ?, modified_on = ?
		WHERE task_id = ? AND data_status = 'A'`,
		by, at.UTC(), taskID,
	)
	if err != nil {
		return wrapErr("deactivate task", err)
	}
	return requireAffected("deactivate task", res)
}

const summaryColumns = `t.task_id, t.task_title, COALESCE(t.planned_end_date, ''), t.rec_status, t.important,
	COALESCE((
		SELECT GROUP_CONCAT(au.user_name, ', ')
		FROM task_assignments a JOIN users au ON au.user_id = a.assigned_to
		WHERE a.task_id = t.task_id AND a.data_status = 'A'
	), ''),
	COALESCE(cu.user_name, ''), COALESCE(ru.user_name, ''), t.created_on`

const summaryJoins = ` FROM current_tasks t
	LEFT JOIN users cu ON cu.user_id = t.created_by
	LEFT JOIN users ru ON ru.user_id = t.review_by`

func scanSummaries(rows *sql.Rows) ([]domain.TaskSummary, error) {
	defer rows.Close()
	out := []domain.TaskSummary{}
	for rows.Next() {
		var s domain.TaskSummary
		if err := rows.Scan(&s.TaskID, &s.Title, &s.DueDate, &s.Status, &s.Important,
			&s.AssignedToName, &s.AssignedByName, &s.ReviewerName, &s.CreatedOn); err != nil {
			return nil, fmt.Errorf("scan task summary: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task summaries: %w", err)
	}
	return out, nil
}

// DraftsByCreator implements ports.TaskRepository.
func (s *Store) DraftsByCreator(ctx context.Context, userID string) ([]domain.TaskSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+summaryColumns+summaryJoins+`
		WHERE t.created_by = ? AND `+draftPredicate+`
		ORDER BY t.created_on DESC, t.task_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("select drafts: %w", err)
	}
	return scanSummaries(rows)
}

func (s *Store) pagedSummaries(
	ctx context.Context, op, leading string, userID string, query domain.TaskQuery,
) ([]domain.TaskSummary, int, error) {
	where, args := taskFilter(leading, []any{userID}, query)

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM current_tasks t`+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", op, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+summaryColumns+summaryJoins+where+orderClause(query),
		append(args, query.Limit, query.Offset())...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("select %s: %w", op, err)
	}
	summaries, err := scanSummaries(rows)
	if err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

// TasksCreatedBy implements ports.TaskRepository.
func (s *Store) TasksCreatedBy(
	ctx context.Context, userID string, query domain.TaskQuery,
) ([]domain.TaskSummary, int, error) {
	return s.pagedSummaries(ctx, "tasks created by user", "t.created_by = ?", userID, query)
}

// TasksAssignedTo implements ports.TaskRepository.
func (s *Store) TasksAssignedTo(
	ctx context.Context, userID string, query domain.TaskQuery,
) ([]domain.TaskSummary, int, error) {
	return s.pagedSummaries(ctx, "tasks assigned to user", `EXISTS (
		SELECT 1 FROM task_assignments a
		WHERE a.task_id = t.task_id AND a.assigned_to = ? AND a.data_status = 'A')`, userID, query)
}

// TasksReviewedBy implements ports.TaskRepository.
func (s *Store) TasksReviewedBy(
	ctx context.Context, userID string, query domain.TaskQuery,
) ([]domain.TaskSummary, int, error) {
	return s.pagedSummaries(ctx, "tasks reviewed by user", `EXISTS (
		SELECT 1 FROM task_assignments a
		WHERE a.task_id = t.task_id AND a.manager_id = ? AND a.data_status = 'A')`, userID, query)
}

// TaskDetails implements ports.TaskRepository.
func (s *Store) TaskDetails(ctx context.Context, taskID string) (*domain.TaskDetails, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+taskColumns+`,
			COALESCE(cu.user_name, ''), COALESCE(ru.user_name, ''),
			(SELECT COUNT(DISTINCT a.assigned_to) FROM task_assignments a
			 WHERE a.task_id = t.task_id AND a.data_status = 'A')
		FROM current_tasks t
		LEFT JOIN users cu ON cu.user_id = t.created_by
		LEFT JOIN users ru ON ru.user_id = t.review_by
		WHERE t.task_id = ?`, taskID)

	var (
		r taskRow
		d domain.TaskDetails
	)
	if err := row.Scan(append(r.dest(), &d.CreatorName, &d.ReviewerName, &d.AssigneeCount)...); err != nil {
		return nil, wrapErr("select task details", err)
	}
	d.Task = r.value()
	return &d, nil
}

// MarkOverdue implements ports.TaskRepository.
func (s *Store) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET rec_status = 'O'
		WHERE data_status = 'A' AND rec_status = 'P'
		  AND planned_end_date IS NOT NULL
		  AND (`+plannedEndExpr+`) < ?`,
		now.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return 0, fmt.Errorf("mark overdue tasks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark overdue tasks: rows affected: %w", err)
	}
	return n, nil
}

// AssigneeTasks implements ports.TaskRepository.
func (s *Store) AssigneeTasks(ctx context.Context, userID string) ([]domain.CategorizedTask, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+taskColumns+`, a.assignment_id, a.assigned_to
		FROM current_tasks t
		JOIN task_assignments a ON a.task_id = t.task_id AND a.data_status = 'A'
		WHERE a.assigned_to = ? AND NOT (`+draftPredicate+`)
		ORDER BY t.important DESC, t.rec_status, t.planned_end_date, t.planned_end_time, t.task_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("select assignee tasks: %w", err)
	}
	return s.categorized(ctx, rows)
}

// ReviewerTasks implements ports.TaskRepository.
func (s *Store) ReviewerTasks(ctx context.Context, userID string) ([]domain.CategorizedTask, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+taskColumns+`, MIN(a.assignment_id), MIN(a.assigned_to)
		FROM current_tasks t
		JOIN task_assignments a ON a.task_id = t.task_id AND a.data_status = 'A'
		WHERE a.manager_id = ? AND t.rec_status = 'I'
		GROUP BY t.task_id
		ORDER BY t.important DESC, t.planned_end_date, t.task_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("select reviewer tasks: %w", err)
	}
	return s.categorized(ctx, rows)
}

// categorized scans dashboard rows and attaches each task's active
// attachments. Category is left for the caller, which owns the clock.
func (s *Store) categorized(ctx context.Context, rows *sql.Rows) ([]domain.CategorizedTask, error) {
	// The rows must be closed before the attachment query: the pool holds
	// a single connection.
	out, err := scanCategorized(rows)
	if err != nil || len(out) == 0 {
		return out, err
	}

	ids := make([]string, len(out))
	for i := range out {
		ids[i] = out[i].Task.ID
	}
	byTask, err := s.attachmentsForTasks(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Attachments = byTask[out[i].Task.ID]
	}
	return out, nil
}

func scanCategorized(rows *sql.Rows) ([]domain.CategorizedTask, error) {
	defer rows.Close()
	out := []domain.CategorizedTask{}
	for rows.Next() {
		var (
			r  taskRow
			ct domain.CategorizedTask
		)
		if err := rows.Scan(append(r.dest(), &ct.AssignmentID, &ct.AssigneeID)...); err != nil {
			return nil, fmt.Errorf("scan dashboard task: %w", err)
		}
		ct.Task = r.value()
		out = append(out, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dashboard tasks: %w", err)
	}
	return out, nil
}

// ReviewableTask implements ports.TaskRepository.
func (s *Store) ReviewableTask(ctx context.Context, taskID string, reviewerID string) (*domain.Task, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+taskColumns+` FROM current_tasks t
		WHERE t.task_id = ? AND t.rec_status = 'I'
		  AND EXISTS (
			SELECT 1 FROM task_assignments a
			WHERE a.task_id = t.task_id AND a.manager_id = ? AND a.data_status = 'A')`,
		taskID, reviewerID)
	var r taskRow
	if err := row.Scan(r.dest()...); err != nil {
		return nil, wrapErr("select reviewable task", err)
	}
	t := r.value()
	return &t, nil
}

func setCurrentTaskStatus(
	ctx context.Context, ex execer, taskID string, status domain.RecStatus, by string, at time.Time,
) error {
	res, err := ex.ExecContext(ctx, `
		UPDATE tasks SET rec_status = ?, modified_by = ?, modified_on = ?
		WHERE task_id = ? AND data_status = 'A'
		  AND rec_seq = (SELECT MAX(rec_seq) FROM tasks WHERE task_id = ? AND data_status = 'A')`,
		status, by, at.UTC(), taskID, taskID,
	)
	if err != nil {
		return wrapErr("update task status", err)
	}
	return requireAffected("update task status", res)
}

// CompleteSubmission implements ports.TaskRepository.
func (s *Store) CompleteSubmission(
	ctx context.Context, assignment *domain.Assignment, status domain.RecStatus,
	proof *domain.Attachment, comment *domain.Comment, at time.Time,
) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if proof != nil {
			if err := insertAttachment(ctx, tx, proof); err != nil {
				return wrapErr("insert proof", err)
			}
		}
		if comment != nil {
			if err := insertComment(ctx, tx, comment); err != nil {
				return wrapErr("insert submission comment", err)
			}
		}
		if err := setCurrentTaskStatus(ctx, tx, assignment.TaskID, status, assignment.UserID, at); err != nil {
			return err
		}

		var completedBy, completedOn any
		if status == domain.RecCompleted {
			completedBy = assignment.UserID
			completedOn = at.UTC()
		}
		res, err := tx.ExecContext(ctx, `
			UPDATE task_assignments
			SET rec_status = ?, completed_by = ?, completed_on = ?, modified_on = ?
			WHERE assignment_id = ? AND rec_seq = ? AND data_status = 'A'`,
			status, completedBy, completedOn, at.UTC(), assignment.ID, assignment.RecSeq,
		)
		if err != nil {
			return wrapErr("update assignment status", err)
		}
		return requireAffected("update assignment status", res)
	})
}

// ApplyReview implements ports.TaskRepository.
func (s *Store) ApplyReview(
	ctx context.Context, taskID string, status domain.RecStatus, comment *domain.Comment, by string, at time.Time,
) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := setCurrentTaskStatus(ctx, tx, taskID, status, by, at); err != nil {
			return err
		}
		if comment != nil {
			if err := insertComment(ctx, tx, comment); err != nil {
				return wrapErr("insert review comment", err)
			}
		}
		return nil
	})
}
