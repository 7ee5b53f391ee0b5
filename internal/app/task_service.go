package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	appctx "github.com/jsamuelsen11/taskflow-service/internal/app/context"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

var _ ports.TaskService = (*TaskService)(nil)

const (
	msgSubmittedForReview = "Task submitted for review successfully."
	msgMarkedComplete     = "Task marked as complete successfully."
	msgApproved           = "Task has been successfully approved."
	msgRejected           = "Task has been successfully rejected."
)

var errNotAssigned = fmt.Errorf("task not found or you are not assigned to it: %w", domain.ErrNotFound)

// TaskStores groups the repositories TaskService reads and writes.
type TaskStores struct {
	Tasks       ports.TaskRepository
	Assignments ports.AssignmentRepository
	Attachments ports.AttachmentRepository
	Comments    ports.CommentRepository
	Users       ports.UserRepository
}

// TaskOptions tunes TaskService.
type TaskOptions struct {
	// OrgID is used when the principal carries no organization.
	OrgID string
	// PresignTTL is the lifetime of attachment download URLs.
	PresignTTL time.Duration
	// UploadConcurrency bounds parallel uploads and presigns.
	UploadConcurrency int
	// Location is the wall clock that planned dates and times refer to.
	Location *time.Location
	// Metrics counts status transitions. Nil records nothing.
	Metrics ports.WorkflowMetrics
}

// TaskService runs the task lifecycle.
type TaskService struct {
	stores  TaskStores
	objects ports.ObjectStore
	opts    TaskOptions
	signer  signer
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// NewTaskService creates a TaskService.
func NewTaskService(stores TaskStores, objects ports.ObjectStore, opts TaskOptions, logger *slog.Logger) *TaskService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.UploadConcurrency < 1 {
		opts.UploadConcurrency = 1
	}
	opts.Metrics = orNoMetrics(opts.Metrics)
	return &TaskService{
		stores:  stores,
		objects: objects,
		opts:    opts,
		signer:  signer{store: objects, ttl: opts.PresignTTL, workers: opts.UploadConcurrency},
		logger:  orDiscard(logger),
		now:     systemNow,
		newID:   newUUID,
	}
}

func (s *TaskService) clock() time.Time {
	return s.now().In(s.opts.Location)
}

// CreateTask validates the task and its people, uploads the creation files,
// and inserts task, assignments, and attachments together. Uploaded objects
// are deleted if the insert fails.
func (s *TaskService) CreateTask(ctx context.Context, principal domain.Principal, input domain.NewTask) (*domain.Task, error) {
	s.logger.InfoContext(ctx, "creating task",
		slog.Int("assignees", len(input.Assignees)),
		slog.Int("files", len(input.Files)),
	)

	task := input.Task
	if err := task.Validate(); err != nil {
		return nil, err
	}
	assignees, err := s.checkPeople(ctx, task.ReviewBy, input.Assignees)
	if err != nil {
		return nil, err
	}

	now := s.now()
	task.ID = s.newID()
	task.RecSeq = 1
	task.OrgID = orgOf(principal, s.opts.OrgID)
	task.RecStatus = domain.RecPending
	task.DataStatus = domain.DataActive
	task.CreatedBy = principal.UserID
	task.CreatedOn = now
	task.ModifiedBy = ""
	task.ModifiedOn = nil

	assignments := make([]domain.Assignment, len(assignees))
	for i, userID := range assignees {
		assignments[i] = domain.Assignment{
			ID:               s.newID(),
			TaskID:           task.ID,
			RecSeq:           1,
			UserID:           userID,
			ManagerID:        task.ReviewBy,
			AssignedBy:       principal.UserID,
			PlannedStartDate: task.PlannedStartDate,
			PlannedEndDate:   task.PlannedEndDate,
			RecStatus:        domain.RecPending,
			DataStatus:       domain.DataActive,
			CreatedOn:        now,
		}
	}

	attachments, uploads := stageUploads(s.objects, s.newID, input.Files, domain.Attachment{
		TaskID:        task.ID,
		RecSeq:        1,
		IsCreationDoc: true,
		DataStatus:    domain.DataActive,
		CreatedBy:     principal.UserID,
		CreatedOn:     now,
	})

	rc := appctx.Ensure(ctx)
	if err := rc.AddLimitedGroup(s.opts.UploadConcurrency, uploads...); err != nil {
		return nil, err
	}
	if err := rc.AddAction(domain.Step{
		Name: "insert task " + task.ID,
		Run: func(ctx context.Context) error {
			return s.stores.Tasks.CreateTask(ctx, &task, assignments, attachments)
		},
	}); err != nil {
		return nil, err
	}
	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.String("task_id", task.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	s.opts.Metrics.TaskTransition(ctx, task.RecStatus)
	return &task, nil
}

// checkPeople verifies that the reviewer and every assignee are active users
// and returns the assignees without duplicates.
func (s *TaskService) checkPeople(ctx context.Context, reviewer string, assignees []string) ([]string, error) {
	fields := map[string]string{}
	check := func(field, id string) error {
		_, err := activeUser(ctx, s.stores.Users, id)
		if errors.Is(err, domain.ErrNotFound) {
			fields[field] = fmt.Sprintf("user %q is not an active user", id)
			return nil
		}
		return err
	}

	if reviewer != "" {
		if err := check("reviewBy", reviewer); err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool, len(assignees))
	unique := make([]string, 0, len(assignees))
	for _, id := range assignees {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
		if err := check("assignedTo", id); err != nil {
			return nil, err
		}
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return unique, nil
}

// SaveDraft stores a new draft version. A caller-supplied ID is kept.
func (s *TaskService) SaveDraft(ctx context.Context, principal domain.Principal, draft domain.Task) (*domain.Task, error) {
	s.logger.InfoContext(ctx, "saving task draft", slog.String("task_id", draft.ID))

	if err := draft.ValidateDraft(); err != nil {
		return nil, err
	}
	if draft.ID == "" {
		draft.ID = s.newID()
	}
	draft.RecSeq = 1
	draft.OrgID = orgOf(principal, s.opts.OrgID)
	draft.RecStatus = domain.RecDraft
	draft.DataStatus = domain.DataActive
	draft.CreatedBy = principal.UserID
	draft.CreatedOn = s.now()
	draft.ModifiedBy = ""
	draft.ModifiedOn = nil

	if err := s.stores.Tasks.SaveDraft(ctx, &draft); err != nil {
		s.logger.ErrorContext(ctx, "failed to save task draft",
			slog.String("operation", "SaveDraft"),
			slog.String("task_id", draft.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	s.opts.Metrics.TaskTransition(ctx, draft.RecStatus)
	return &draft, nil
}

// PublishDraft turns the active draft into the next pending version.
func (s *TaskService) PublishDraft(ctx context.Context, principal domain.Principal, taskID string, update domain.Task) (*domain.Task, error) {
	s.logger.InfoContext(ctx, "publishing task draft", slog.String("task_id", taskID))

	if err := update.Validate(); err != nil {
		return nil, err
	}
	published, err := s.stores.Tasks.PublishDraft(ctx, taskID, &update, principal.UserID, s.now())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to publish task draft",
			slog.String("operation", "PublishDraft"),
			slog.String("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, err
	}
	s.opts.Metrics.TaskTransition(ctx, published.RecStatus)
	return published, nil
}

// GetTask returns the current version of the task.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	return s.stores.Tasks.CurrentTask(ctx, taskID)
}

// ListTasks returns one page of current tasks.
func (s *TaskService) ListTasks(ctx context.Context, query domain.TaskQuery) (*domain.TaskPage[domain.Task], error) {
	if err := query.Normalize(); err != nil {
		return nil, err
	}
	tasks, total, err := s.stores.Tasks.ListTasks(ctx, query)
	if err != nil {
		return nil, err
	}
	return &domain.TaskPage[domain.Task]{Items: tasks, Total: total, Page: query.Page, Limit: query.Limit}, nil
}

// DeleteTask soft-deletes every version of the task.
func (s *TaskService) DeleteTask(ctx context.Context, principal domain.Principal, taskID string) error {
	s.logger.InfoContext(ctx, "deleting task", slog.String("task_id", taskID))

	if err := s.stores.Tasks.DeactivateTask(ctx, taskID, principal.UserID, s.now()); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.String("task_id", taskID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Drafts lists the user's unpublished tasks.
func (s *TaskService) Drafts(ctx context.Context, userID string) ([]domain.TaskSummary, error) {
	return s.stores.Tasks.DraftsByCreator(ctx, userID)
}

// TasksCreatedBy pages through the tasks the user created.
func (s *TaskService) TasksCreatedBy(ctx context.Context, userID string, query domain.TaskQuery) (*domain.TaskPage[domain.TaskSummary], error) {
	return summaryPage(ctx, s.stores.Tasks.TasksCreatedBy, userID, query)
}

// TasksAssignedTo pages through the tasks the user is assigned to.
func (s *TaskService) TasksAssignedTo(ctx context.Context, userID string, query domain.TaskQuery) (*domain.TaskPage[domain.TaskSummary], error) {
	return summaryPage(ctx, s.stores.Tasks.TasksAssignedTo, userID, query)
}

// TasksReviewedBy pages through the tasks whose assignments the user manages.
func (s *TaskService) TasksReviewedBy(ctx context.Context, userID string, query domain.TaskQuery) (*domain.TaskPage[domain.TaskSummary], error) {
	return summaryPage(ctx, s.stores.Tasks.TasksReviewedBy, userID, query)
}

type summaryLister func(ctx context.Context, userID string, query domain.TaskQuery) ([]domain.TaskSummary, int, error)

func summaryPage(ctx context.Context, list summaryLister, userID string, query domain.TaskQuery) (*domain.TaskPage[domain.TaskSummary], error) {
	if err := query.Normalize(); err != nil {
		return nil, err
	}
	items, total, err := list(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	return &domain.TaskPage[domain.TaskSummary]{Items: items, Total: total, Page: query.Page, Limit: query.Limit}, nil
}

// TaskDetails loads the task header, then its proofs and comments
// concurrently, and signs the proof URLs.
func (s *TaskService) TaskDetails(ctx context.Context, taskID string) (*domain.TaskDetails, error) {
	details, err := s.stores.Tasks.TaskDetails(ctx, taskID)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		proofs, err := s.stores.Attachments.AttachmentsByTask(gctx, taskID)
		if err != nil {
			return fmt.Errorf("loading proofs: %w", err)
		}
		if err := s.signer.sign(gctx, proofs); err != nil {
			return err
		}
		details.Proofs = proofs
		return nil
	})
	g.Go(func() error {
		comments, err := s.stores.Comments.CommentsByTask(gctx, taskID)
		if err != nil {
			return fmt.Errorf("loading comments: %w", err)
		}
		details.Comments = comments
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "failed to load task details",
			slog.String("operation", "TaskDetails"),
			slog.String("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return details, nil
}

// AssigneeDashboard marks overdue tasks, then returns the user's tasks with
// their dashboard category.
func (s *TaskService) AssigneeDashboard(ctx context.Context, userID string) ([]domain.CategorizedTask, error) {
	now := s.clock()
	n, err := s.stores.Tasks.MarkOverdue(ctx, now)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to mark overdue tasks",
			slog.String("operation", "AssigneeDashboard"),
			slog.Any("error", err),
		)
		return nil, err
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "marked tasks overdue", slog.Int64("count", n))
	}

	tasks, err := s.stores.Tasks.AssigneeTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.categorize(ctx, tasks, now)
}

// ReviewerDashboard returns the in-review tasks the user manages.
func (s *TaskService) ReviewerDashboard(ctx context.Context, userID string) ([]domain.CategorizedTask, error) {
	tasks, err := s.stores.Tasks.ReviewerTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.categorize(ctx, tasks, s.clock())
}

func (s *TaskService) categorize(ctx context.Context, tasks []domain.CategorizedTask, now time.Time) ([]domain.CategorizedTask, error) {
	for i := range tasks {
		t := &tasks[i]
		t.Category = domain.Categorize(t.Task.RecStatus, t.Task.PlannedEndDate, now)
		if err := s.signer.sign(ctx, t.Attachments); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// SubmitTask records the assignee's completion. With a manager on the
// assignment the task goes to review, otherwise it is completed.
func (s *TaskService) SubmitTask(ctx context.Context, principal domain.Principal, sub domain.Submission) (*domain.TaskOutcome, error) {
	s.logger.InfoContext(ctx, "submitting task", slog.String("task_id", sub.TaskID))

	task, err := currentTask(ctx, s.stores.Tasks, sub.TaskID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errNotAssigned
	}
	if err != nil {
		return nil, err
	}
	assignment, err := s.stores.Assignments.ActiveAssignment(ctx, task.ID, principal.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errNotAssigned
	}
	if err != nil {
		return nil, err
	}
	if task.ProofRequired && sub.Proof == nil {
		return nil, domain.NewValidationError("proof", "proof of completion is required")
	}

	now := s.now()
	outcome := &domain.TaskOutcome{Status: domain.RecCompleted, Message: msgMarkedComplete}
	if assignment.ManagerID != "" {
		outcome = &domain.TaskOutcome{Status: domain.RecInReview, Message: msgSubmittedForReview}
	}

	rc := appctx.Ensure(ctx)

	var proof *domain.Attachment
	if sub.Proof != nil {
		rows, uploads := stageUploads(s.objects, s.newID, []domain.Upload{*sub.Proof}, domain.Attachment{
			TaskID:     task.ID,
			RecSeq:     1,
			DataStatus: domain.DataActive,
			CreatedBy:  principal.UserID,
			CreatedOn:  now,
		})
		proof = &rows[0]
		if err := rc.AddGroup(uploads...); err != nil {
			return nil, err
		}
	}

	var comment *domain.Comment
	if text := strings.TrimSpace(sub.CommentText); text != "" {
		comment = &domain.Comment{
			ID:         s.newID(),
			TaskID:     task.ID,
			RecSeq:     1,
			Text:       text,
			DataStatus: domain.DataActive,
			CreatedBy:  principal.UserID,
			CreatedOn:  now,
		}
	}

	if err := rc.AddAction(domain.Step{
		Name: "complete submission " + task.ID,
		Run: func(ctx context.Context) error {
			return s.stores.Tasks.CompleteSubmission(ctx, assignment, outcome.Status, proof, comment, now)
		},
	}); err != nil {
		return nil, err
	}
	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to submit task",
			slog.String("operation", "SubmitTask"),
			slog.String("task_id", task.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	s.opts.Metrics.TaskTransition(ctx, outcome.Status)
	return outcome, nil
}

// ReviewTask approves (done) or rejects (back to pending) a task in review.
func (s *TaskService) ReviewTask(ctx context.Context, principal domain.Principal, review domain.Review) (*domain.TaskOutcome, error) {
	s.logger.InfoContext(ctx, "reviewing task",
		slog.String("task_id", review.TaskID),
		slog.String("action", string(review.Action)),
	)

	if err := review.Validate(); err != nil {
		return nil, err
	}
	task, err := s.stores.Tasks.ReviewableTask(ctx, review.TaskID, principal.UserID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	outcome := &domain.TaskOutcome{Status: domain.RecDone, Message: msgApproved}
	if review.Action == domain.ActionReject {
		outcome = &domain.TaskOutcome{Status: domain.RecPending, Message: msgRejected}
	}

	var comment *domain.Comment
	if text := strings.TrimSpace(review.Comment); text != "" {
		comment = &domain.Comment{
			ID:         s.newID(),
			TaskID:     task.ID,
			RecSeq:     1,
			Text:       text,
			DataStatus: domain.DataActive,
			CreatedBy:  principal.UserID,
			CreatedOn:  now,
		}
	}

	if err := s.stores.Tasks.ApplyReview(ctx, task.ID, outcome.Status, comment, principal.UserID, now); err != nil {
		s.logger.ErrorContext(ctx, "failed to apply review",
			slog.String("operation", "ReviewTask"),
			slog.String("task_id", task.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	s.opts.Metrics.TaskTransition(ctx, outcome.Status)
	return outcome, nil
}
