package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// UserRepository persists user credentials and profiles.
type UserRepository interface {
	// CreateUser inserts a user. Returns domain.ErrConflict if an active user
	// with the same email exists.
	CreateUser(ctx context.Context, user *domain.User) error
	// UserByEmail returns the active user with the given email or domain.ErrNotFound.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByID returns the active user with the given ID or domain.ErrNotFound.
	UserByID(ctx context.Context, id string) (*domain.User, error)
	UsersByRole(ctx context.Context, role domain.Role) ([]domain.UserSummary, error)
}

// TaskRepository persists task versions and the task-level workflows that
// span several tables. Multi-table writes run in a single transaction.
type TaskRepository interface {
	// CreateTask inserts the task with its assignments and creation attachments.
	CreateTask(ctx context.Context, task *domain.Task, assignments []domain.Assignment, attachments []domain.Attachment) error
	// SaveDraft inserts a draft version. Returns domain.ErrConflict if the ID is taken.
	SaveDraft(ctx context.Context, task *domain.Task) error
	// PublishDraft retires the active draft and inserts the next version as pending.
	PublishDraft(ctx context.Context, taskID string, update *domain.Task, by string, at time.Time) (*domain.Task, error)
	// CurrentTask returns the active version with the highest recSeq.
	CurrentTask(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context, query domain.TaskQuery) ([]domain.Task, int, error)
	// DeactivateTask soft-deletes every version of the task.
	DeactivateTask(ctx context.Context, taskID string, by string, at time.Time) error
	DraftsByCreator(ctx context.Context, userID string) ([]domain.TaskSummary, error)
	TasksCreatedBy(ctx context.Context, userID string, query domain.TaskQuery) ([]domain.TaskSummary, int, error)
	TasksAssignedTo(ctx context.Context, userID string, query domain.TaskQuery) ([]domain.TaskSummary, int, error)
	TasksReviewedBy(ctx context.Context, userID string, query domain.TaskQuery) ([]domain.TaskSummary, int, error)
	// TaskDetails returns the task header: creator, reviewer, and assignee count.
	TaskDetails(ctx context.Context, taskID string) (*domain.TaskDetails, error)
	// MarkOverdue moves pending tasks whose planned end is before now to overdue.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
	AssigneeTasks(ctx context.Context, userID string) ([]domain.CategorizedTask, error)
	ReviewerTasks(ctx context.Context, userID string) ([]domain.CategorizedTask, error)
	// ReviewableTask returns the current in-review task whose assignment is managed by reviewerID.
	ReviewableTask(ctx context.Context, taskID string, reviewerID string) (*domain.Task, error)
	// CompleteSubmission records proof and comment and moves the task and assignment to status.
	CompleteSubmission(ctx context.Context, assignment *domain.Assignment, status domain.RecStatus, proof *domain.Attachment, comment *domain.Comment, at time.Time) error
	// ApplyReview sets the task to status and records the reviewer's comment, if any.
	ApplyReview(ctx context.Context, taskID string, status domain.RecStatus, comment *domain.Comment, by string, at time.Time) error
}

// AssignmentRepository persists task assignments.
type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, assignment *domain.Assignment) error
	AssignmentsByTask(ctx context.Context, taskID string) ([]domain.Assignment, error)
	AssignmentsByUser(ctx context.Context, userID string, query domain.TaskQuery) ([]domain.AssignmentView, int, error)
	// ActiveAssignment returns the user's active assignment on the task or domain.ErrNotFound.
	ActiveAssignment(ctx context.Context, taskID string, userID string) (*domain.Assignment, error)
	UpdateAssignment(ctx context.Context, id string, recSeq int, patch domain.AssignmentPatch, at time.Time) (*domain.Assignment, error)
	DeactivateAssignment(ctx context.Context, id string, recSeq int, at time.Time) error
}

// CommentRepository persists task comments.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *domain.Comment) error
	CommentsByTask(ctx context.Context, taskID string) ([]domain.Comment, error)
	UpdateComment(ctx context.Context, id string, recSeq int, text string, at time.Time) (*domain.Comment, error)
	DeactivateComment(ctx context.Context, id string, recSeq int, at time.Time) error
}

// AttachmentRepository persists attachment metadata. File bytes live in the
// object store.
type AttachmentRepository interface {
	// CreateAttachments inserts all rows in one transaction.
	CreateAttachments(ctx context.Context, attachments []domain.Attachment) error
	AttachmentsByTask(ctx context.Context, taskID string) ([]domain.Attachment, error)
	AllAttachments(ctx context.Context) ([]domain.Attachment, error)
	Attachment(ctx context.Context, id string, recSeq int) (*domain.Attachment, error)
	DeactivateAttachment(ctx context.Context, id string, recSeq int, at time.Time) error
}

// HandoverRepository persists handover requests and applies approvals.
type HandoverRepository interface {
	CreateHandovers(ctx context.Context, handovers []domain.Handover) error
	PendingHandovers(ctx context.Context) ([]domain.Handover, error)
	Handover(ctx context.Context, id string) (*domain.Handover, error)
	// ApproveHandover moves the original employee's assignments to the new
	// employee and records the decision.
	ApproveHandover(ctx context.Context, handover *domain.Handover) error
	RejectHandover(ctx context.Context, handover *domain.Handover) error
}

// SurveyRepository persists surveys, their audience, questions, and answers.
type SurveyRepository interface {
	// CreateSurvey inserts a published survey with its audience and questions.
	CreateSurvey(ctx context.Context, survey *domain.Survey) error
	// SaveSurveyDraft upserts a draft. Audience and questions are replaced when non-nil.
	SaveSurveyDraft(ctx context.Context, survey *domain.Survey) error
	// Survey returns a published or draft survey with questions and audience.
	Survey(ctx context.Context, id string) (*domain.Survey, error)
	SurveysForUser(ctx context.Context, userID string) ([]domain.Survey, error)
	SurveysByCreator(ctx context.Context, userID string, page int, limit int) ([]domain.Survey, error)
	SurveyDrafts(ctx context.Context, userID string) ([]domain.Survey, error)
	// SaveAnswers stores a response. Returns domain.ErrConflict if the user already responded.
	SaveAnswers(ctx context.Context, surveyID string, userID string, answers []domain.Answer, at time.Time) error
}

// EventRepository reads process and event lookup data and fence rules.
type EventRepository interface {
	ActiveProcesses(ctx context.Context) ([]domain.Process, error)
	EventsForRole(ctx context.Context, role domain.Role) ([]domain.Event, error)
	// FenceProfile returns the user's shift and location or domain.ErrNotFound.
	FenceProfile(ctx context.Context, userID string) (*domain.FenceProfile, error)
	AccessRules(ctx context.Context, eventIDs []string) ([]domain.AccessRule, error)
}
