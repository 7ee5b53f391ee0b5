package ports

import (
	"context"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// AuthService registers users, issues tokens, and resolves bearer tokens to
// principals.
type AuthService interface {
	// Register creates a user. Returns domain.ErrConflict if the email is taken.
	Register(ctx context.Context, reg domain.Registration) (*domain.User, error)
	// Login returns a session token. Returns domain.ErrUnauthorized on bad credentials.
	Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
	UsersByRole(ctx context.Context, role domain.Role) ([]domain.UserSummary, error)
}

// TaskService is the task lifecycle: creation, drafts, listings, dashboards,
// submission, and review.
type TaskService interface {
	CreateTask(ctx context.Context, principal domain.Principal, input domain.NewTask) (*domain.Task, error)
	SaveDraft(ctx context.Context, principal domain.Principal, draft domain.Task) (*domain.Task, error)
	PublishDraft(ctx context.Context, principal domain.Principal, taskID string, update domain.Task) (*domain.Task, error)
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context, query domain.TaskQuery) (*domain.TaskPage[domain.Task], error)
	DeleteTask(ctx context.Context, principal domain.Principal, taskID string) error
	Drafts(ctx context.Context, userID string) ([]domain.TaskSummary, error)
	TasksCreatedBy(ctx context.Context, userID string, query domain.TaskQuery) (*domain.TaskPage[domain.TaskSummary], error)
	TasksAssignedTo(ctx context.Context, userID string, query domain.TaskQuery) (*domain.TaskPage[domain.TaskSummary], error)
	TasksReviewedBy(ctx context.Context, userID string, query domain.TaskQuery) (*domain.TaskPage[domain.TaskSummary], error)
	// TaskDetails returns the task with proofs (carrying presigned URLs) and comments.
	TaskDetails(ctx context.Context, taskID string) (*domain.TaskDetails, error)
	// AssigneeDashboard marks overdue tasks and returns the user's tasks by category.
	AssigneeDashboard(ctx context.Context, userID string) ([]domain.CategorizedTask, error)
	ReviewerDashboard(ctx context.Context, userID string) ([]domain.CategorizedTask, error)
	SubmitTask(ctx context.Context, principal domain.Principal, submission domain.Submission) (*domain.TaskOutcome, error)
	ReviewTask(ctx context.Context, principal domain.Principal, review domain.Review) (*domain.TaskOutcome, error)
}

// AssignmentService manages the assignments of a task.
type AssignmentService interface {
	CreateAssignment(ctx context.Context, principal domain.Principal, assignment domain.Assignment) (*domain.Assignment, error)
	AssignmentsByTask(ctx context.Context, taskID string) ([]domain.Assignment, error)
	AssignmentsByUser(ctx context.Context, userID string, query domain.TaskQuery) (*domain.TaskPage[domain.AssignmentView], error)
	UpdateAssignment(ctx context.Context, id string, recSeq int, patch domain.AssignmentPatch) (*domain.Assignment, error)
	RemoveAssignment(ctx context.Context, id string, recSeq int) error
}

// CommentService manages task comments.
type CommentService interface {
	AddComment(ctx context.Context, principal domain.Principal, comment domain.Comment) (*domain.Comment, error)
	Comments(ctx context.Context, taskID string) ([]domain.Comment, error)
	EditComment(ctx context.Context, id string, recSeq int, text string) (*domain.Comment, error)
	RemoveComment(ctx context.Context, id string, recSeq int) error
}

// AttachmentService stores task files and their metadata. Returned
// attachments carry a presigned URL.
type AttachmentService interface {
	// Upload stores the files and records them together. A failed insert
	// deletes the stored objects.
	Upload(ctx context.Context, principal domain.Principal, taskID string, files []domain.Upload) ([]domain.Attachment, error)
	AttachmentsByTask(ctx context.Context, taskID string) ([]domain.Attachment, error)
	AllAttachments(ctx context.Context) ([]domain.Attachment, error)
	GetAttachment(ctx context.Context, id string, recSeq int) (*domain.Attachment, error)
	RemoveAttachment(ctx context.Context, id string, recSeq int) error
}

// HandoverService runs the reassignment workflow.
type HandoverService interface {
	RequestHandover(ctx context.Context, principal domain.Principal, taskIDs []string) ([]domain.Handover, error)
	PendingHandovers(ctx context.Context) ([]domain.Handover, error)
	DecideHandover(ctx context.Context, principal domain.Principal, decision domain.HandoverDecision) (*domain.Handover, error)
}

// SurveyService manages surveys and their responses.
type SurveyService interface {
	CreateSurvey(ctx context.Context, principal domain.Principal, survey domain.Survey) (*domain.Survey, error)
	SaveSurveyDraft(ctx context.Context, principal domain.Principal, survey domain.Survey) (*domain.Survey, error)
	SurveysForUser(ctx context.Context, userID string) ([]domain.Survey, error)
	SurveysByCreator(ctx context.Context, userID string, page int, limit int) (*domain.SurveyPage, error)
	SurveyDrafts(ctx context.Context, userID string) ([]domain.Survey, error)
	GetSurvey(ctx context.Context, surveyID string) (*domain.Survey, error)
	SubmitSurvey(ctx context.Context, principal domain.Principal, response domain.SurveyResponse) error
}

// EventService serves process and event lookups and the fence check.
type EventService interface {
	ActiveProcesses(ctx context.Context) ([]domain.Process, error)
	// EventsForRole returns domain.ErrForbidden for an unknown role.
	EventsForRole(ctx context.Context, role domain.Role) ([]domain.Event, error)
	VerifyAccess(ctx context.Context, principal domain.Principal, check domain.AccessCheck) ([]domain.AccessResult, error)
}
