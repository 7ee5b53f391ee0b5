// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func mapSlice[T, R any](in []T, fn func(*T) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}

// MessageResponse is the body of operations that only report an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// ToRegisterResponse converts a registered user.
func ToRegisterResponse(u *domain.User) RegisterResponse {
	return RegisterResponse{Message: "User registered successfully", UserID: u.ID}
}

// SessionPayload is the identity embedded in a login response.
type SessionPayload struct {
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	UserName string `json:"username"`
}

// SessionResponse is the body of a successful login.
type SessionResponse struct {
	Token   string         `json:"token"`
	Payload SessionPayload `json:"payload"`
}

// ToSessionResponse converts a domain session.
func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		Token: s.Token,
		Payload: SessionPayload{
			UserID:   s.Principal.UserID,
			Role:     s.Principal.Role.String(),
			UserName: s.Principal.UserName,
		},
	}
}

// UserSummaryResponse is one entry of the employees or managers list.
type UserSummaryResponse struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// ToUserSummaryResponses converts user summaries.
func ToUserSummaryResponses(users []domain.UserSummary) []UserSummaryResponse {
	return mapSlice(users, func(u *domain.UserSummary) UserSummaryResponse {
		return UserSummaryResponse{UserID: u.UserID, UserName: u.UserName}
	})
}

// TaskResponse is a single task version.
type TaskResponse struct {
	TaskID           string  `json:"taskId"`
	RecSeq           int     `json:"recSeq"`
	OrgID            string  `json:"orgId"`
	RecStatus        string  `json:"recStatus"`
	DataStatus       string  `json:"dataStatus"`
	TaskTitle        string  `json:"taskTitle"`
	TaskDescription  string  `json:"taskDescription"`
	PlannedStartDate string  `json:"plannedStartDate,omitempty"`
	PlannedStartTime string  `json:"plannedStartTime,omitempty"`
	PlannedEndDate   string  `json:"plannedEndDate,omitempty"`
	PlannedEndTime   string  `json:"plannedEndTime,omitempty"`
	PoolTask         bool    `json:"poolTask"`
	GroupTask        bool    `json:"groupTask"`
	IsMandatory      bool    `json:"isMandatory"`
	IsRequiresProof  bool    `json:"isRequiresProof"`
	IsImportant      bool    `json:"isImportant"`
	ReviewBy         string  `json:"reviewBy,omitempty"`
	CreatedBy        string  `json:"createdBy"`
	CreatedOn        string  `json:"createdOn"`
	ModifiedBy       string  `json:"modifiedBy,omitempty"`
	ModifiedOn       *string `json:"modifiedOn,omitempty"`
}

// ToTaskResponse converts a domain task.
func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:           t.ID,
		RecSeq:           t.RecSeq,
		OrgID:            t.OrgID,
		RecStatus:        t.RecStatus.String(),
		DataStatus:       string(t.DataStatus),
		TaskTitle:        t.Title,
		TaskDescription:  t.Description,
		PlannedStartDate: t.PlannedStartDate,
		PlannedStartTime: t.PlannedStartTime,
		PlannedEndDate:   t.PlannedEndDate,
		PlannedEndTime:   t.PlannedEndTime,
		PoolTask:         t.PoolTask,
		GroupTask:        t.GroupTask,
		IsMandatory:      t.Mandatory,
		IsRequiresProof:  t.ProofRequired,
		IsImportant:      t.Important,
		ReviewBy:         t.ReviewBy,
		CreatedBy:        t.CreatedBy,
		CreatedOn:        formatTime(t.CreatedOn),
		ModifiedBy:       t.ModifiedBy,
		ModifiedOn:       formatTimePtr(t.ModifiedOn),
	}
}

// TaskPageResponse is one page of tasks.
type TaskPageResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// ToTaskPageResponse converts a page of tasks.
func ToTaskPageResponse(p *domain.TaskPage[domain.Task]) TaskPageResponse {
	return TaskPageResponse{
		Tasks: mapSlice(p.Items, ToTaskResponse),
		Total: p.Total,
		Page:  p.Page,
		Limit: p.Limit,
	}
}

// TaskSummaryResponse is a row of the created-by, assigned-to, reviewed-by,
// and drafts lists.
type TaskSummaryResponse struct {
	TaskID         string `json:"taskId"`
	TaskTitle      string `json:"taskTitle"`
	DueDate        string `json:"dueDate,omitempty"`
	Status         string `json:"status"`
	IsImportant    bool   `json:"isImportant"`
	AssignedToName string `json:"assignedToName,omitempty"`
	AssignedByName string `json:"assignedByName,omitempty"`
	ReviewerName   string `json:"reviewerName,omitempty"`
	CreatedOn      string `json:"createdOn"`
}

// ToTaskSummaryResponse converts a task summary.
func ToTaskSummaryResponse(s *domain.TaskSummary) TaskSummaryResponse {
	return TaskSummaryResponse{
		TaskID:         s.TaskID,
		TaskTitle:      s.Title,
		DueDate:        s.DueDate,
		Status:         s.Status.String(),
		IsImportant:    s.Important,
		AssignedToName: s.AssignedToName,
		AssignedByName: s.AssignedByName,
		ReviewerName:   s.ReviewerName,
		CreatedOn:      formatTime(s.CreatedOn),
	}
}

// ToTaskSummaryResponses converts a list of task summaries.
func ToTaskSummaryResponses(items []domain.TaskSummary) []TaskSummaryResponse {
	return mapSlice(items, ToTaskSummaryResponse)
}

// TaskSummaryPageResponse is one page of task summaries.
type TaskSummaryPageResponse struct {
	Tasks []TaskSummaryResponse `json:"tasks"`
	Total int                   `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

// ToTaskSummaryPageResponse converts a page of task summaries.
func ToTaskSummaryPageResponse(p *domain.TaskPage[domain.TaskSummary]) TaskSummaryPageResponse {
	return TaskSummaryPageResponse{
		Tasks: ToTaskSummaryResponses(p.Items),
		Total: p.Total,
		Page:  p.Page,
		Limit: p.Limit,
	}
}

// TaskDetailsResponse is the full view of one task.
type TaskDetailsResponse struct {
	TaskResponse
	AssignedByName  string               `json:"assignedByName"`
	ReviewerName    string               `json:"reviewerName,omitempty"`
	AssignedToCount int                  `json:"assignedToCount"`
	Proofs          []AttachmentResponse `json:"proofs"`
	Comments        []CommentResponse    `json:"comments"`
}

// ToTaskDetailsResponse converts task details.
func ToTaskDetailsResponse(d *domain.TaskDetails) TaskDetailsResponse {
	return TaskDetailsResponse{
		TaskResponse:    ToTaskResponse(&d.Task),
		AssignedByName:  d.CreatorName,
		ReviewerName:    d.ReviewerName,
		AssignedToCount: d.AssigneeCount,
		Proofs:          ToAttachmentResponses(d.Proofs),
		Comments:        ToCommentResponses(d.Comments),
	}
}

// CategorizedTaskResponse is a dashboard entry.
type CategorizedTaskResponse struct {
	TaskResponse
	AssignmentID string               `json:"assignmentId,omitempty"`
	AssignedTo   string               `json:"assignedTo,omitempty"`
	Category     string               `json:"category"`
	Attachments  []AttachmentResponse `json:"attachments"`
}

// ToCategorizedTaskResponses converts dashboard entries.
func ToCategorizedTaskResponses(items []domain.CategorizedTask) []CategorizedTaskResponse {
	return mapSlice(items, func(c *domain.CategorizedTask) CategorizedTaskResponse {
		return CategorizedTaskResponse{
			TaskResponse: ToTaskResponse(&c.Task),
			AssignmentID: c.AssignmentID,
			AssignedTo:   c.AssigneeID,
			Category:     string(c.Category),
			Attachments:  ToAttachmentResponses(c.Attachments),
		}
	})
}

// TaskOutcomeResponse reports the status a submission or review produced.
type TaskOutcomeResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ToTaskOutcomeResponse converts a task outcome.
func ToTaskOutcomeResponse(o *domain.TaskOutcome) TaskOutcomeResponse {
	return TaskOutcomeResponse{Message: o.Message, Status: o.Status.String()}
}

// AssignmentResponse is a single assignment row.
type AssignmentResponse struct {
	AssignmentID     string  `json:"assignmentId"`
	TaskID           string  `json:"taskId"`
	RecSeq           int     `json:"recSeq"`
	AssignedTo       string  `json:"assignedTo"`
	ManagerID        string  `json:"managerId,omitempty"`
	AssignedBy       string  `json:"assignedBy"`
	PlannedStartDate string  `json:"plannedStartDate,omitempty"`
	PlannedEndDate   string  `json:"plannedEndDate,omitempty"`
	ActualStartDate  string  `json:"actualStartDate,omitempty"`
	ActualEndDate    string  `json:"actualEndDate,omitempty"`
	RecStatus        string  `json:"recStatus"`
	DataStatus       string  `json:"dataStatus"`
	CompletedBy      string  `json:"completedBy,omitempty"`
	CompletedOn      *string `json:"completedOn,omitempty"`
	CreatedOn        string  `json:"createdOn"`
	ModifiedOn       *string `json:"modifiedOn,omitempty"`
}

// ToAssignmentResponse converts a domain assignment.
func ToAssignmentResponse(a *domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:     a.ID,
		TaskID:           a.TaskID,
		RecSeq:           a.RecSeq,
		AssignedTo:       a.UserID,
		ManagerID:        a.ManagerID,
		AssignedBy:       a.AssignedBy,
		PlannedStartDate: a.PlannedStartDate,
		PlannedEndDate:   a.PlannedEndDate,
		ActualStartDate:  a.ActualStartDate,
		ActualEndDate:    a.ActualEndDate,
		RecStatus:        a.RecStatus.String(),
		DataStatus:       string(a.DataStatus),
		CompletedBy:      a.CompletedBy,
		CompletedOn:      formatTimePtr(a.CompletedOn),
		CreatedOn:        formatTime(a.CreatedOn),
		ModifiedOn:       formatTimePtr(a.ModifiedOn),
	}
}

// ToAssignmentResponses converts a list of assignments.
func ToAssignmentResponses(items []domain.Assignment) []AssignmentResponse {
	return mapSlice(items, ToAssignmentResponse)
}

// AssignmentViewResponse is an assignment with the names shown in lists.
type AssignmentViewResponse struct {
	AssignmentResponse
	TaskTitle      string `json:"taskTitle"`
	AssignedByName string `json:"assignedByName,omitempty"`
	ReviewerName   string `json:"reviewerName,omitempty"`
}

// AssignmentPageResponse is one page of a user's assignments.
type AssignmentPageResponse struct {
	Tasks []AssignmentViewResponse `json:"tasks"`
	Total int                      `json:"total"`
	Page  int                      `json:"page"`
	Limit int                      `json:"limit"`
}

// ToAssignmentPageResponse converts a page of assignment views.
func ToAssignmentPageResponse(p *domain.TaskPage[domain.AssignmentView]) AssignmentPageResponse {
	return AssignmentPageResponse{
		Tasks: mapSlice(p.Items, func(v *domain.AssignmentView) AssignmentViewResponse {
			return AssignmentViewResponse{
				AssignmentResponse: ToAssignmentResponse(&v.Assignment),
				TaskTitle:          v.TaskTitle,
				AssignedByName:     v.AssignedByName,
				ReviewerName:       v.ReviewerName,
			}
		}),
		Total: p.Total,
		Page:  p.Page,
		Limit: p.Limit,
	}
}

// CommentResponse is a single comment.
type CommentResponse struct {
	CommentID     string  `json:"commentId"`
	TaskID        string  `json:"taskId"`
	RecSeq        int     `json:"recSeq"`
	CommentText   string  `json:"commentText"`
	UserID        string  `json:"userId"`
	CommenterName string  `json:"commenterName,omitempty"`
	CreatedOn     string  `json:"createdOn"`
	ModifiedOn    *string `json:"modifiedOn,omitempty"`
}

// ToCommentResponse converts a domain comment.
func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID:     c.ID,
		TaskID:        c.TaskID,
		RecSeq:        c.RecSeq,
		CommentText:   c.Text,
		UserID:        c.CreatedBy,
		CommenterName: c.AuthorName,
		CreatedOn:     formatTime(c.CreatedOn),
		ModifiedOn:    formatTimePtr(c.ModifiedOn),
	}
}

// ToCommentResponses converts a list of comments.
func ToCommentResponses(items []domain.Comment) []CommentResponse {
	return mapSlice(items, ToCommentResponse)
}

// AttachmentResponse is a single attachment. URL is a presigned GET link.
type AttachmentResponse struct {
	AttachmentID  string `json:"attachmentId"`
	TaskID        string `json:"taskId"`
	RecSeq        int    `json:"recSeq"`
	FileName      string `json:"fileName"`
	FileKey       string `json:"fileKey"`
	URL           string `json:"url,omitempty"`
	IsCreationDoc bool   `json:"isCreationDoc"`
	CreatedBy     string `json:"createdBy"`
	UploaderName  string `json:"uploaderName,omitempty"`
	UploaderRole  string `json:"uploaderRole,omitempty"`
	CreatedOn     string `json:"createdOn"`
}

// ToAttachmentResponse converts a domain attachment.
func ToAttachmentResponse(a *domain.Attachment) AttachmentResponse {
	return AttachmentResponse{
		AttachmentID:  a.ID,
		TaskID:        a.TaskID,
		RecSeq:        a.RecSeq,
		FileName:      a.FileName,
		FileKey:       a.FileKey,
		URL:           a.SignedURL,
		IsCreationDoc: a.IsCreationDoc,
		CreatedBy:     a.CreatedBy,
		UploaderName:  a.UploaderName,
		UploaderRole:  a.UploaderRole.String(),
		CreatedOn:     formatTime(a.CreatedOn),
	}
}

// ToAttachmentResponses converts a list of attachments.
func ToAttachmentResponses(items []domain.Attachment) []AttachmentResponse {
	return mapSlice(items, ToAttachmentResponse)
}

// HandoverResponse is a single handover request.
type HandoverResponse struct {
	HandoverID           string  `json:"handoverId"`
	TaskID               string  `json:"taskId"`
	TaskTitle            string  `json:"taskTitle,omitempty"`
	OriginalEmployeeID   string  `json:"originalEmployeeId"`
	OriginalEmployeeName string  `json:"originalEmployeeName,omitempty"`
	NewEmployeeID        string  `json:"newEmployeeId,omitempty"`
	RequestStatus        string  `json:"requestStatus"`
	RequestedOn          string  `json:"requestedOn"`
	ActionedBy           string  `json:"actionedBy,omitempty"`
	ActionedOn           *string `json:"actionedOn,omitempty"`
}

// ToHandoverResponses converts a list of handover requests.
func ToHandoverResponses(items []domain.Handover) []HandoverResponse {
	return mapSlice(items, func(h *domain.Handover) HandoverResponse {
		return HandoverResponse{
			HandoverID:           h.ID,
			TaskID:               h.TaskID,
			TaskTitle:            h.TaskTitle,
			OriginalEmployeeID:   h.OriginalEmployeeID,
			OriginalEmployeeName: h.OriginalEmployeeName,
			NewEmployeeID:        h.NewEmployeeID,
			RequestStatus:        string(h.Status),
			RequestedOn:          formatTime(h.RequestedOn),
			ActionedBy:           h.ActionedBy,
			ActionedOn:           formatTimePtr(h.ActionedOn),
		}
	})
}

// HandoverDecisionMessage is the message returned after an admin acts on a
// handover request.
func HandoverDecisionMessage(action domain.ReviewAction) MessageResponse {
	switch action {
	case domain.ActionReject:
		return MessageResponse{Message: "Request has been successfully rejected."}
	default:
		return MessageResponse{Message: "Request has been successfully approved."}
	}
}

// QuestionResponse is one survey question.
type QuestionResponse struct {
	QuestionID     string      `json:"questionId"`
	QuestionNumber int         `json:"questionNumber"`
	QuestionText   string      `json:"questionText"`
	AnswerType     string      `json:"answerType"`
	Options        []OptionDTO `json:"options"`
	IsRequired     bool        `json:"isRequired"`
}

// SurveyResponse is a single survey.
type SurveyResponse struct {
	SurveyID          string             `json:"surveyId"`
	SurveyTitle       string             `json:"surveyTitle"`
	SurveyDescription string             `json:"surveyDescription,omitempty"`
	SurveyType        string             `json:"surveyType,omitempty"`
	StartDate         string             `json:"startDate,omitempty"`
	EndDate           string             `json:"endDate,omitempty"`
	StartTime         string             `json:"startTime,omitempty"`
	EndTime           string             `json:"endTime,omitempty"`
	IsMandatory       bool               `json:"isMandatory"`
	IsAnonymous       bool               `json:"isAnonymous"`
	AddToLibrary      bool               `json:"addToLibrary"`
	RecStatus         string             `json:"recStatus"`
	CreatedBy         string             `json:"createdBy"`
	CreatedOn         string             `json:"createdOn"`
	ModifiedOn        *string            `json:"modifiedOn,omitempty"`
	NumAssignees      int                `json:"numAssignees"`
	Audience          []string           `json:"audience,omitempty"`
	Questions         []QuestionResponse `json:"questions,omitempty"`
}

// ToSurveyResponse converts a domain survey.
func ToSurveyResponse(s *domain.Survey) SurveyResponse {
	return SurveyResponse{
		SurveyID:          s.ID,
		SurveyTitle:       s.Title,
		SurveyDescription: s.Description,
		SurveyType:        s.Type,
		StartDate:         s.StartDate,
		EndDate:           s.EndDate,
		StartTime:         s.StartTime,
		EndTime:           s.EndTime,
		IsMandatory:       s.IsMandatory,
		IsAnonymous:       s.IsAnonymous,
		AddToLibrary:      s.AddToLibrary,
		RecStatus:         s.RecStatus.String(),
		CreatedBy:         s.CreatedBy,
		CreatedOn:         formatTime(s.CreatedOn),
		ModifiedOn:        formatTimePtr(s.ModifiedOn),
		NumAssignees:      s.NumAssignees,
		Audience:          s.Audience,
		Questions: mapSlice(s.Questions, func(q *domain.Question) QuestionResponse {
			opts := make([]OptionDTO, len(q.Options))
			for i, o := range q.Options {
				opts[i] = OptionDTO{OptionText: o}
			}
			return QuestionResponse{
				QuestionID:     q.ID,
				QuestionNumber: q.Number,
				QuestionText:   q.Text,
				AnswerType:     q.AnswerType,
				Options:        opts,
				IsRequired:     q.Required,
			}
		}),
	}
}

// ToSurveyResponses converts a list of surveys.
func ToSurveyResponses(items []domain.Survey) []SurveyResponse {
	return mapSlice(items, ToSurveyResponse)
}

// SurveyCreatedResponse is the body of a successful survey creation.
type SurveyCreatedResponse struct {
	Message  string `json:"message"`
	SurveyID string `json:"surveyId"`
}

// SurveyDraftResponse is the body of a successful draft save.
type SurveyDraftResponse struct {
	Success  bool   `json:"success"`
	SurveyID string `json:"surveyId"`
}

// SurveyPageResponse is one page of a creator's surveys.
type SurveyPageResponse struct {
	Surveys []SurveyResponse `json:"surveys"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

// ToSurveyPageResponse converts a page of surveys.
func ToSurveyPageResponse(p *domain.SurveyPage) SurveyPageResponse {
	return SurveyPageResponse{Surveys: ToSurveyResponses(p.Surveys), Page: p.Page, Limit: p.Limit}
}

// ProcessResponse is an active process.
type ProcessResponse struct {
	ProcessID   string `json:"processId"`
	ProcessName string `json:"processName"`
}

// ToProcessResponses converts processes.
func ToProcessResponses(items []domain.Process) []ProcessResponse {
	return mapSlice(items, func(p *domain.Process) ProcessResponse {
		return ProcessResponse{ProcessID: p.ID, ProcessName: p.Name}
	})
}

// EventResponse is an event visible to the caller's role.
type EventResponse struct {
	EventID   string `json:"eventId"`
	EventName string `json:"eventName"`
	RecStatus string `json:"recStatus"`
	ProcessID string `json:"processId"`
}

// ToEventResponses converts events.
func ToEventResponses(items []domain.Event) []EventResponse {
	return mapSlice(items, func(e *domain.Event) EventResponse {
		return EventResponse{EventID: e.ID, EventName: e.Name, RecStatus: e.RecStatus.String(), ProcessID: e.ProcessID}
	})
}

// AccessResultResponse is the fence verdict for one event.
type AccessResultResponse struct {
	EventID string `json:"eventId"`
	Access  bool   `json:"access"`
	Reason  string `json:"reason,omitempty"`
}

// ToAccessResultResponses converts fence verdicts.
func ToAccessResultResponses(items []domain.AccessResult) []AccessResultResponse {
	return mapSlice(items, func(r *domain.AccessResult) AccessResultResponse {
		return AccessResultResponse{EventID: r.EventID, Access: r.Access, Reason: r.Reason}
	})
}

// HealthCheckResult is one dependency's readiness outcome.
type HealthCheckResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse is the body of the liveness and readiness probes. Checks is
// omitted from liveness.
type HealthResponse struct {
	Status string              `json:"status"`
	Checks []HealthCheckResult `json:"checks,omitempty"`
}
