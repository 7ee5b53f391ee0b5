package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

const msgRequired = "is required"

// FlexBool decodes a JSON boolean or the strings "true"/"false". Multipart
// clients send every field as a string.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*b = false
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = FlexBool(parseFormBool(s))
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("flexbool: %w", err)
	}
	*b = FlexBool(v)
	return nil
}

func parseFormBool(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && v
}

// RegisterRequest is the JSON body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	UserName string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ToDomain converts the request into a domain registration.
func (r *RegisterRequest) ToDomain() domain.Registration {
	return domain.Registration{
		Email:    r.Email,
		UserName: r.UserName,
		Password: r.Password,
		Role:     domain.Role(strings.ToLower(strings.TrimSpace(r.Role))),
	}
}

// LoginRequest is the JSON body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToDomain converts the request into domain credentials.
func (r *LoginRequest) ToDomain() domain.Credentials {
	return domain.Credentials{Email: strings.TrimSpace(r.Email), Password: r.Password}
}

// TaskRequest carries task content for creation, drafts, and publishing.
type TaskRequest struct {
	TaskID           string   `json:"taskId,omitempty"`
	TaskTitle        string   `json:"taskTitle"`
	TaskDescription  string   `json:"taskDescription"`
	PlannedStartDate string   `json:"plannedStartDate,omitempty"`
	PlannedStartTime string   `json:"plannedStartTime,omitempty"`
	PlannedEndDate   string   `json:"plannedEndDate,omitempty"`
	PlannedEndTime   string   `json:"plannedEndTime,omitempty"`
	PoolTask         FlexBool `json:"poolTask,omitempty"`
	GroupTask        FlexBool `json:"groupTask,omitempty"`
	IsMandatory      FlexBool `json:"isMandatory,omitempty"`
	IsRequiresProof  FlexBool `json:"isRequiresProof,omitempty"`
	IsImportant      FlexBool `json:"isImportant,omitempty"`
	ReviewerID       string   `json:"reviewerId,omitempty"`
}

// TaskRequestFromForm reads task fields from a multipart form.
func TaskRequestFromForm(v url.Values) TaskRequest {
	return TaskRequest{
		TaskID:           strings.TrimSpace(v.Get("taskId")),
		TaskTitle:        v.Get("taskTitle"),
		TaskDescription:  v.Get("taskDescription"),
		PlannedStartDate: strings.TrimSpace(v.Get("plannedStartDate")),
		PlannedStartTime: strings.TrimSpace(v.Get("plannedStartTime")),
		PlannedEndDate:   strings.TrimSpace(v.Get("plannedEndDate")),
		PlannedEndTime:   strings.TrimSpace(v.Get("plannedEndTime")),
		PoolTask:         FlexBool(parseFormBool(v.Get("poolTask"))),
		GroupTask:        FlexBool(parseFormBool(v.Get("groupTask"))),
		IsMandatory:      FlexBool(parseFormBool(v.Get("isMandatory"))),
		IsRequiresProof:  FlexBool(parseFormBool(v.Get("isRequiresProof"))),
		IsImportant:      FlexBool(parseFormBool(v.Get("isImportant"))),
		ReviewerID:       strings.TrimSpace(v.Get("reviewerId")),
	}
}

// ToDomain converts the request into a domain task. Identity, status, and
// audit fields are set by the service.
func (r *TaskRequest) ToDomain() domain.Task {
	return domain.Task{
		ID:               strings.TrimSpace(r.TaskID),
		Title:            r.TaskTitle,
		Description:      r.TaskDescription,
		PlannedStartDate: r.PlannedStartDate,
		PlannedEndDate:   r.PlannedEndDate,
		PlannedStartTime: r.PlannedStartTime,
		PlannedEndTime:   r.PlannedEndTime,
		PoolTask:         bool(r.PoolTask),
		GroupTask:        bool(r.GroupTask),
		Mandatory:        bool(r.IsMandatory),
		ProofRequired:    bool(r.IsRequiresProof),
		Important:        bool(r.IsImportant),
		ReviewBy:         r.ReviewerID,
	}
}

type assigneeRef struct {
	UserID string `json:"userId"`
}

// ParseAssignees decodes the assignedTo form field, a JSON array of
// {userId} objects. An empty field means no assignees.
func ParseAssignees(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var refs []assigneeRef
	if err := json.Unmarshal([]byte(raw), &refs); err != nil {
		return nil, domain.NewValidationError("assignedTo", `must be a JSON array of {"userId": ...}`)
	}
	ids := make([]string, 0, len(refs))
	for i, ref := range refs {
		id := strings.TrimSpace(ref.UserID)
		if id == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("assignedTo[%d].userId", i), msgRequired)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ReviewRequest is the JSON body of POST /tasks/{taskId}/review.
type ReviewRequest struct {
	Action  string `json:"action"`
	Comment string `json:"comment,omitempty"`
}

// HandoverRequest is the JSON body of POST /tasks/request-handover.
type HandoverRequest struct {
	TaskIDs []string `json:"taskIds"`
}

// HandoverActionRequest is the JSON body of the handover decision route.
type HandoverActionRequest struct {
	Action        string `json:"action"`
	NewEmployeeID string `json:"newEmployeeId,omitempty"`
}

// AssignmentRequest is the JSON body for creating an assignment.
type AssignmentRequest struct {
	UserID           string `json:"userId"`
	ManagerID        string `json:"managerId,omitempty"`
	PlannedStartDate string `json:"plannedStartDate,omitempty"`
	PlannedEndDate   string `json:"plannedEndDate,omitempty"`
}

// ToDomain converts the request into an assignment on taskID.
func (r *AssignmentRequest) ToDomain(taskID string) domain.Assignment {
	return domain.Assignment{
		TaskID:           taskID,
		UserID:           strings.TrimSpace(r.UserID),
		ManagerID:        strings.TrimSpace(r.ManagerID),
		PlannedStartDate: r.PlannedStartDate,
		PlannedEndDate:   r.PlannedEndDate,
	}
}

// AssignmentPatchRequest is the JSON body for PATCH on an assignment.
// A nil field is left unchanged.
type AssignmentPatchRequest struct {
	UserID           *string `json:"userId,omitempty"`
	ManagerID        *string `json:"managerId,omitempty"`
	PlannedStartDate *string `json:"plannedStartDate,omitempty"`
	PlannedEndDate   *string `json:"plannedEndDate,omitempty"`
	ActualStartDate  *string `json:"actualStartDate,omitempty"`
	ActualEndDate    *string `json:"actualEndDate,omitempty"`
	RecStatus        *string `json:"recStatus,omitempty"`
}

// ToDomain converts the request into a domain patch.
func (r *AssignmentPatchRequest) ToDomain() domain.AssignmentPatch {
	p := domain.AssignmentPatch{
		UserID:           r.UserID,
		ManagerID:        r.ManagerID,
		PlannedStartDate: r.PlannedStartDate,
		PlannedEndDate:   r.PlannedEndDate,
		ActualStartDate:  r.ActualStartDate,
		ActualEndDate:    r.ActualEndDate,
	}
	if r.RecStatus != nil {
		s := domain.RecStatus(strings.ToUpper(strings.TrimSpace(*r.RecStatus)))
		p.RecStatus = &s
	}
	return p
}

// CommentRequest is the JSON body for creating or editing a comment.
type CommentRequest struct {
	CommentText string `json:"commentText"`
}

// OptionDTO is one answer option of a survey question.
type OptionDTO struct {
	OptionText string `json:"optionText"`
}

// QuestionRequest is one question of a survey body.
type QuestionRequest struct {
	QuestionNumber int         `json:"questionNumber,omitempty"`
	QuestionText   string      `json:"questionText"`
	AnswerType     string      `json:"answerType"`
	Options        []OptionDTO `json:"options,omitempty"`
	IsRequired     FlexBool    `json:"isRequired,omitempty"`
}

// SurveyRequest is the JSON body of POST /survey/create and save-draft.
type SurveyRequest struct {
	SurveyID          string            `json:"surveyId,omitempty"`
	SurveyTitle       string            `json:"surveyTitle"`
	SurveyDescription string            `json:"surveyDescription,omitempty"`
	SurveyType        string            `json:"surveyType,omitempty"`
	StartDate         string            `json:"startDate,omitempty"`
	EndDate           string            `json:"endDate,omitempty"`
	StartTime         string            `json:"startTime,omitempty"`
	EndTime           string            `json:"endTime,omitempty"`
	IsMandatory       FlexBool          `json:"isMandatory,omitempty"`
	IsAnonymous       FlexBool          `json:"isAnonymous,omitempty"`
	AddToLibrary      FlexBool          `json:"addToLibrary,omitempty"`
	Audience          []string          `json:"audience,omitempty"`
	Questions         []QuestionRequest `json:"questions,omitempty"`
}

// ToDomain converts the request into a domain survey. Blank dates and times
// stay empty so they are stored as null.
func (r *SurveyRequest) ToDomain() domain.Survey {
	s := domain.Survey{
		ID:           strings.TrimSpace(r.SurveyID),
		Title:        r.SurveyTitle,
		Description:  r.SurveyDescription,
		Type:         r.SurveyType,
		StartDate:    strings.TrimSpace(r.StartDate),
		EndDate:      strings.TrimSpace(r.EndDate),
		StartTime:    strings.TrimSpace(r.StartTime),
		EndTime:      strings.TrimSpace(r.EndTime),
		IsMandatory:  bool(r.IsMandatory),
		IsAnonymous:  bool(r.IsAnonymous),
		AddToLibrary: bool(r.AddToLibrary),
	}
	for _, id := range r.Audience {
		if id = strings.TrimSpace(id); id != "" {
			s.Audience = append(s.Audience, id)
		}
	}
	for _, q := range r.Questions {
		question := domain.Question{
			Number:     q.QuestionNumber,
			Text:       q.QuestionText,
			AnswerType: q.AnswerType,
			Required:   bool(q.IsRequired),
		}
		for _, o := range q.Options {
			question.Options = append(question.Options, o.OptionText)
		}
		s.Questions = append(s.Questions, question)
	}
	return s
}

// AnswerRequest is one answer of a survey submission. Multi-valued answers
// arrive as a JSON string.
type AnswerRequest struct {
	QuestionID string `json:"questionId"`
	AnswerText string `json:"answerText"`
}

// SurveySubmitRequest is the JSON body of POST /survey/submit.
type SurveySubmitRequest struct {
	SurveyID string          `json:"surveyId"`
	Answers  []AnswerRequest `json:"answers"`
}

// Validate checks that a survey id is present.
func (r *SurveySubmitRequest) Validate() error {
	if strings.TrimSpace(r.SurveyID) == "" {
		return domain.NewValidationError("surveyId", msgRequired)
	}
	return nil
}

// ToDomain converts the request into a domain survey response.
func (r *SurveySubmitRequest) ToDomain() domain.SurveyResponse {
	resp := domain.SurveyResponse{SurveyID: strings.TrimSpace(r.SurveyID)}
	for _, a := range r.Answers {
		resp.Answers = append(resp.Answers, domain.Answer{
			QuestionID: strings.TrimSpace(a.QuestionID),
			AnswerText: a.AnswerText,
		})
	}
	return resp
}

// VerifyAccessRequest is the JSON body of POST /events/bulk-verify-access.
type VerifyAccessRequest struct {
	EventIDs      []string `json:"eventIds"`
	UserLatitude  *float64 `json:"userLatitude,omitempty"`
	UserLongitude *float64 `json:"userLongitude,omitempty"`
}

// Validate checks that provided coordinates are in range.
func (r *VerifyAccessRequest) Validate() error {
	fields := make(map[string]string)
	if r.UserLatitude != nil && (*r.UserLatitude < -90 || *r.UserLatitude > 90) {
		fields["userLatitude"] = "must be between -90 and 90"
	}
	if r.UserLongitude != nil && (*r.UserLongitude < -180 || *r.UserLongitude > 180) {
		fields["userLongitude"] = "must be between -180 and 180"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request into a domain access check.
func (r *VerifyAccessRequest) ToDomain() domain.AccessCheck {
	return domain.AccessCheck{
		EventIDs: r.EventIDs,
		Location: domain.Location{Latitude: r.UserLatitude, Longitude: r.UserLongitude},
	}
}
