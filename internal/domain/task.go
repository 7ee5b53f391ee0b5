package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	timeLayoutSecs = "15:04:05"
)

// Task is one version of a task row. A task is identified by ID and RecSeq;
// the current version is the active row with the highest RecSeq.
type Task struct {
	ID               string
	RecSeq           int
	OrgID            string
	RecStatus        RecStatus
	DataStatus       DataStatus
	Title            string
	Description      string
	PlannedStartDate string
	PlannedEndDate   string
	PlannedStartTime string
	PlannedEndTime   string
	PoolTask         bool
	GroupTask        bool
	Mandatory        bool
	ProofRequired    bool
	Important        bool
	ReviewBy         string
	CreatedBy        string
	CreatedOn        time.Time
	ModifiedBy       string
	ModifiedOn       *time.Time
}

// Validate checks the rules for a task that is about to be published.
func (t *Task) Validate() error {
	fields := fieldErrors{}

	if strings.TrimSpace(t.Title) == "" {
		fields["taskTitle"] = msgRequired
	}
	if strings.TrimSpace(t.Description) == "" {
		fields["description"] = msgRequired
	}
	t.validateSchedule(fields)

	return fields.err()
}

// ValidateDraft checks only the fields a draft must get right. Drafts may be
// saved with empty content.
func (t *Task) ValidateDraft() error {
	fields := fieldErrors{}
	t.validateSchedule(fields)
	return fields.err()
}

func (t *Task) validateSchedule(fields fieldErrors) {
	checkDate(fields, "plannedStartDate", t.PlannedStartDate)
	checkDate(fields, "plannedEndDate", t.PlannedEndDate)
	checkClock(fields, "plannedStartTime", t.PlannedStartTime)
	checkClock(fields, "plannedEndTime", t.PlannedEndTime)

	if _, ok := fields["plannedStartDate"]; ok {
		return
	}
	if _, ok := fields["plannedEndDate"]; ok {
		return
	}
	if t.PlannedStartDate != "" && t.PlannedEndDate != "" && t.PlannedEndDate < t.PlannedStartDate {
		fields["plannedEndDate"] = "must not be before plannedStartDate"
	}
}

func checkDate(fields fieldErrors, name, v string) {
	if v == "" {
		return
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		fields[name] = fmt.Sprintf("must be a %s date, got %q", dateLayout, v)
	}
}

func checkClock(fields fieldErrors, name, v string) {
	if v == "" {
		return
	}
	if _, ok := ParseClock(v); !ok {
		fields[name] = fmt.Sprintf("must be HH:MM or HH:MM:SS, got %q", v)
	}
}

// ParseClock parses an HH:MM or HH:MM:SS wall-clock value into an offset
// from midnight.
func ParseClock(v string) (time.Duration, bool) {
	for _, layout := range []string{timeLayoutSecs, timeLayout} {
		if t, err := time.Parse(layout, v); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, true
		}
	}
	return 0, false
}

// TaskSummary is the list projection used by the created-by, assigned-to,
// reviewed-by, and drafts views.
type TaskSummary struct {
	TaskID         string
	Title          string
	DueDate        string
	Status         RecStatus
	Important      bool
	AssignedToName string
	AssignedByName string
	ReviewerName   string
	CreatedOn      time.Time
}

// TaskPage is one page of a task list.
type TaskPage[T any] struct {
	Items []T
	Total int
	Page  int
	Limit int
}

// TaskDetails is the full read model for a single task.
type TaskDetails struct {
	Task          Task
	CreatorName   string
	ReviewerName  string
	AssigneeCount int
	Proofs        []Attachment
	Comments      []Comment
}

// CategorizedTask is a task as seen from an assignee or reviewer dashboard.
type CategorizedTask struct {
	Task         Task
	AssignmentID string
	AssigneeID   string
	Category     Category
	Attachments  []Attachment
}

// NewTask is the input to task creation: the task content, the users it is
// assigned to, and the files attached at creation.
type NewTask struct {
	Task      Task
	Assignees []string
	Files     []Upload
}

// Submission is an assignee's completion of a task.
type Submission struct {
	TaskID      string
	CommentText string
	Proof       *Upload
}

// TaskOutcome reports the status a submission or review moved the task into.
type TaskOutcome struct {
	Status  RecStatus
	Message string
}

// Review is a reviewer's decision on a task in review.
type Review struct {
	TaskID  string
	Action  ReviewAction
	Comment string
}

// Validate checks the review input.
func (r *Review) Validate() error {
	fields := fieldErrors{}
	if !r.Action.IsValid() {
		fields["action"] = fmt.Sprintf("must be approve or reject, got %q", r.Action)
	}
	if r.Action == ActionReject && strings.TrimSpace(r.Comment) == "" {
		fields["comment"] = "is required when rejecting"
	}
	return fields.err()
}
