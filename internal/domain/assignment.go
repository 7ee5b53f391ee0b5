package domain

import (
	"fmt"
	"strings"
	"time"
)

// Assignment links a task to the user who must complete it and the manager
// who reviews the result.
type Assignment struct {
	ID               string
	TaskID           string
	RecSeq           int
	UserID           string
	ManagerID        string
	AssignedBy       string
	PlannedStartDate string
	PlannedEndDate   string
	ActualStartDate  string
	ActualEndDate    string
	RecStatus        RecStatus
	DataStatus       DataStatus
	CompletedBy      string
	CompletedOn      *time.Time
	CreatedOn        time.Time
	ModifiedOn       *time.Time
}

// Validate checks the fields required to create an assignment.
func (a *Assignment) Validate() error {
	fields := fieldErrors{}
	if strings.TrimSpace(a.TaskID) == "" {
		fields["taskId"] = msgRequired
	}
	if strings.TrimSpace(a.UserID) == "" {
		fields["userId"] = msgRequired
	}
	checkDate(fields, "plannedStartDate", a.PlannedStartDate)
	checkDate(fields, "plannedEndDate", a.PlannedEndDate)
	return fields.err()
}

// AssignmentPatch is a partial update of an assignment. Nil fields are left
// unchanged.
type AssignmentPatch struct {
	UserID           *string
	ManagerID        *string
	PlannedStartDate *string
	PlannedEndDate   *string
	ActualStartDate  *string
	ActualEndDate    *string
	RecStatus        *RecStatus
}

// Validate checks any provided fields.
func (p *AssignmentPatch) Validate() error {
	fields := fieldErrors{}
	if p.UserID != nil && strings.TrimSpace(*p.UserID) == "" {
		fields["userId"] = msgMustNotEmpty
	}
	for name, v := range map[string]*string{
		"plannedStartDate": p.PlannedStartDate,
		"plannedEndDate":   p.PlannedEndDate,
		"actualStartDate":  p.ActualStartDate,
		"actualEndDate":    p.ActualEndDate,
	} {
		if v != nil {
			checkDate(fields, name, *v)
		}
	}
	if p.RecStatus != nil && !p.RecStatus.IsAssignable() {
		fields["recStatus"] = fmt.Sprintf("invalid: %q", *p.RecStatus)
	}
	return fields.err()
}

// IsEmpty reports whether the patch changes nothing.
func (p *AssignmentPatch) IsEmpty() bool {
	return p.UserID == nil && p.ManagerID == nil &&
		p.PlannedStartDate == nil && p.PlannedEndDate == nil &&
		p.ActualStartDate == nil && p.ActualEndDate == nil &&
		p.RecStatus == nil
}

// AssignmentView is an assignment joined with its task title and the names
// of the people around it.
type AssignmentView struct {
	Assignment     Assignment
	TaskTitle      string
	AssignedByName string
	ReviewerName   string
}
