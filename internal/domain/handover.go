package domain

import (
	"fmt"
	"strings"
	"time"
)

// Handover is a request to move a task from its current assignee to another
// employee, pending admin approval.
type Handover struct {
	ID                   string
	TaskID               string
	OriginalEmployeeID   string
	NewEmployeeID        string
	Status               HandoverStatus
	RequestedOn          time.Time
	ActionedBy           string
	ActionedOn           *time.Time
	TaskTitle            string
	OriginalEmployeeName string
}

// HandoverDecision is an admin's action on a pending handover.
type HandoverDecision struct {
	HandoverID    string
	Action        ReviewAction
	NewEmployeeID string
}

// Validate checks the decision input.
func (d *HandoverDecision) Validate() error {
	fields := fieldErrors{}
	if !d.Action.IsValid() {
		fields["action"] = fmt.Sprintf("must be approve or reject, got %q", d.Action)
	}
	if d.Action == ActionApprove && strings.TrimSpace(d.NewEmployeeID) == "" {
		fields["newEmployeeId"] = "is required when approving"
	}
	return fields.err()
}
