package domain

// RecStatus is the single-character workflow status stored on task,
// assignment, and survey rows. The same letter can mean different things per
// table: D is a draft on an unpublished task and "done" once a reviewer
// approves it.
type RecStatus string

const (
	RecActive    RecStatus = "A"
	RecPending   RecStatus = "P"
	RecDraft     RecStatus = "D"
	RecDone      RecStatus = "D"
	RecCompleted RecStatus = "C"
	RecInReview  RecStatus = "I"
	RecOverdue   RecStatus = "O"
	RecStarted   RecStatus = "S"
	RecRejected  RecStatus = "R"
)

// IsFilterable reports whether the status may be used to filter task lists.
func (s RecStatus) IsFilterable() bool {
	switch s {
	case RecPending, RecStarted, RecDraft, RecCompleted, RecRejected, RecInReview, RecOverdue:
		return true
	default:
		return false
	}
}

// IsAssignable reports whether the status may be set on an assignment.
func (s RecStatus) IsAssignable() bool {
	switch s {
	case RecPending, RecStarted, RecCompleted, RecInReview, RecOverdue, RecDone:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s RecStatus) String() string {
	return string(s)
}

// DataStatus is the soft-delete flag carried by every row.
type DataStatus string

const (
	DataActive   DataStatus = "A"
	DataInactive DataStatus = "I"
)

// Role is the coarse permission level of a user.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Roles lists the assignable roles in display order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleEmployee}
}

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// HandoverStatus tracks an admin decision on a handover request.
type HandoverStatus string

const (
	HandoverPending  HandoverStatus = "Pending"
	HandoverApproved HandoverStatus = "Approved"
	HandoverRejected HandoverStatus = "Rejected"
)

// ReviewAction is the decision a reviewer or admin takes on a pending item.
type ReviewAction string

const (
	ActionApprove ReviewAction = "approve"
	ActionReject  ReviewAction = "reject"
)

// IsValid returns true if the action is approve or reject.
func (a ReviewAction) IsValid() bool {
	return a == ActionApprove || a == ActionReject
}
