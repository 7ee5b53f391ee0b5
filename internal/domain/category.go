package domain

import "time"

// Category is the dashboard bucket a task falls into for its assignee.
type Category string

const (
	CategoryOverdue   Category = "Overdue"
	CategoryCompleted Category = "Completed"
	CategoryInReview  Category = "In Review"
	CategoryDueToday  Category = "Due Today"
	CategoryPending   Category = "Pending"
)

// Categorize buckets a task by its status and planned end date. now is
// interpreted in its own location when deciding whether the task is due today.
func Categorize(status RecStatus, plannedEndDate string, now time.Time) Category {
	switch status {
	case RecOverdue:
		return CategoryOverdue
	case RecCompleted, RecDone:
		return CategoryCompleted
	case RecInReview:
		return CategoryInReview
	}
	if plannedEndDate != "" && plannedEndDate == now.Format(dateLayout) {
		return CategoryDueToday
	}
	return CategoryPending
}
