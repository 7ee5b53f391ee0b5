package domain

import (
	"fmt"
	"strings"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// TaskSortField names a sortable task column.
type TaskSortField string

const (
	SortCreatedOn        TaskSortField = "createdOn"
	SortModifiedOn       TaskSortField = "modifiedOn"
	SortPlannedEndDate   TaskSortField = "plannedEndDate"
	SortPlannedStartDate TaskSortField = "plannedStartDate"
	SortTaskTitle        TaskSortField = "taskTitle"
)

func (f TaskSortField) isValid() bool {
	switch f {
	case SortCreatedOn, SortModifiedOn, SortPlannedEndDate, SortPlannedStartDate, SortTaskTitle:
		return true
	default:
		return false
	}
}

// TaskQuery holds filter, sort, and paging options for task lists. Zero
// values mean "no filter" or "use the default".
type TaskQuery struct {
	Status    RecStatus
	Search    string
	SortBy    TaskSortField
	SortOrder SortOrder
	Page      int
	Limit     int
}

// Normalize validates the filter and fills in defaults. Sort fields outside
// the whitelist fall back to createdOn so they never reach SQL.
func (q *TaskQuery) Normalize() error {
	if q.Status != "" && !q.Status.IsFilterable() {
		return NewValidationError("status", fmt.Sprintf("invalid: %q", q.Status))
	}
	q.Search = strings.TrimSpace(q.Search)
	if !q.SortBy.isValid() {
		q.SortBy = SortCreatedOn
	}
	switch SortOrder(strings.ToUpper(string(q.SortOrder))) {
	case SortAsc:
		q.SortOrder = SortAsc
	default:
		q.SortOrder = SortDesc
	}
	normalizePaging(&q.Page, &q.Limit, defaultLimit)
	return nil
}

// Offset returns the row offset of the requested page.
func (q *TaskQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// normalizePaging applies page/limit defaults and caps the limit.
func normalizePaging(page, limit *int, fallback int) {
	if *page < 1 {
		*page = defaultPage
	}
	if *limit < 1 {
		*limit = fallback
	}
	if *limit > maxLimit {
		*limit = maxLimit
	}
}
