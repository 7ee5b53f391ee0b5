package domain

import (
	"strings"
	"time"
)

// Comment is a note left on a task by an assignee or reviewer.
type Comment struct {
	ID         string
	TaskID     string
	RecSeq     int
	Text       string
	DataStatus DataStatus
	CreatedBy  string
	CreatedOn  time.Time
	ModifiedOn *time.Time
	AuthorName string
}

// Validate checks that the comment has text.
func (c *Comment) Validate() error {
	fields := fieldErrors{}
	if strings.TrimSpace(c.Text) == "" {
		fields["commentText"] = msgRequired
	}
	if strings.TrimSpace(c.TaskID) == "" {
		fields["taskId"] = msgRequired
	}
	return fields.err()
}
