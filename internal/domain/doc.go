// Package domain holds the entities, value types, and pure rules of the task
// and survey workflows: task versioning statuses, assignee categorization,
// survey answer-type normalization, and the time/geo fence evaluation used to
// gate process events. It also defines the sentinel errors and the Action and
// WriteStager interfaces shared by the application layer.
package domain
