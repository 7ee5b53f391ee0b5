package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTaskQuery_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   TaskQuery
		want TaskQuery
	}{
		{
			name: "defaults",
			in:   TaskQuery{},
			want: TaskQuery{SortBy: SortCreatedOn, SortOrder: SortDesc, Page: 1, Limit: 10},
		},
		{
			name: "unknown sort field falls back",
			in:   TaskQuery{SortBy: "taskTitle; DROP TABLE tasks", SortOrder: "asc", Page: 3, Limit: 20},
			want: TaskQuery{SortBy: SortCreatedOn, SortOrder: SortAsc, Page: 3, Limit: 20},
		},
		{
			name: "limit is capped and search trimmed",
			in:   TaskQuery{Status: RecPending, Search: "  audit ", SortBy: SortTaskTitle, Limit: 1000},
			want: TaskQuery{Status: RecPending, Search: "audit", SortBy: SortTaskTitle, SortOrder: SortDesc, Page: 1, Limit: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.in
			if err := got.Normalize(); err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTaskQuery_Normalize_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	q := TaskQuery{Status: "X"}
	if err := q.Normalize(); !errors.Is(err, ErrValidation) {
		t.Errorf("Normalize() error = %v, want ErrValidation", err)
	}
}

func TestTaskQuery_Offset(t *testing.T) {
	t.Parallel()

	q := TaskQuery{Page: 3, Limit: 10}
	if got := q.Offset(); got != 20 {
		t.Errorf("Offset() = %d, want 20", got)
	}
}

func TestNormalizeSurveyPaging(t *testing.T) {
	t.Parallel()

	page, limit := NormalizeSurveyPaging(0, 0)
	if page != 1 || limit != 5 {
		t.Errorf("NormalizeSurveyPaging(0, 0) = (%d, %d), want (1, 5)", page, limit)
	}
}
