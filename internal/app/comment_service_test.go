package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/mocks"
)

func newTestCommentService(t *testing.T) (*CommentService, *mocks.MockCommentRepository, *mocks.MockTaskRepository) {
	t.Helper()
	comments := mocks.NewMockCommentRepository(t)
	tasks := mocks.NewMockTaskRepository(t)
	svc := NewCommentService(comments, tasks, discardLogger())
	svc.now = fixedClock
	svc.newID = sequentialIDs()
	return svc, comments, tasks
}

func TestCommentService_AddComment(t *testing.T) {
	t.Parallel()

	t.Run("stamps author and version", func(t *testing.T) {
		t.Parallel()
		svc, comments, tasks := newTestCommentService(t)

		tasks.EXPECT().CurrentTask(mock.Anything, "t1").Return(&domain.Task{ID: "t1"}, nil)
		comments.EXPECT().CreateComment(mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.ID == "id-1" && c.Text == "looks good" && c.CreatedBy == "emp-1" &&
				c.RecSeq == 1 && c.DataStatus == domain.DataActive && c.CreatedOn.Equal(testNow)
		})).Return(nil)

		got, err := svc.AddComment(context.Background(), employee(), domain.Comment{TaskID: "t1", Text: " looks good "})
		if err != nil {
			t.Fatalf("AddComment() error = %v, want nil", err)
		}
		if got.AuthorName != "Eve" || got.ModifiedOn != nil {
			t.Errorf("AddComment() = %+v, want author Eve and no modification time", got)
		}
	})

	t.Run("client-supplied identity is overwritten", func(t *testing.T) {
		t.Parallel()
		svc, comments, tasks := newTestCommentService(t)

		tasks.EXPECT().CurrentTask(mock.Anything, "t1").Return(&domain.Task{ID: "t1"}, nil)
		comments.EXPECT().CreateComment(mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.ID == "id-1" && c.CreatedBy == "mgr-1" && c.RecSeq == 1
		})).Return(nil)

		in := domain.Comment{ID: "forged", TaskID: "t1", Text: "ok", CreatedBy: "someone-else", RecSeq: 7}
		if _, err := svc.AddComment(context.Background(), manager(), in); err != nil {
			t.Fatalf("AddComment() error = %v, want nil", err)
		}
	})

	tests := []struct {
		name    string
		comment domain.Comment
		setup   func(*mocks.MockCommentRepository, *mocks.MockTaskRepository)
		wantErr error
	}{
		{
			name:    "blank text",
			comment: domain.Comment{TaskID: "t1", Text: "   "},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "missing task id",
			comment: domain.Comment{Text: "hello"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unknown task",
			comment: domain.Comment{TaskID: "gone", Text: "hello"},
			setup: func(_ *mocks.MockCommentRepository, tasks *mocks.MockTaskRepository) {
				tasks.EXPECT().CurrentTask(mock.Anything, "gone").Return(nil, domain.ErrNotFound)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "store failure",
			comment: domain.Comment{TaskID: "t1", Text: "hello"},
			setup: func(comments *mocks.MockCommentRepository, tasks *mocks.MockTaskRepository) {
				tasks.EXPECT().CurrentTask(mock.Anything, "t1").Return(&domain.Task{ID: "t1"}, nil)
				comments.EXPECT().CreateComment(mock.Anything, mock.Anything).Return(errDisk)
			},
			wantErr: errDisk,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, comments, tasks := newTestCommentService(t)
			if tt.setup != nil {
				tt.setup(comments, tasks)
			}

			_, err := svc.AddComment(context.Background(), employee(), tt.comment)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddComment() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

var errDisk = errors.New("disk I/O error")

func TestCommentService_Comments(t *testing.T) {
	t.Parallel()
	svc, comments, _ := newTestCommentService(t)

	want := []domain.Comment{{ID: "c1", Text: "first"}, {ID: "c2", Text: "second"}}
	comments.EXPECT().CommentsByTask(mock.Anything, "t1").Return(want, nil)

	got, err := svc.Comments(context.Background(), "t1")
	if err != nil || len(got) != 2 || got[0].ID != "c1" {
		t.Errorf("Comments() = %+v, %v, want c1 then c2", got, err)
	}
}

func TestCommentService_EditComment(t *testing.T) {
	t.Parallel()

	t.Run("trims and stamps modification time", func(t *testing.T) {
		t.Parallel()
		svc, comments, _ := newTestCommentService(t)
		comments.EXPECT().UpdateComment(mock.Anything, "c1", 2, "revised", testNow).
			Return(&domain.Comment{ID: "c1", Text: "revised", RecSeq: 3}, nil)

		got, err := svc.EditComment(context.Background(), "c1", 2, "  revised\n")
		if err != nil || got.RecSeq != 3 {
			t.Errorf("EditComment() = %+v, %v, want recSeq 3", got, err)
		}
	})

	t.Run("blank text", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestCommentService(t)
		if _, err := svc.EditComment(context.Background(), "c1", 1, "  "); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("EditComment(blank) error = %v, want ErrValidation", err)
		}
	})

	t.Run("stale version", func(t *testing.T) {
		t.Parallel()
		svc, comments, _ := newTestCommentService(t)
		comments.EXPECT().UpdateComment(mock.Anything, "c1", 1, "late", testNow).Return(nil, domain.ErrConflict)

		if _, err := svc.EditComment(context.Background(), "c1", 1, "late"); !errors.Is(err, domain.ErrConflict) {
			t.Errorf("EditComment() error = %v, want ErrConflict", err)
		}
	})
}

func TestCommentService_RemoveComment(t *testing.T) {
	t.Parallel()

	for _, storeErr := range []error{nil, domain.ErrNotFound, domain.ErrConflict} {
		name := "ok"
		if storeErr != nil {
			name = storeErr.Error()
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			svc, comments, _ := newTestCommentService(t)
			comments.EXPECT().DeactivateComment(mock.Anything, "c1", 1, testNow).Return(storeErr)

			if err := svc.RemoveComment(context.Background(), "c1", 1); !errors.Is(err, storeErr) {
				t.Errorf("RemoveComment() error = %v, want %v", err, storeErr)
			}
		})
	}
}
