package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/mocks"
)

func TestAssignmentService_CreateAssignment(t *testing.T) {
	t.Parallel()

	t.Run("defaults manager to the reviewer", func(t *testing.T) {
		t.Parallel()
		assignments := mocks.NewMockAssignmentRepository(t)
		tasks := mocks.NewMockTaskRepository(t)
		svc := NewAssignmentService(assignments, tasks, discardLogger())
		svc.now = fixedClock
		svc.newID = sequentialIDs()

		tasks.EXPECT().CurrentTask(mock.Anything, "t1").Return(&domain.Task{ID: "t1", ReviewBy: "mgr-9"}, nil)
		assignments.EXPECT().CreateAssignment(mock.Anything, mock.MatchedBy(func(a *domain.Assignment) bool {
			return a.ID == "id-1" && a.ManagerID == "mgr-9" && a.AssignedBy == "mgr-1" &&
				a.RecStatus == domain.RecPending && a.RecSeq == 1
		})).Return(nil)

		if _, err := svc.CreateAssignment(context.Background(), manager(), domain.Assignment{TaskID: "t1", UserID: "emp-1"}); err != nil {
			t.Errorf("CreateAssignment() error = %v, want nil", err)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		t.Parallel()
		tasks := mocks.NewMockTaskRepository(t)
		svc := NewAssignmentService(mocks.NewMockAssignmentRepository(t), tasks, discardLogger())
		tasks.EXPECT().CurrentTask(mock.Anything, "gone").Return(nil, domain.ErrNotFound)

		_, err := svc.CreateAssignment(context.Background(), manager(), domain.Assignment{TaskID: "gone", UserID: "emp-1"})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("CreateAssignment() error = %v, want ErrNotFound", err)
		}
	})
}

func TestAssignmentService_UpdateAssignment(t *testing.T) {
	t.Parallel()
	assignments := mocks.NewMockAssignmentRepository(t)
	svc := NewAssignmentService(assignments, mocks.NewMockTaskRepository(t), discardLogger())
	svc.now = fixedClock

	if _, err := svc.UpdateAssignment(context.Background(), "a1", 1, domain.AssignmentPatch{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("UpdateAssignment(empty) error = %v, want ErrValidation", err)
	}

	patch := domain.AssignmentPatch{RecStatus: ptr(domain.RecStarted)}
	assignments.EXPECT().UpdateAssignment(mock.Anything, "a1", 1, patch, testNow).
		Return(&domain.Assignment{ID: "a1", RecStatus: domain.RecStarted}, nil)
	got, err := svc.UpdateAssignment(context.Background(), "a1", 1, patch)
	if err != nil || got.RecStatus != domain.RecStarted {
		t.Errorf("UpdateAssignment() = %+v, %v, want started", got, err)
	}
}
