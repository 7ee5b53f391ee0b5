package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/mocks"
)

type handoverMocks struct {
	handovers *mocks.MockHandoverRepository
	tasks     *mocks.MockTaskRepository
	users     *mocks.MockUserRepository
}

func newHandoverService(t *testing.T) (*HandoverService, handoverMocks) {
	t.Helper()
	m := handoverMocks{
		handovers: mocks.NewMockHandoverRepository(t),
		tasks:     mocks.NewMockTaskRepository(t),
		users:     mocks.NewMockUserRepository(t),
	}
	svc := NewHandoverService(m.handovers, m.tasks, m.users, discardLogger())
	svc.now = fixedClock
	svc.newID = sequentialIDs()
	return svc, m
}

func TestHandoverService_RequestHandover(t *testing.T) {
	t.Parallel()

	t.Run("creates one pending request per task", func(t *testing.T) {
		t.Parallel()
		svc, m := newHandoverService(t)
		m.tasks.EXPECT().CurrentTask(mock.Anything, "t1").Return(&domain.Task{ID: "t1", Title: "Dock"}, nil)
		m.tasks.EXPECT().CurrentTask(mock.Anything, "t2").Return(&domain.Task{ID: "t2", Title: "Yard"}, nil)
		m.handovers.EXPECT().CreateHandovers(mock.Anything, mock.MatchedBy(func(hs []domain.Handover) bool {
			return len(hs) == 2 && hs[0].Status == domain.HandoverPending && hs[1].OriginalEmployeeID == "emp-1"
		})).Return(nil)

		got, err := svc.RequestHandover(context.Background(), employee(), []string{"t1", "t2", "t1"})
		if err != nil {
			t.Fatalf("RequestHandover() error = %v, want nil", err)
		}
		if len(got) != 2 || got[1].TaskTitle != "Yard" {
			t.Errorf("RequestHandover() = %+v, want two requests", got)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		svc, _ := newHandoverService(t)
		if _, err := svc.RequestHandover(context.Background(), employee(), []string{" "}); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("RequestHandover() error = %v, want ErrValidation", err)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		t.Parallel()
		svc, m := newHandoverService(t)
		m.tasks.EXPECT().CurrentTask(mock.Anything, "gone").Return(nil, domain.ErrNotFound)
		if _, err := svc.RequestHandover(context.Background(), employee(), []string{"gone"}); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("RequestHandover() error = %v, want ErrNotFound", err)
		}
	})
}

func TestHandoverService_DecideHandover(t *testing.T) {
	t.Parallel()

	pending := func() *domain.Handover {
		return &domain.Handover{ID: "h1", TaskID: "t1", OriginalEmployeeID: "emp-1", Status: domain.HandoverPending}
	}

	t.Run("approve reassigns", func(t *testing.T) {
		t.Parallel()
		svc, m := newHandoverService(t)
		m.handovers.EXPECT().Handover(mock.Anything, "h1").Return(pending(), nil)
		m.users.EXPECT().UserByID(mock.Anything, "emp-2").Return(&domain.User{ID: "emp-2"}, nil)
		m.handovers.EXPECT().ApproveHandover(mock.Anything, mock.MatchedBy(func(h *domain.Handover) bool {
			return h.Status == domain.HandoverApproved && h.NewEmployeeID == "emp-2" &&
				h.ActionedBy == "admin-1" && h.ActionedOn != nil && h.ActionedOn.Equal(testNow)
		})).Return(nil)

		got, err := svc.DecideHandover(context.Background(), admin(), domain.HandoverDecision{
			HandoverID: "h1", Action: domain.ActionApprove, NewEmployeeID: "emp-2",
		})
		if err != nil {
			t.Fatalf("DecideHandover() error = %v, want nil", err)
		}
		if got.Status != domain.HandoverApproved {
			t.Errorf("status = %s, want Approved", got.Status)
		}
	})

	t.Run("reject", func(t *testing.T) {
		t.Parallel()
		svc, m := newHandoverService(t)
		m.handovers.EXPECT().Handover(mock.Anything, "h1").Return(pending(), nil)
		m.handovers.EXPECT().RejectHandover(mock.Anything, mock.Anything).Return(nil)

		got, err := svc.DecideHandover(context.Background(), admin(), domain.HandoverDecision{HandoverID: "h1", Action: domain.ActionReject})
		if err != nil || got.Status != domain.HandoverRejected {
			t.Errorf("DecideHandover() = %+v, %v, want Rejected", got, err)
		}
	})

	t.Run("already decided", func(t *testing.T) {
		t.Parallel()
		svc, m := newHandoverService(t)
		done := pending()
		done.Status = domain.HandoverRejected
		m.handovers.EXPECT().Handover(mock.Anything, "h1").Return(done, nil)

		_, err := svc.DecideHandover(context.Background(), admin(), domain.HandoverDecision{HandoverID: "h1", Action: domain.ActionReject})
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("DecideHandover() error = %v, want ErrConflict", err)
		}
	})

	t.Run("inactive new employee", func(t *testing.T) {
		t.Parallel()
		svc, m := newHandoverService(t)
		m.handovers.EXPECT().Handover(mock.Anything, "h1").Return(pending(), nil)
		m.users.EXPECT().UserByID(mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		_, err := svc.DecideHandover(context.Background(), admin(), domain.HandoverDecision{
			HandoverID: "h1", Action: domain.ActionApprove, NewEmployeeID: "ghost",
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("DecideHandover() error = %v, want ErrValidation", err)
		}
	})

	t.Run("approve needs a new employee", func(t *testing.T) {
		t.Parallel()
		svc, _ := newHandoverService(t)
		_, err := svc.DecideHandover(context.Background(), admin(), domain.HandoverDecision{HandoverID: "h1", Action: domain.ActionApprove})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("DecideHandover() error = %v, want ErrValidation", err)
		}
	})
}
