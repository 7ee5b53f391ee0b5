package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

func seedHandover(t *testing.T, s *Store, id, taskID, from string, requested time.Time) {
	t.Helper()
	err := s.CreateHandovers(context.Background(), []domain.Handover{{
		ID: id, TaskID: taskID, OriginalEmployeeID: from,
		Status: domain.HandoverPending, RequestedOn: requested,
	}})
	if err != nil {
		t.Fatalf("CreateHandovers(%s) failed: %v", id, err)
	}
}

func TestHandovers_PendingOldestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "emp-1", "Eve", domain.RoleEmployee)
	seedTask(t, s, "t1", "emp-1", domain.RecPending)
	seedTask(t, s, "t2", "emp-1", domain.RecPending)

	seedHandover(t, s, "h-new", "t2", "emp-1", testNow.Add(time.Hour))
	seedHandover(t, s, "h-old", "t1", "emp-1", testNow)

	pending, err := s.PendingHandovers(ctx)
	if err != nil {
		t.Fatalf("PendingHandovers() failed: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != "h-old" {
		t.Fatalf("PendingHandovers() = %+v, want h-old first", pending)
	}
	if pending[0].OriginalEmployeeName != "Eve" || pending[0].TaskTitle != "Inspect dock t1" {
		t.Errorf("pending[0] = %+v, want Eve and the task title", pending[0])
	}
}

func TestHandovers_CreateIsAtomic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h := domain.Handover{ID: "h1", TaskID: "t1", OriginalEmployeeID: "emp-1", Status: domain.HandoverPending, RequestedOn: testNow}
	err := s.CreateHandovers(ctx, []domain.Handover{h, h})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("CreateHandovers(dup) err = %v, want ErrConflict", err)
	}
	if _, err := s.Handover(ctx, "h1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Handover() after rollback err = %v, want ErrNotFound", err)
	}
}

func TestHandovers_ApproveReassigns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTask(t, s, "t1", "emp-1", domain.RecPending)
	seedHandover(t, s, "h1", "t1", "emp-1", testNow)

	h, err := s.Handover(ctx, "h1")
	if err != nil {
		t.Fatalf("Handover() failed: %v", err)
	}
	at := testNow.Add(time.Hour)
	h.Status = domain.HandoverApproved
	h.NewEmployeeID = "emp-2"
	h.ActionedBy = "admin-1"
	h.ActionedOn = &at

	if err := s.ApproveHandover(ctx, h); err != nil {
		t.Fatalf("ApproveHandover() failed: %v", err)
	}

	if _, err := s.ActiveAssignment(ctx, "t1", "emp-2"); err != nil {
		t.Errorf("ActiveAssignment(new employee) err = %v, want nil", err)
	}
	if _, err := s.ActiveAssignment(ctx, "t1", "emp-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ActiveAssignment(original) err = %v, want ErrNotFound", err)
	}

	got, err := s.Handover(ctx, "h1")
	if err != nil {
		t.Fatalf("Handover() failed: %v", err)
	}
	if got.Status != domain.HandoverApproved || got.NewEmployeeID != "emp-2" || got.ActionedBy != "admin-1" {
		t.Errorf("handover = %+v, want approved by admin-1 to emp-2", got)
	}

	if err := s.RejectHandover(ctx, h); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("RejectHandover(decided) err = %v, want ErrConflict", err)
	}
}

func TestHandovers_ApproveRollsBackWhenNotPending(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTask(t, s, "t1", "emp-1", domain.RecPending)
	seedHandover(t, s, "h1", "t1", "emp-1", testNow)
	mustExec(t, s, "UPDATE task_handovers SET request_status = 'Rejected' WHERE handover_id = 'h1'")

	h := &domain.Handover{
		ID: "h1", TaskID: "t1", OriginalEmployeeID: "emp-1", NewEmployeeID: "emp-2",
		Status: domain.HandoverApproved, ActionedBy: "admin-1", ActionedOn: &testNow,
	}
	if err := s.ApproveHandover(ctx, h); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("ApproveHandover() err = %v, want ErrConflict", err)
	}
	if _, err := s.ActiveAssignment(ctx, "t1", "emp-1"); err != nil {
		t.Errorf("assignment moved despite rollback: %v", err)
	}
}
