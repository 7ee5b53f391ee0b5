package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

func TestAssignments_ByUserWithNames(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "creator-1", "Carla", domain.RoleManager)
	seedUser(t, s, "mgr-1", "Mona", domain.RoleManager)
	seedTask(t, s, "t1", "emp-1", domain.RecPending)
	seedTask(t, s, "t2", "emp-1", domain.RecPending)

	q := domain.TaskQuery{Limit: 1}
	if err := q.Normalize(); err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}
	views, total, err := s.AssignmentsByUser(ctx, "emp-1", q)
	if err != nil {
		t.Fatalf("AssignmentsByUser() failed: %v", err)
	}
	if total != 2 || len(views) != 1 {
		t.Fatalf("AssignmentsByUser() = %d rows total %d, want 1 and 2", len(views), total)
	}
	v := views[0]
	if v.AssignedByName != "Carla" || v.ReviewerName != "Mona" || v.TaskTitle == "" {
		t.Errorf("view = %+v, want names Carla/Mona and a title", v)
	}

	q.Status = domain.RecCompleted
	_, total, err = s.AssignmentsByUser(ctx, "emp-1", q)
	if err != nil {
		t.Fatalf("AssignmentsByUser(C) failed: %v", err)
	}
	if total != 0 {
		t.Errorf("completed total = %d, want 0", total)
	}
}

func TestAssignments_UpdatePatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTask(t, s, "t1", "emp-1", domain.RecPending)

	newUser := "emp-2"
	started := domain.RecStarted
	actual := "2026-03-11"
	at := testNow.Add(time.Hour)

	got, err := s.UpdateAssignment(ctx, "as-t1", 1, domain.AssignmentPatch{
		UserID:          &newUser,
		RecStatus:       &started,
		ActualStartDate: &actual,
	}, at)
	if err != nil {
		t.Fatalf("UpdateAssignment() failed: %v", err)
	}
	if got.UserID != "emp-2" || got.RecStatus != domain.RecStarted || got.ActualStartDate != actual {
		t.Errorf("updated = %+v, want emp-2 S %s", got, actual)
	}
	if got.ManagerID != "mgr-1" {
		t.Errorf("ManagerID = %q, want untouched mgr-1", got.ManagerID)
	}
	if got.ModifiedOn == nil || !got.ModifiedOn.Equal(at) {
		t.Errorf("ModifiedOn = %v, want %v", got.ModifiedOn, at)
	}

	if _, err := s.UpdateAssignment(ctx, "as-t1", 2, domain.AssignmentPatch{}, at); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateAssignment(wrong recSeq) err = %v, want ErrNotFound", err)
	}
}

func TestAssignments_Deactivate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTask(t, s, "t1", "emp-1", domain.RecPending)

	if err := s.DeactivateAssignment(ctx, "as-t1", 1, testNow); err != nil {
		t.Fatalf("DeactivateAssignment() failed: %v", err)
	}
	if _, err := s.ActiveAssignment(ctx, "t1", "emp-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ActiveAssignment() err = %v, want ErrNotFound", err)
	}
	if err := s.DeactivateAssignment(ctx, "as-t1", 1, testNow); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second DeactivateAssignment() err = %v, want ErrNotFound", err)
	}

	list, err := s.AssignmentsByTask(ctx, "t1")
	if err != nil {
		t.Fatalf("AssignmentsByTask() failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("active assignments = %d, want 0", len(list))
	}
}

func TestComments_Lifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "emp-1", "Eve", domain.RoleEmployee)

	for i, id := range []string{"c2", "c1"} {
		c := domain.Comment{
			ID: id, TaskID: "t1", RecSeq: 1, Text: "note " + id, DataStatus: domain.DataActive,
			CreatedBy: "emp-1", CreatedOn: testNow.Add(time.Duration(i) * time.Minute),
		}
		if err := s.CreateComment(ctx, &c); err != nil {
			t.Fatalf("CreateComment(%s) failed: %v", id, err)
		}
	}

	list, err := s.CommentsByTask(ctx, "t1")
	if err != nil {
		t.Fatalf("CommentsByTask() failed: %v", err)
	}
	if len(list) != 2 || list[0].ID != "c2" || list[0].AuthorName != "Eve" {
		t.Errorf("CommentsByTask() = %+v, want c2 first with author Eve", list)
	}

	updated, err := s.UpdateComment(ctx, "c1", 1, "edited", testNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("UpdateComment() failed: %v", err)
	}
	if updated.Text != "edited" || updated.ModifiedOn == nil {
		t.Errorf("updated = %+v, want edited text and ModifiedOn", updated)
	}

	if err := s.DeactivateComment(ctx, "c2", 1, testNow); err != nil {
		t.Fatalf("DeactivateComment() failed: %v", err)
	}
	if _, err := s.UpdateComment(ctx, "c2", 1, "x", testNow); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateComment(inactive) err = %v, want ErrNotFound", err)
	}
}

func TestAttachments_Lifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "creator-1", "Carla", domain.RoleManager)

	if err := s.CreateAttachments(ctx, []domain.Attachment{testAttachment("f1", "t1"), testAttachment("f2", "t2")}); err != nil {
		t.Fatalf("CreateAttachments() failed: %v", err)
	}

	got, err := s.Attachment(ctx, "f1", 1)
	if err != nil {
		t.Fatalf("Attachment() failed: %v", err)
	}
	if got.UploaderName != "Carla" || got.UploaderRole != domain.RoleManager {
		t.Errorf("uploader = %q/%q, want Carla/manager", got.UploaderName, got.UploaderRole)
	}

	all, err := s.AllAttachments(ctx)
	if err != nil {
		t.Fatalf("AllAttachments() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("AllAttachments() = %d, want 2", len(all))
	}

	if err := s.DeactivateAttachment(ctx, "f1", 1, testNow); err != nil {
		t.Fatalf("DeactivateAttachment() failed: %v", err)
	}
	if _, err := s.Attachment(ctx, "f1", 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Attachment(inactive) err = %v, want ErrNotFound", err)
	}
	dup := []domain.Attachment{testAttachment("f3", "t1"), testAttachment("f1", "t1")}
	if err := s.CreateAttachments(ctx, dup); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("CreateAttachments(dup) err = %v, want ErrConflict", err)
	}
	byTask, err := s.AttachmentsByTask(ctx, "t1")
	if err != nil {
		t.Fatalf("AttachmentsByTask() failed: %v", err)
	}
	if len(byTask) != 0 {
		t.Errorf("AttachmentsByTask() = %d, want 0", len(byTask))
	}
}
