package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

// newTestStore opens a fresh database in a temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, 0)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedUser(t *testing.T, s *Store, id, name string, role domain.Role) domain.User {
	t.Helper()
	u := domain.User{
		ID:           id,
		OrgID:        "org-1",
		RecSeq:       1,
		RecStatus:    domain.RecActive,
		DataStatus:   domain.DataActive,
		Email:        id + "@example.com",
		UserName:     name,
		Role:         role,
		PasswordHash: "hash",
		CreatedOn:    testNow,
	}
	if err := s.CreateUser(context.Background(), &u); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", id, err)
	}
	return u
}

func testTask(id string, status domain.RecStatus) domain.Task {
	return domain.Task{
		ID:               id,
		RecSeq:           1,
		OrgID:            "org-1",
		RecStatus:        status,
		DataStatus:       domain.DataActive,
		Title:            "Inspect dock " + id,
		Description:      "Check the loading dock",
		PlannedStartDate: "2026-03-01",
		PlannedEndDate:   "2026-03-20",
		PlannedEndTime:   "17:00",
		ProofRequired:    true,
		ReviewBy:         "mgr-1",
		CreatedBy:        "creator-1",
		CreatedOn:        testNow,
	}
}

func testAssignment(id, taskID, userID string) domain.Assignment {
	return domain.Assignment{
		ID:         id,
		TaskID:     taskID,
		RecSeq:     1,
		UserID:     userID,
		ManagerID:  "mgr-1",
		AssignedBy: "creator-1",
		RecStatus:  domain.RecPending,
		DataStatus: domain.DataActive,
		CreatedOn:  testNow,
	}
}

func testAttachment(id, taskID string) domain.Attachment {
	return domain.Attachment{
		ID:            id,
		TaskID:        taskID,
		RecSeq:        1,
		FileKey:       id + "-report.pdf",
		FileURL:       "http://localhost:9000/bucket/" + id + "-report.pdf",
		FileName:      "report.pdf",
		IsCreationDoc: true,
		DataStatus:    domain.DataActive,
		CreatedBy:     "creator-1",
		CreatedOn:     testNow,
	}
}

// seedTask creates a task with one assignment to userID.
func seedTask(t *testing.T, s *Store, id, userID string, status domain.RecStatus) domain.Task {
	t.Helper()
	task := testTask(id, status)
	if err := s.CreateTask(context.Background(), &task,
		[]domain.Assignment{testAssignment("as-"+id, id, userID)}, nil); err != nil {
		t.Fatalf("CreateTask(%s) failed: %v", id, err)
	}
	return task
}

func mustExec(t *testing.T, s *Store, query string, args ...any) {
	t.Helper()
	if _, err := s.db.Exec(query, args...); err != nil {
		t.Fatalf("exec %q failed: %v", query, err)
	}
}
