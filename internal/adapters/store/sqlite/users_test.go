package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

func TestUsers_CreateAndLookup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	want := seedUser(t, s, "u1", "Ann", domain.RoleManager)

	byEmail, err := s.UserByEmail(ctx, "u1@example.com")
	if err != nil {
		t.Fatalf("UserByEmail() failed: %v", err)
	}
	if !byEmail.CreatedOn.Equal(want.CreatedOn) {
		t.Errorf("CreatedOn = %v, want %v", byEmail.CreatedOn, want.CreatedOn)
	}
	byEmail.CreatedOn = want.CreatedOn
	if diff := cmp.Diff(want, *byEmail); diff != "" {
		t.Errorf("UserByEmail() mismatch (-want +got):\n%s", diff)
	}

	byID, err := s.UserByID(ctx, "u1")
	if err != nil {
		t.Fatalf("UserByID() failed: %v", err)
	}
	if byID.Email != want.Email {
		t.Errorf("UserByID().Email = %q, want %q", byID.Email, want.Email)
	}
}

func TestUsers_InactiveUserHidden(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "u1", "Ann", domain.RoleEmployee)
	mustExec(t, s, "UPDATE users SET data_status = 'I' WHERE user_id = 'u1'")

	if _, err := s.UserByEmail(ctx, "u1@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UserByEmail() err = %v, want ErrNotFound", err)
	}

	// The unique index covers active rows only, so the email can be reused.
	seedUser(t, s, "u2", "Ann again", domain.RoleEmployee)
	mustExec(t, s, "UPDATE users SET email = 'u1@example.com' WHERE user_id = 'u2'")
}

func TestUsers_ByRole(t *testing.T) {
	s := newTestStore(t)
	seedUser(t, s, "e2", "Zed", domain.RoleEmployee)
	seedUser(t, s, "e1", "Amy", domain.RoleEmployee)
	seedUser(t, s, "m1", "Max", domain.RoleManager)

	got, err := s.UsersByRole(context.Background(), domain.RoleEmployee)
	if err != nil {
		t.Fatalf("UsersByRole() failed: %v", err)
	}
	want := []domain.UserSummary{{UserID: "e1", UserName: "Amy"}, {UserID: "e2", UserName: "Zed"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UsersByRole() mismatch (-want +got):\n%s", diff)
	}

	none, err := s.UsersByRole(context.Background(), domain.RoleAdmin)
	if err != nil {
		t.Fatalf("UsersByRole(admin) failed: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("UsersByRole(admin) = %v, want empty non-nil slice", none)
	}
}
