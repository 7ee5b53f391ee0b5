package domain

import "testing"

func TestRecStatus_IsFilterable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status RecStatus
		want   bool
	}{
		{RecPending, true},
		{RecStarted, true},
		{RecDraft, true},
		{RecCompleted, true},
		{RecRejected, true},
		{RecInReview, true},
		{RecOverdue, true},
		{RecActive, false},
		{"", false},
		{"p", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsFilterable(); got != tt.want {
				t.Errorf("RecStatus(%q).IsFilterable() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestRole_IsValid(t *testing.T) {
	t.Parallel()

	for _, r := range Roles() {
		if !r.IsValid() {
			t.Errorf("Role(%q).IsValid() = false, want true", r)
		}
	}
	for _, r := range []Role{"", "Admin", "superuser"} {
		if r.IsValid() {
			t.Errorf("Role(%q).IsValid() = true, want false", r)
		}
	}
}

func TestReviewAction_IsValid(t *testing.T) {
	t.Parallel()

	if !ActionApprove.IsValid() || !ActionReject.IsValid() {
		t.Error("approve and reject should be valid")
	}
	if ReviewAction("escalate").IsValid() {
		t.Error(`ReviewAction("escalate").IsValid() = true, want false`)
	}
}
