package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func validTask() domain.Task {
	return domain.Task{
		ID:             "t-1",
		RecSeq:         2,
		OrgID:          "org-1",
		RecStatus:      domain.RecPending,
		DataStatus:     domain.DataActive,
		Title:          "Stock count",
		Description:    "Count the back room",
		PlannedEndDate: "2026-02-13",
		ProofRequired:  true,
		Important:      true,
		ReviewBy:       "u-mgr",
		CreatedBy:      "u-admin",
		CreatedOn:      testTime,
	}
}

func TestToTaskResponse(t *testing.T) {
	t.Parallel()

	modified := testTime.Add(time.Hour)

	tests := []struct {
		name   string
		task   domain.Task
		verify func(t *testing.T, got dto.TaskResponse)
	}{
		{
			name: "maps identity and content",
			task: validTask(),
			verify: func(t *testing.T, got dto.TaskResponse) {
				t.Helper()
				if got.TaskID != "t-1" || got.RecSeq != 2 {
					t.Errorf("identity = (%q, %d), want (t-1, 2)", got.TaskID, got.RecSeq)
				}
				if got.TaskTitle != "Stock count" {
					t.Errorf("TaskTitle = %q, want %q", got.TaskTitle, "Stock count")
				}
				if got.RecStatus != "P" {
					t.Errorf("RecStatus = %q, want P", got.RecStatus)
				}
			},
		},
		{
			name: "flags use the API names",
			task: validTask(),
			verify: func(t *testing.T, got dto.TaskResponse) {
				t.Helper()
				if !got.IsRequiresProof || !got.IsImportant || got.IsMandatory {
					t.Errorf("flags = proof:%v important:%v mandatory:%v, want true true false",
						got.IsRequiresProof, got.IsImportant, got.IsMandatory)
				}
			},
		},
		{
			name: "timestamps formatted as RFC3339",
			task: func() domain.Task {
				tk := validTask()
				tk.ModifiedOn = &modified
				return tk
			}(),
			verify: func(t *testing.T, got dto.TaskResponse) {
				t.Helper()
				if got.CreatedOn != "2026-02-12T15:04:05Z" {
					t.Errorf("CreatedOn = %q", got.CreatedOn)
				}
				if got.ModifiedOn == nil || *got.ModifiedOn != "2026-02-12T16:04:05Z" {
					t.Errorf("ModifiedOn = %v, want 2026-02-12T16:04:05Z", got.ModifiedOn)
				}
			},
		},
		{
			name: "nil modifiedOn stays nil",
			task: validTask(),
			verify: func(t *testing.T, got dto.TaskResponse) {
				t.Helper()
				if got.ModifiedOn != nil {
					t.Errorf("ModifiedOn = %q, want nil", *got.ModifiedOn)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToTaskResponse(&tt.task)
			tt.verify(t, got)
		})
	}
}

func TestToTaskPageResponse_EmptyIsArray(t *testing.T) {
	t.Parallel()

	resp := dto.ToTaskPageResponse(&domain.TaskPage[domain.Task]{Page: 1, Limit: 10})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"tasks":[],"total":0,"page":1,"limit":10}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestToTaskDetailsResponse_JSONSerialization(t *testing.T) {
	t.Parallel()

	resp := dto.ToTaskDetailsResponse(&domain.TaskDetails{
		Task:          validTask(),
		CreatorName:   "Ada",
		ReviewerName:  "Grace",
		AssigneeCount: 2,
		Proofs: []domain.Attachment{{
			ID: "a-1", TaskID: "t-1", RecSeq: 1, FileName: "proof.jpg",
			SignedURL: "https://files.example/proof.jpg?sig=1", UploaderRole: domain.RoleEmployee,
			CreatedOn: testTime,
		}},
		Comments: []domain.Comment{{ID: "c-1", TaskID: "t-1", RecSeq: 1, Text: "done", CreatedOn: testTime}},
	})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	requiredKeys := []string{
		"taskId", "taskTitle", "taskDescription", "recStatus", "isRequiresProof",
		"assignedByName", "reviewerName", "assignedToCount", "proofs", "comments",
	}
	for _, key := range requiredKeys {
		if _, ok := m[key]; !ok {
			t.Errorf("JSON missing key %q, got keys: %v", key, keys(m))
		}
	}

	proofs, _ := m["proofs"].([]any)
	if len(proofs) != 1 {
		t.Fatalf("len(proofs) = %d, want 1", len(proofs))
	}
	if url := proofs[0].(map[string]any)["url"]; url != "https://files.example/proof.jpg?sig=1" {
		t.Errorf("proofs[0].url = %v", url)
	}
}

func TestToSessionResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToSessionResponse(&domain.Session{
		Token:     "tok",
		Principal: domain.Principal{UserID: "u-1", Role: domain.RoleManager, UserName: "grace"},
	})

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"token":"tok","payload":{"userId":"u-1","role":"manager","username":"grace"}}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestToSurveyResponse_OptionsAlwaysArray(t *testing.T) {
	t.Parallel()

	got := dto.ToSurveyResponse(&domain.Survey{
		ID:    "s-1",
		Title: "Pulse",
		Questions: []domain.Question{
			{ID: "q-1", Number: 1, Text: "Mood?", AnswerType: "radio", Options: []string{"good", "bad"}},
			{ID: "q-2", Number: 2, Text: "Notes", AnswerType: "textbox"},
		},
		CreatedOn: testTime,
	})

	if len(got.Questions) != 2 {
		t.Fatalf("len(Questions) = %d, want 2", len(got.Questions))
	}
	if got.Questions[0].Options[1].OptionText != "bad" {
		t.Errorf("Options[1] = %q, want bad", got.Questions[0].Options[1].OptionText)
	}
	if got.Questions[1].Options == nil {
		t.Error("Options = nil for textbox, want empty slice")
	}
}

func TestHandoverDecisionMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		action domain.ReviewAction
		want   string
	}{
		{domain.ActionApprove, "Request has been successfully approved."},
		{domain.ActionReject, "Request has been successfully rejected."},
	}
	for _, tt := range tests {
		if got := dto.HandoverDecisionMessage(tt.action).Message; got != tt.want {
			t.Errorf("HandoverDecisionMessage(%q) = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestToAccessResultResponses_OmitsEmptyReason(t *testing.T) {
	t.Parallel()

	got := dto.ToAccessResultResponses([]domain.AccessResult{
		{EventID: "e-1", Access: true},
		{EventID: "e-2", Access: false, Reason: domain.ReasonOutsideGeofence},
	})

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `[{"eventId":"e-1","access":true},{"eventId":"e-2","access":false,"reason":"Not within location fence."}]`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func keys(m map[string]any) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
