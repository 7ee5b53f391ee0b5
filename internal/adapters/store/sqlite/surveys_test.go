package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

func testSurvey(id string, status domain.RecStatus) domain.Survey {
	return domain.Survey{
		ID:           id,
		OrgID:        "org-1",
		Title:        "Pulse " + id,
		Type:         "Employee Wellness Survey",
		StartDate:    "2026-03-01",
		EndDate:      "2026-03-31",
		StartTime:    "09:00",
		EndTime:      "17:30",
		IsMandatory:  true,
		AddToLibrary: true,
		RecStatus:    status,
		CreatedBy:    "mgr-1",
		CreatedOn:    testNow,
		Audience:     []string{"emp-1", "emp-2"},
		Questions: []domain.Question{
			{ID: id + "-q2", Number: 2, Text: "Comments?", AnswerType: "textbox"},
			{ID: id + "-q1", Number: 1, Text: "How are you?", AnswerType: "radio", Options: []string{"good", "bad"}, Required: true},
		},
	}
}

func TestSurveys_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	sv := testSurvey("s1", domain.RecActive)
	if err := s.CreateSurvey(ctx, &sv); err != nil {
		t.Fatalf("CreateSurvey() failed: %v", err)
	}

	got, err := s.Survey(ctx, "s1")
	if err != nil {
		t.Fatalf("Survey() failed: %v", err)
	}
	if got.NumAssignees != 2 {
		t.Errorf("NumAssignees = %d, want 2", got.NumAssignees)
	}
	if got.StartTime != "09:00" || got.EndTime != "17:30" {
		t.Errorf("times = %q-%q, want 09:00-17:30", got.StartTime, got.EndTime)
	}
	if !got.IsMandatory || got.IsAnonymous || !got.AddToLibrary {
		t.Errorf("flags = mandatory %t anonymous %t library %t, want true false true",
			got.IsMandatory, got.IsAnonymous, got.AddToLibrary)
	}
	if diff := cmp.Diff([]string{"emp-1", "emp-2"}, got.Audience); diff != "" {
		t.Errorf("Audience mismatch (-want +got):\n%s", diff)
	}
	wantQuestions := []domain.Question{
		{ID: "s1-q1", SurveyID: "s1", Number: 1, Text: "How are you?", AnswerType: "radio", Options: []string{"good", "bad"}, Required: true},
		{ID: "s1-q2", SurveyID: "s1", Number: 2, Text: "Comments?", AnswerType: "textbox", Options: []string{}},
	}
	if diff := cmp.Diff(wantQuestions, got.Questions); diff != "" {
		t.Errorf("Questions mismatch (-want +got):\n%s", diff)
	}

	if _, err := s.Survey(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Survey(missing) err = %v, want ErrNotFound", err)
	}
}

func TestSurveys_MalformedOptionsBecomeEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  sql.NullString
		want []string
	}{
		{"null", sql.NullString{}, []string{}},
		{"invalid", sql.NullString{String: "{not json", Valid: true}, []string{}},
		{"json null", sql.NullString{String: "null", Valid: true}, []string{}},
		{"valid", sql.NullString{String: `["a","b"]`, Valid: true}, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, parseOptions(tt.raw)); diff != "" {
				t.Errorf("parseOptions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSurveys_SaveDraftReplacesChildren(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	draft := testSurvey("d1", domain.RecDraft)
	if err := s.SaveSurveyDraft(ctx, &draft); err != nil {
		t.Fatalf("SaveSurveyDraft() failed: %v", err)
	}

	modified := testNow.Add(time.Hour)
	draft.Title = "Renamed"
	draft.StartDate = ""
	draft.EndTime = ""
	draft.IsMandatory = false
	draft.IsAnonymous = true
	draft.Audience = []string{"emp-3"}
	draft.Questions = nil
	draft.ModifiedOn = &modified
	if err := s.SaveSurveyDraft(ctx, &draft); err != nil {
		t.Fatalf("second SaveSurveyDraft() failed: %v", err)
	}

	got, err := s.Survey(ctx, "d1")
	if err != nil {
		t.Fatalf("Survey() failed: %v", err)
	}
	if got.Title != "Renamed" || got.StartDate != "" || got.RecStatus != domain.RecDraft {
		t.Errorf("draft = %+v, want renamed draft with blank start date", got)
	}
	if got.StartTime != "09:00" || got.EndTime != "" {
		t.Errorf("times = %q-%q, want 09:00 and a cleared end time", got.StartTime, got.EndTime)
	}
	if got.IsMandatory || !got.IsAnonymous || !got.AddToLibrary {
		t.Errorf("flags = mandatory %t anonymous %t library %t, want false true true",
			got.IsMandatory, got.IsAnonymous, got.AddToLibrary)
	}
	if diff := cmp.Diff([]string{"emp-3"}, got.Audience); diff != "" {
		t.Errorf("Audience mismatch (-want +got):\n%s", diff)
	}
	if len(got.Questions) != 2 {
		t.Errorf("Questions = %d, want 2 kept when nil", len(got.Questions))
	}

	drafts, err := s.SurveyDrafts(ctx, "mgr-1")
	if err != nil {
		t.Fatalf("SurveyDrafts() failed: %v", err)
	}
	if len(drafts) != 1 || drafts[0].ID != "d1" {
		t.Errorf("SurveyDrafts() = %+v, want d1", drafts)
	}
}

func TestSurveys_ListingViews(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i, id := range []string{"s1", "s2", "s3"} {
		sv := testSurvey(id, domain.RecActive)
		sv.CreatedOn = testNow.Add(time.Duration(i) * time.Hour)
		if id == "s3" {
			sv.Audience = []string{"emp-9"}
		}
		if err := s.CreateSurvey(ctx, &sv); err != nil {
			t.Fatalf("CreateSurvey(%s) failed: %v", id, err)
		}
	}
	draft := testSurvey("d1", domain.RecDraft)
	if err := s.SaveSurveyDraft(ctx, &draft); err != nil {
		t.Fatalf("SaveSurveyDraft() failed: %v", err)
	}

	forUser, err := s.SurveysForUser(ctx, "emp-1")
	if err != nil {
		t.Fatalf("SurveysForUser() failed: %v", err)
	}
	if len(forUser) != 2 || forUser[0].ID != "s2" {
		t.Errorf("SurveysForUser() = %+v, want s2 then s1", forUser)
	}

	page, err := s.SurveysByCreator(ctx, "mgr-1", 2, 2)
	if err != nil {
		t.Fatalf("SurveysByCreator() failed: %v", err)
	}
	if len(page) != 1 || page[0].ID != "s1" || page[0].NumAssignees != 2 {
		t.Errorf("SurveysByCreator(page 2) = %+v, want s1 with 2 assignees", page)
	}
}

func TestSurveys_SaveAnswersRejectsDuplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	sv := testSurvey("s1", domain.RecActive)
	if err := s.CreateSurvey(ctx, &sv); err != nil {
		t.Fatalf("CreateSurvey() failed: %v", err)
	}

	answers := []domain.Answer{
		{QuestionID: "s1-q1", AnswerText: "good"},
		{QuestionID: "s1-q2", AnswerText: "all fine"},
	}
	if err := s.SaveAnswers(ctx, "s1", "emp-1", answers, testNow); err != nil {
		t.Fatalf("SaveAnswers() failed: %v", err)
	}
	if err := s.SaveAnswers(ctx, "s1", "emp-1", answers, testNow); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second SaveAnswers() err = %v, want ErrConflict", err)
	}
	if err := s.SaveAnswers(ctx, "s1", "emp-2", answers, testNow); err != nil {
		t.Errorf("SaveAnswers(other user) err = %v, want nil", err)
	}

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM survey_answers").Scan(&n); err != nil {
		t.Fatalf("count answers failed: %v", err)
	}
	if n != 4 {
		t.Errorf("answers stored = %d, want 4", n)
	}
}

func TestSurveys_SaveAnswersIsAtomic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	sv := testSurvey("s1", domain.RecActive)
	if err := s.CreateSurvey(ctx, &sv); err != nil {
		t.Fatalf("CreateSurvey() failed: %v", err)
	}

	answers := []domain.Answer{
		{QuestionID: "s1-q1", AnswerText: "good"},
		{QuestionID: "not-a-question", AnswerText: "?"},
	}
	if err := s.SaveAnswers(ctx, "s1", "emp-1", answers, testNow); err == nil {
		t.Fatal("SaveAnswers() with a foreign question = nil, want error")
	}

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM survey_answers").Scan(&n); err != nil {
		t.Fatalf("count answers failed: %v", err)
	}
	if n != 0 {
		t.Errorf("answers stored after rollback = %d, want 0", n)
	}
}
