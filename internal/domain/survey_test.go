package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeAnswerType(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Radio Button":       "radio",
		"check box":          "checkbox",
		"Drop Down":          "dropdown",
		"Rating Scale":       "rating",
		"Net Promoter Score": "nps",
		"Text Box":           "textbox",
		"File Upload":        "file",
		"Date & Time":        "datetime",
		"Paragraph":          "paragraph",
		"  SLIDER ":          "slider",
	}

	for in, want := range tests {
		if got := NormalizeAnswerType(in); got != want {
			t.Errorf("NormalizeAnswerType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSurvey_PrepareQuestions(t *testing.T) {
	t.Parallel()

	s := Survey{
		ID: "s1",
		Questions: []Question{
			{Text: "How happy are you?", AnswerType: "Rating Scale", Options: []string{"1", "2", "3"}},
			{Text: "Anything else?", AnswerType: "Text Box", Options: []string{"ignored"}},
			{Text: "Pick one", AnswerType: "radio button", Options: []string{"a", "b"}, Number: 7},
		},
	}
	s.PrepareQuestions()

	want := []Question{
		{SurveyID: "s1", Number: 1, Text: "How happy are you?", AnswerType: "rating", Options: []string{"1", "2", "3"}},
		{SurveyID: "s1", Number: 2, Text: "Anything else?", AnswerType: "textbox"},
		{SurveyID: "s1", Number: 7, Text: "Pick one", AnswerType: "radio", Options: []string{"a", "b"}},
	}
	if diff := cmp.Diff(want, s.Questions); diff != "" {
		t.Errorf("PrepareQuestions() mismatch (-want +got):\n%s", diff)
	}
}

func TestSurvey_Validate(t *testing.T) {
	t.Parallel()

	s := Survey{Title: "Pulse", Questions: []Question{{Text: "ok?"}, {Text: " "}}}
	var verr *ValidationError
	if err := s.Validate(); !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if _, ok := verr.Fields["questions[1].questionText"]; !ok {
		t.Errorf("Validate() fields = %v, want questions[1].questionText", verr.Fields)
	}
}

func TestSurvey_ValidateAllowsUntitledAndEmpty(t *testing.T) {
	t.Parallel()

	for _, s := range []Survey{
		{},
		{Title: "  ", Questions: []Question{}},
		{Questions: []Question{{Text: "Anything else?"}}},
	} {
		if err := s.Validate(); err != nil {
			t.Errorf("Validate(%+v) = %v, want nil", s, err)
		}
	}
}

func TestSurveyResponse_Validate(t *testing.T) {
	t.Parallel()

	questions := []Question{{ID: "q1"}, {ID: "q2"}}

	tests := []struct {
		name    string
		answers []Answer
		wantErr bool
	}{
		{"all answered", []Answer{{"q1", "yes"}, {"q2", "no"}}, false},
		{"too few", []Answer{{"q1", "yes"}}, true},
		{"foreign question", []Answer{{"q1", "yes"}, {"q9", "no"}}, true},
		{"duplicate question", []Answer{{"q1", "yes"}, {"q1", "no"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := SurveyResponse{SurveyID: "s1", Answers: tt.answers}
			err := r.Validate(questions)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("Validate() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestSurveyTypes_KeepsTrailingSpace(t *testing.T) {
	t.Parallel()

	types := SurveyTypes()
	if len(types) != 5 {
		t.Fatalf("len(SurveyTypes()) = %d, want 5", len(types))
	}
	if got := types[4]; got != "Training and Development " {
		t.Errorf("SurveyTypes()[4] = %q, want trailing space preserved", got)
	}
}
