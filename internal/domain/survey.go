package domain

import (
	"fmt"
	"strings"
	"time"
)

// SurveyTypes returns the fixed list of survey categories offered to
// survey authors.
func SurveyTypes() []string {
	return []string{
		"Employee Satisfaction Survey",
		"Employee Wellness Survey",
		"Employee Engagement Survey",
		"Communication Effectiveness",
		"Training and Development ",
	}
}

// Survey is a questionnaire sent to an audience of users. RecStatus is
// RecActive once published and RecDraft while being edited.
type Survey struct {
	ID           string
	OrgID        string
	Title        string
	Description  string
	Type         string
	StartDate    string
	EndDate      string
	StartTime    string
	EndTime      string
	IsMandatory  bool
	IsAnonymous  bool
	AddToLibrary bool
	RecStatus    RecStatus
	CreatedBy    string
	CreatedOn    time.Time
	ModifiedOn   *time.Time
	Questions    []Question
	Audience     []string
	NumAssignees int
}

// Validate checks a survey that is about to be published. Title and
// questions are optional; a question that is present needs text.
func (s *Survey) Validate() error {
	fields := fieldErrors{}
	checkDate(fields, "startDate", s.StartDate)
	checkDate(fields, "endDate", s.EndDate)
	for i := range s.Questions {
		if strings.TrimSpace(s.Questions[i].Text) == "" {
			fields[fmt.Sprintf("questions[%d].questionText", i)] = msgRequired
		}
	}
	return fields.err()
}

// ValidateDraft checks only the date fields of a draft.
func (s *Survey) ValidateDraft() error {
	fields := fieldErrors{}
	checkDate(fields, "startDate", s.StartDate)
	checkDate(fields, "endDate", s.EndDate)
	return fields.err()
}

// PrepareQuestions normalizes answer types, drops options from types that do
// not take them, and numbers questions by position when no number is given.
func (s *Survey) PrepareQuestions() {
	for i := range s.Questions {
		q := &s.Questions[i]
		q.SurveyID = s.ID
		q.AnswerType = NormalizeAnswerType(q.AnswerType)
		if !TakesOptions(q.AnswerType) {
			q.Options = nil
		}
		if q.Number <= 0 {
			q.Number = i + 1
		}
	}
}

// Question is a single survey question.
type Question struct {
	ID         string
	SurveyID   string
	Number     int
	Text       string
	AnswerType string
	Options    []string
	Required   bool
}

var answerTypeAliases = map[string]string{
	"radio button":       "radio",
	"check box":          "checkbox",
	"drop down":          "dropdown",
	"rating scale":       "rating",
	"net promoter score": "nps",
	"text box":           "textbox",
	"file upload":        "file",
	"date & time":        "datetime",
}

// NormalizeAnswerType maps the display label of an answer type to its stored
// code. Unknown labels are lowercased.
func NormalizeAnswerType(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	if code, ok := answerTypeAliases[key]; ok {
		return code
	}
	return key
}

// TakesOptions reports whether answers of this type pick from a fixed
// option list.
func TakesOptions(answerType string) bool {
	switch answerType {
	case "radio", "checkbox", "dropdown", "rating", "nps":
		return true
	default:
		return false
	}
}

// Answer is a respondent's answer to one question.
type Answer struct {
	QuestionID string
	AnswerText string
}

// SurveyResponse is a respondent's full set of answers to a survey.
type SurveyResponse struct {
	SurveyID string
	Answers  []Answer
}

// Validate checks the answers against the survey's questions: every question
// is answered exactly once and no answer points outside the survey.
func (r *SurveyResponse) Validate(questions []Question) error {
	if len(r.Answers) != len(questions) {
		return NewValidationError("answers",
			fmt.Sprintf("expected %d answers, got %d", len(questions), len(r.Answers)))
	}

	known := make(map[string]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}

	seen := make(map[string]bool, len(r.Answers))
	fields := fieldErrors{}
	for i, a := range r.Answers {
		key := fmt.Sprintf("answers[%d].questionId", i)
		switch {
		case !known[a.QuestionID]:
			fields[key] = fmt.Sprintf("question %q does not belong to this survey", a.QuestionID)
		case seen[a.QuestionID]:
			fields[key] = fmt.Sprintf("question %q answered more than once", a.QuestionID)
		}
		seen[a.QuestionID] = true
	}
	return fields.err()
}

// SurveyPage is one page of a creator's surveys.
type SurveyPage struct {
	Surveys []Survey
	Page    int
	Limit   int
}

const defaultSurveyLimit = 5

// NormalizeSurveyPaging applies the creator listing defaults.
func NormalizeSurveyPaging(page, limit int) (int, int) {
	normalizePaging(&page, &limit, defaultSurveyLimit)
	return page, limit
}
