package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/mocks"
)

func newSurveyService(t *testing.T) (*SurveyService, *mocks.MockSurveyRepository) {
	t.Helper()
	repo := mocks.NewMockSurveyRepository(t)
	svc := NewSurveyService(repo, "org-default", discardLogger())
	svc.now = fixedClock
	svc.newID = sequentialIDs()
	return svc, repo
}

func TestSurveyService_CreateSurvey(t *testing.T) {
	t.Parallel()

	t.Run("normalizes questions and publishes", func(t *testing.T) {
		t.Parallel()
		svc, repo := newSurveyService(t)
		repo.EXPECT().CreateSurvey(mock.Anything, mock.MatchedBy(func(sv *domain.Survey) bool {
			q := sv.Questions
			return sv.RecStatus == domain.RecActive && sv.ID == "id-1" &&
				q[0].AnswerType == "radio" && len(q[0].Options) == 2 && q[0].Number == 1 &&
				q[1].AnswerType == "textbox" && q[1].Options == nil && q[1].Number == 2
		})).Return(nil)

		got, err := svc.CreateSurvey(context.Background(), manager(), domain.Survey{
			Title:    "Pulse",
			Audience: []string{"emp-1", "emp-2"},
			Questions: []domain.Question{
				{Text: "Mood?", AnswerType: "Radio Button", Options: []string{"good", "bad"}},
				{Text: "Notes", AnswerType: "Text Box", Options: []string{"ignored"}},
			},
		})
		if err != nil {
			t.Fatalf("CreateSurvey() error = %v, want nil", err)
		}
		if got.NumAssignees != 2 || got.CreatedBy != "mgr-1" {
			t.Errorf("CreateSurvey() = %+v, want two assignees by mgr-1", got)
		}
	})

	t.Run("untitled survey without questions publishes", func(t *testing.T) {
		t.Parallel()
		svc, repo := newSurveyService(t)
		repo.EXPECT().CreateSurvey(mock.Anything, mock.MatchedBy(func(sv *domain.Survey) bool {
			return sv.Title == "" && len(sv.Questions) == 0 && sv.IsAnonymous
		})).Return(nil)

		if _, err := svc.CreateSurvey(context.Background(), manager(), domain.Survey{IsAnonymous: true}); err != nil {
			t.Errorf("CreateSurvey() error = %v, want nil", err)
		}
	})

	t.Run("question without text", func(t *testing.T) {
		t.Parallel()
		svc, _ := newSurveyService(t)
		_, err := svc.CreateSurvey(context.Background(), manager(), domain.Survey{
			Title: "Pulse", Questions: []domain.Question{{Text: " "}},
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreateSurvey() error = %v, want ErrValidation", err)
		}
	})
}

func TestSurveyService_SaveSurveyDraft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing *domain.Survey
		findErr  error
		wantErr  error
	}{
		{"new draft with chosen id", nil, domain.ErrNotFound, nil},
		{"update own draft", &domain.Survey{ID: "s1", CreatedBy: "mgr-1", RecStatus: domain.RecDraft}, nil, nil},
		{"someone else's draft", &domain.Survey{ID: "s1", CreatedBy: "mgr-2", RecStatus: domain.RecDraft}, nil, domain.ErrForbidden},
		{"already published", &domain.Survey{ID: "s1", CreatedBy: "mgr-1", RecStatus: domain.RecActive}, nil, domain.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newSurveyService(t)
			repo.EXPECT().Survey(mock.Anything, "s1").Return(tt.existing, tt.findErr)
			if tt.wantErr == nil {
				repo.EXPECT().SaveSurveyDraft(mock.Anything, mock.MatchedBy(func(sv *domain.Survey) bool {
					return sv.ID == "s1" && sv.RecStatus == domain.RecDraft
				})).Return(nil)
			}

			got, err := svc.SaveSurveyDraft(context.Background(), manager(), domain.Survey{ID: "s1", Title: "WIP"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SaveSurveyDraft() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && tt.existing != nil && got.ModifiedOn == nil {
				t.Error("updated draft has no ModifiedOn")
			}
		})
	}
}

func TestSurveyService_SurveysByCreatorDefaults(t *testing.T) {
	t.Parallel()
	svc, repo := newSurveyService(t)
	repo.EXPECT().SurveysByCreator(mock.Anything, "mgr-1", 1, 5).Return([]domain.Survey{}, nil)

	got, err := svc.SurveysByCreator(context.Background(), "mgr-1", 0, 0)
	if err != nil || got.Page != 1 || got.Limit != 5 {
		t.Errorf("SurveysByCreator() = %+v, %v, want page 1 limit 5", got, err)
	}
}

func TestSurveyService_SubmitSurvey(t *testing.T) {
	t.Parallel()

	published := &domain.Survey{ID: "s1", RecStatus: domain.RecActive, Questions: []domain.Question{{ID: "q1"}, {ID: "q2"}}}
	answers := []domain.Answer{{QuestionID: "q1", AnswerText: "yes"}, {QuestionID: "q2", AnswerText: "fine"}}

	t.Run("saves answers", func(t *testing.T) {
		t.Parallel()
		svc, repo := newSurveyService(t)
		repo.EXPECT().Survey(mock.Anything, "s1").Return(published, nil)
		repo.EXPECT().SaveAnswers(mock.Anything, "s1", "emp-1", answers, testNow).Return(nil)

		if err := svc.SubmitSurvey(context.Background(), employee(), domain.SurveyResponse{SurveyID: "s1", Answers: answers}); err != nil {
			t.Errorf("SubmitSurvey() error = %v, want nil", err)
		}
	})

	t.Run("second submission conflicts", func(t *testing.T) {
		t.Parallel()
		svc, repo := newSurveyService(t)
		repo.EXPECT().Survey(mock.Anything, "s1").Return(published, nil)
		repo.EXPECT().SaveAnswers(mock.Anything, "s1", "emp-1", answers, testNow).Return(domain.ErrConflict)

		err := svc.SubmitSurvey(context.Background(), employee(), domain.SurveyResponse{SurveyID: "s1", Answers: answers})
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("SubmitSurvey() error = %v, want ErrConflict", err)
		}
	})

	t.Run("wrong answer count", func(t *testing.T) {
		t.Parallel()
		svc, repo := newSurveyService(t)
		repo.EXPECT().Survey(mock.Anything, "s1").Return(published, nil)

		err := svc.SubmitSurvey(context.Background(), employee(), domain.SurveyResponse{SurveyID: "s1", Answers: answers[:1]})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("SubmitSurvey() error = %v, want ErrValidation", err)
		}
	})

	t.Run("draft cannot be answered", func(t *testing.T) {
		t.Parallel()
		svc, repo := newSurveyService(t)
		repo.EXPECT().Survey(mock.Anything, "s1").Return(&domain.Survey{ID: "s1", RecStatus: domain.RecDraft}, nil)

		err := svc.SubmitSurvey(context.Background(), employee(), domain.SurveyResponse{SurveyID: "s1", Answers: answers})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("SubmitSurvey() error = %v, want ErrNotFound", err)
		}
	})
}
