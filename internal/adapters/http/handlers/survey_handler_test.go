package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/mocks"
)

func newSurveyHandler(t *testing.T) (*handlers.SurveyHandler, *mocks.MockSurveyService) {
	t.Helper()
	svc := mocks.NewMockSurveyService(t)
	return handlers.NewSurveyHandler(svc), svc
}

func validSurvey() domain.Survey {
	return domain.Survey{
		ID:        "s-1",
		OrgID:     "org-1",
		Title:     "Pulse",
		Type:      "Feedback",
		RecStatus: domain.RecActive,
		CreatedBy: manager.UserID,
		CreatedOn: testTime,
		Questions: []domain.Question{
			{ID: "q-1", SurveyID: "s-1", Number: 1, Text: "How was the week?", AnswerType: "text"},
		},
		NumAssignees: 2,
	}
}

func TestSurveyTypes(t *testing.T) {
	t.Parallel()
	h, _ := newSurveyHandler(t)

	rec := httptest.NewRecorder()
	h.Types(rec, httptest.NewRequest(http.MethodGet, "/api/v1/survey/types", nil))

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, domain.SurveyTypes(), decodeJSON[[]string](t, rec))
}

func TestCreateSurvey_Created(t *testing.T) {
	t.Parallel()
	h, svc := newSurveyHandler(t)

	svc.EXPECT().CreateSurvey(mock.Anything, manager, mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.Principal, s domain.Survey) (*domain.Survey, error) {
			assert.Equal(t, "Pulse", s.Title)
			assert.Equal(t, []string{"u-1", "u-2"}, s.Audience)
			require.Len(t, s.Questions, 1)
			assert.Equal(t, []string{"Yes", "No"}, s.Questions[0].Options)
			assert.True(t, s.Questions[0].Required)
			created := validSurvey()
			return &created, nil
		})

	body := `{
		"surveyTitle": "Pulse",
		"surveyType": "Feedback",
		"audience": [" u-1 ", "u-2", ""],
		"questions": [{"questionText": "Happy?", "answerType": "Radio", "isRequired": "true",
			"options": [{"optionText": "Yes"}, {"optionText": "No"}]}]
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/survey/create", strings.NewReader(body))
	h.CreateSurvey(rec, asPrincipal(req, manager))

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.SurveyCreatedResponse](t, rec)
	assert.Equal(t, "s-1", resp.SurveyID)
}

func TestSaveSurveyDraft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setup      func(svc *mocks.MockSurveyService)
		wantStatus int
	}{
		{
			name: "saved",
			setup: func(svc *mocks.MockSurveyService) {
				svc.EXPECT().SaveSurveyDraft(mock.Anything, manager, mock.Anything).
					Return(&domain.Survey{ID: "s-9", RecStatus: domain.RecDraft}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "someone else's draft",
			setup: func(svc *mocks.MockSurveyService) {
				svc.EXPECT().SaveSurveyDraft(mock.Anything, manager, mock.Anything).Return(nil, domain.ErrForbidden)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "already published",
			setup: func(svc *mocks.MockSurveyService) {
				svc.EXPECT().SaveSurveyDraft(mock.Anything, manager, mock.Anything).Return(nil, domain.ErrConflict)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newSurveyHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/survey/save-draft",
				jsonBody(t, dto.SurveyRequest{SurveyID: "s-9", SurveyTitle: "Draft"}))
			h.SaveDraft(rec, asPrincipal(req, manager))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestSurveyLists(t *testing.T) {
	t.Parallel()

	t.Run("my surveys", func(t *testing.T) {
		t.Parallel()
		h, svc := newSurveyHandler(t)
		svc.EXPECT().SurveysForUser(mock.Anything, "u-emp").Return([]domain.Survey{validSurvey()}, nil)

		rec := httptest.NewRecorder()
		req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/survey/my-surveys/u-emp", nil),
			map[string]string{"userId": "u-emp"})
		h.ForUser(rec, req)

		requireStatus(t, rec, http.StatusOK)
		resp := decodeJSON[[]dto.SurveyResponse](t, rec)
		require.Len(t, resp, 1)
		assert.Equal(t, 2, resp[0].NumAssignees)
	})

	t.Run("drafts", func(t *testing.T) {
		t.Parallel()
		h, svc := newSurveyHandler(t)
		svc.EXPECT().SurveyDrafts(mock.Anything, "u-mgr").Return([]domain.Survey{}, nil)

		rec := httptest.NewRecorder()
		req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/survey/drafts/u-mgr", nil),
			map[string]string{"userId": "u-mgr"})
		h.Drafts(rec, req)

		requireStatus(t, rec, http.StatusOK)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("created by", func(t *testing.T) {
		t.Parallel()
		h, svc := newSurveyHandler(t)
		svc.EXPECT().SurveysByCreator(mock.Anything, "u-mgr", 2, 5).
			Return(&domain.SurveyPage{Surveys: []domain.Survey{validSurvey()}, Page: 2, Limit: 5}, nil)

		rec := httptest.NewRecorder()
		req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/survey/created-surveys/u-mgr?page=2&limit=5", nil),
			map[string]string{"userId": "u-mgr"})
		h.ByCreator(rec, req)

		requireStatus(t, rec, http.StatusOK)
		resp := decodeJSON[dto.SurveyPageResponse](t, rec)
		assert.Equal(t, 2, resp.Page)
		assert.Len(t, resp.Surveys, 1)
	})

	t.Run("created by with bad limit", func(t *testing.T) {
		t.Parallel()
		h, _ := newSurveyHandler(t)

		rec := httptest.NewRecorder()
		req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/survey/created-surveys/u-mgr?limit=ten", nil),
			map[string]string{"userId": "u-mgr"})
		h.ByCreator(rec, req)

		requireStatus(t, rec, http.StatusBadRequest)
	})
}

func TestGetSurvey(t *testing.T) {
	t.Parallel()
	h, svc := newSurveyHandler(t)

	s := validSurvey()
	svc.EXPECT().GetSurvey(mock.Anything, "s-1").Return(&s, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/survey/s-1", nil), map[string]string{"surveyId": "s-1"})
	h.GetSurvey(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SurveyResponse](t, rec)
	require.Len(t, resp.Questions, 1)
	assert.NotNil(t, resp.Questions[0].Options)
}

func TestSubmitSurvey(t *testing.T) {
	t.Parallel()

	t.Run("recorded", func(t *testing.T) {
		t.Parallel()
		h, svc := newSurveyHandler(t)

		svc.EXPECT().SubmitSurvey(mock.Anything, employee, domain.SurveyResponse{
			SurveyID: "s-1",
			Answers:  []domain.Answer{{QuestionID: "q-1", AnswerText: "Good"}},
		}).Return(nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/survey/submit", jsonBody(t, dto.SurveySubmitRequest{
			SurveyID: "s-1",
			Answers:  []dto.AnswerRequest{{QuestionID: "q-1", AnswerText: "Good"}},
		}))
		h.Submit(rec, asPrincipal(req, employee))

		requireStatus(t, rec, http.StatusCreated)
		assert.JSONEq(t, `{"message":"Survey submitted successfully"}`, rec.Body.String())
	})

	t.Run("missing survey id", func(t *testing.T) {
		t.Parallel()
		h, _ := newSurveyHandler(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/survey/submit", jsonBody(t, dto.SurveySubmitRequest{}))
		h.Submit(rec, asPrincipal(req, employee))

		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("survey not open", func(t *testing.T) {
		t.Parallel()
		h, svc := newSurveyHandler(t)

		svc.EXPECT().SubmitSurvey(mock.Anything, employee, mock.Anything).Return(domain.ErrNotFound)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/survey/submit", jsonBody(t, dto.SurveySubmitRequest{SurveyID: "s-draft"}))
		h.Submit(rec, asPrincipal(req, employee))

		requireStatus(t, rec, http.StatusNotFound)
	})
}
