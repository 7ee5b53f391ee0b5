package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const (
	msgSurveyCreated   = "Survey created successfully"
	msgSurveySubmitted = "Survey submitted successfully"
)

// SurveyHandler handles the /survey routes.
type SurveyHandler struct {
	surveys ports.SurveyService
}

// NewSurveyHandler creates a new SurveyHandler.
func NewSurveyHandler(surveys ports.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveys: surveys}
}

// Types handles GET /api/v1/survey/types.
func (h *SurveyHandler) Types(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.SurveyTypes())
}

// CreateSurvey handles POST /api/v1/survey/create.
func (h *SurveyHandler) CreateSurvey(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SurveyRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.surveys.CreateSurvey(r.Context(), principal, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.SurveyCreatedResponse{Message: msgSurveyCreated, SurveyID: created.ID})
}

// SaveDraft handles POST /api/v1/survey/save-draft.
func (h *SurveyHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SurveyRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	saved, err := h.surveys.SaveSurveyDraft(r.Context(), principal, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SurveyDraftResponse{Success: true, SurveyID: saved.ID})
}

// ForUser handles GET /api/v1/survey/my-surveys/{userId}.
func (h *SurveyHandler) ForUser(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.surveys.SurveysForUser)
}

// Drafts handles GET /api/v1/survey/drafts/{userId}.
func (h *SurveyHandler) Drafts(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.surveys.SurveyDrafts)
}

func (h *SurveyHandler) list(w http.ResponseWriter, r *http.Request, load func(ctx context.Context, userID string) ([]domain.Survey, error)) {
	userID, err := pathParam(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := load(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSurveyResponses(list))
}

// ByCreator handles GET /api/v1/survey/created-surveys/{userId}?page=&limit=.
func (h *SurveyHandler) ByCreator(w http.ResponseWriter, r *http.Request) {
	userID, err := pathParam(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	page, err := queryInt(r, "page")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := h.surveys.SurveysByCreator(r.Context(), userID, page, limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSurveyPageResponse(result))
}

// GetSurvey handles GET /api/v1/survey/{surveyId}.
func (h *SurveyHandler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	surveyID, err := pathParam(r, "surveyId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	survey, err := h.surveys.GetSurvey(r.Context(), surveyID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSurveyResponse(survey))
}

// Submit handles POST /api/v1/survey/submit.
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SurveySubmitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.surveys.SubmitSurvey(r.Context(), principal, req.ToDomain()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.MessageResponse{Message: msgSurveySubmitted})
}
