package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

var _ ports.SurveyService = (*SurveyService)(nil)

// SurveyService manages surveys and collects responses.
type SurveyService struct {
	surveys ports.SurveyRepository
	orgID   string
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// NewSurveyService creates a SurveyService. orgID is used when the
// principal carries no organization.
func NewSurveyService(surveys ports.SurveyRepository, orgID string, logger *slog.Logger) *SurveyService {
	return &SurveyService{
		surveys: surveys,
		orgID:   orgID,
		logger:  orDiscard(logger),
		now:     systemNow,
		newID:   newUUID,
	}
}

// CreateSurvey publishes a survey with its audience and questions.
func (s *SurveyService) CreateSurvey(ctx context.Context, principal domain.Principal, sv domain.Survey) (*domain.Survey, error) {
	s.logger.InfoContext(ctx, "creating survey", slog.Int("questions", len(sv.Questions)))

	sv.ID = s.newID()
	sv.PrepareQuestions()
	if err := sv.Validate(); err != nil {
		return nil, err
	}
	sv.OrgID = orgOf(principal, s.orgID)
	sv.RecStatus = domain.RecActive
	sv.CreatedBy = principal.UserID
	sv.CreatedOn = s.now()
	sv.ModifiedOn = nil
	sv.NumAssignees = len(sv.Audience)

	if err := s.surveys.CreateSurvey(ctx, &sv); err != nil {
		s.logger.ErrorContext(ctx, "failed to create survey",
			slog.String("operation", "CreateSurvey"),
			slog.String("survey_id", sv.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &sv, nil
}

// SaveSurveyDraft creates or updates a draft. Only the author may update a
// draft, and a published survey cannot go back to draft.
func (s *SurveyService) SaveSurveyDraft(ctx context.Context, principal domain.Principal, sv domain.Survey) (*domain.Survey, error) {
	s.logger.InfoContext(ctx, "saving survey draft", slog.String("survey_id", sv.ID))

	if err := sv.ValidateDraft(); err != nil {
		return nil, err
	}

	now := s.now()
	sv.CreatedOn = now
	sv.ModifiedOn = nil
	if sv.ID == "" {
		sv.ID = s.newID()
	} else {
		existing, err := s.surveys.Survey(ctx, sv.ID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return nil, err
		case existing.CreatedBy != principal.UserID:
			return nil, fmt.Errorf("survey %s belongs to another user: %w", sv.ID, domain.ErrForbidden)
		case existing.RecStatus != domain.RecDraft:
			return nil, fmt.Errorf("survey %s is already published: %w", sv.ID, domain.ErrConflict)
		default:
			sv.CreatedOn = existing.CreatedOn
			sv.ModifiedOn = &now
		}
	}

	sv.PrepareQuestions()
	sv.OrgID = orgOf(principal, s.orgID)
	sv.RecStatus = domain.RecDraft
	sv.CreatedBy = principal.UserID

	if err := s.surveys.SaveSurveyDraft(ctx, &sv); err != nil {
		s.logger.ErrorContext(ctx, "failed to save survey draft",
			slog.String("operation", "SaveSurveyDraft"),
			slog.String("survey_id", sv.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &sv, nil
}

// SurveysForUser lists published surveys addressed to the user.
func (s *SurveyService) SurveysForUser(ctx context.Context, userID string) ([]domain.Survey, error) {
	return s.surveys.SurveysForUser(ctx, userID)
}

// SurveysByCreator pages through the user's published surveys, newest first.
func (s *SurveyService) SurveysByCreator(ctx context.Context, userID string, page, limit int) (*domain.SurveyPage, error) {
	page, limit = domain.NormalizeSurveyPaging(page, limit)
	list, err := s.surveys.SurveysByCreator(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}
	return &domain.SurveyPage{Surveys: list, Page: page, Limit: limit}, nil
}

// SurveyDrafts lists the user's drafts.
func (s *SurveyService) SurveyDrafts(ctx context.Context, userID string) ([]domain.Survey, error) {
	return s.surveys.SurveyDrafts(ctx, userID)
}

// GetSurvey returns a published or draft survey with its questions.
func (s *SurveyService) GetSurvey(ctx context.Context, surveyID string) (*domain.Survey, error) {
	return s.surveys.Survey(ctx, surveyID)
}

// SubmitSurvey stores the principal's answers to a published survey. Each
// question must be answered exactly once.
func (s *SurveyService) SubmitSurvey(ctx context.Context, principal domain.Principal, resp domain.SurveyResponse) error {
	s.logger.InfoContext(ctx, "submitting survey", slog.String("survey_id", resp.SurveyID))

	sv, err := s.surveys.Survey(ctx, resp.SurveyID)
	if err != nil {
		return err
	}
	if sv.RecStatus != domain.RecActive {
		return fmt.Errorf("survey %s is not published: %w", resp.SurveyID, domain.ErrNotFound)
	}
	if err := resp.Validate(sv.Questions); err != nil {
		return err
	}

	if err := s.surveys.SaveAnswers(ctx, sv.ID, principal.UserID, resp.Answers, s.now()); err != nil {
		s.logger.ErrorContext(ctx, "failed to submit survey",
			slog.String("operation", "SubmitSurvey"),
			slog.String("survey_id", sv.ID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
