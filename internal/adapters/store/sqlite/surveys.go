package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

const surveyColumns = `s.survey_id, s.org_id, s.survey_title, s.survey_description, s.survey_type,
	s.start_date, s.end_date, s.start_time, s.end_time, s.is_mandatory, s.is_anonymous, s.add_to_library,
	s.rec_status, s.created_by, s.created_on, s.modified_on,
	(SELECT COUNT(*) FROM survey_audience sa WHERE sa.survey_id = s.survey_id)`

func scanSurvey(row scanner) (domain.Survey, error) {
	var (
		sv                 domain.Survey
		start, end         sql.NullString
		startTime, endTime sql.NullString
		modifiedOn         sql.NullTime
	)
	err := row.Scan(&sv.ID, &sv.OrgID, &sv.Title, &sv.Description, &sv.Type,
		&start, &end, &startTime, &endTime, &sv.IsMandatory, &sv.IsAnonymous, &sv.AddToLibrary,
		&sv.RecStatus, &sv.CreatedBy, &sv.CreatedOn, &modifiedOn, &sv.NumAssignees)
	sv.StartDate = start.String
	sv.EndDate = end.String
	sv.StartTime = startTime.String
	sv.EndTime = endTime.String
	sv.ModifiedOn = timePtr(modifiedOn)
	return sv, err
}

func (s *Store) querySurveys(ctx context.Context, op, where string, args ...any) ([]domain.Survey, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+surveyColumns+` FROM surveys s `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := []domain.Survey{}
	for rows.Next() {
		sv, err := scanSurvey(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, sv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate: %w", op, err)
	}
	return out, nil
}

func insertAudience(ctx context.Context, ex execer, surveyID string, userIDs []string) error {
	for _, userID := range userIDs {
		if _, err := ex.ExecContext(ctx, `
			INSERT OR IGNORE INTO survey_audience (survey_id, user_id) VALUES (?, ?)`,
			surveyID, userID,
		); err != nil {
			return wrapErr("insert survey audience", err)
		}
	}
	return nil
}

func insertQuestions(ctx context.Context, ex execer, surveyID string, questions []domain.Question) error {
	for i := range questions {
		q := &questions[i]
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		var options any
		if q.Options != nil {
			raw, err := json.Marshal(q.Options)
			if err != nil {
				return fmt.Errorf("encode options for question %d: %w", q.Number, err)
			}
			options = string(raw)
		}
		if _, err := ex.ExecContext(ctx, `
			INSERT INTO survey_questions (
				question_id, survey_id, question_number, question_text, answer_type, options, is_mandatory
			) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			q.ID, surveyID, q.Number, q.Text, q.AnswerType, options, q.Required,
		); err != nil {
			return wrapErr("insert survey question", err)
		}
	}
	return nil
}

// CreateSurvey implements ports.SurveyRepository.
func (s *Store) CreateSurvey(ctx context.Context, survey *domain.Survey) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO surveys (
				survey_id, org_id, survey_title, survey_description, survey_type,
				start_date, end_date, start_time, end_time,
				is_mandatory, is_anonymous, add_to_library, rec_status, created_by, created_on
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			survey.ID, survey.OrgID, survey.Title, survey.Description, survey.Type,
			nullable(survey.StartDate), nullable(survey.EndDate),
			nullable(survey.StartTime), nullable(survey.EndTime),
			survey.IsMandatory, survey.IsAnonymous, survey.AddToLibrary, survey.RecStatus,
			survey.CreatedBy, survey.CreatedOn.UTC(),
		); err != nil {
			return wrapErr("insert survey", err)
		}
		if err := insertAudience(ctx, tx, survey.ID, survey.Audience); err != nil {
			return err
		}
		return insertQuestions(ctx, tx, survey.ID, survey.Questions)
	})
}

// SaveSurveyDraft implements ports.SurveyRepository.
func (s *Store) SaveSurveyDraft(ctx context.Context, survey *domain.Survey) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO surveys (
				survey_id, org_id, survey_title, survey_description, survey_type,
				start_date, end_date, start_time, end_time,
				is_mandatory, is_anonymous, add_to_library, rec_status, created_by, created_on
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (survey_id) DO UPDATE SET
				survey_title = excluded.survey_title,
				survey_description = excluded.survey_description,
				survey_type = excluded.survey_type,
				start_date = excluded.start_date,
				end_date = excluded.end_date,
				start_time = excluded.start_time,
				end_time = excluded.end_time,
				is_mandatory = excluded.is_mandatory,
				is_anonymous = excluded.is_anonymous,
				add_to_library = excluded.add_to_library,
				modified_on = ?`,
			survey.ID, survey.OrgID, survey.Title, survey.Description, survey.Type,
			nullable(survey.StartDate), nullable(survey.EndDate),
			nullable(survey.StartTime), nullable(survey.EndTime),
			survey.IsMandatory, survey.IsAnonymous, survey.AddToLibrary, domain.RecDraft,
			survey.CreatedBy, survey.CreatedOn.UTC(), nullableTime(survey.ModifiedOn),
		); err != nil {
			return wrapErr("upsert survey draft", err)
		}

		if survey.Audience != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM survey_audience WHERE survey_id = ?`, survey.ID); err != nil {
				return wrapErr("clear survey audience", err)
			}
			if err := insertAudience(ctx, tx, survey.ID, survey.Audience); err != nil {
				return err
			}
		}
		if survey.Questions != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM survey_questions WHERE survey_id = ?`, survey.ID); err != nil {
				return wrapErr("clear survey questions", err)
			}
			if err := insertQuestions(ctx, tx, survey.ID, survey.Questions); err != nil {
				return err
			}
		}
		return nil
	})
}

// Survey implements ports.SurveyRepository.
func (s *Store) Survey(ctx context.Context, id string) (*domain.Survey, error) {
	sv, err := scanSurvey(s.db.QueryRowContext(ctx, `
		SELECT `+surveyColumns+` FROM surveys s
		WHERE s.survey_id = ? AND s.rec_status IN ('A', 'D')`, id))
	if err != nil {
		return nil, wrapErr("select survey", err)
	}

	if sv.Questions, err = s.surveyQuestions(ctx, id); err != nil {
		return nil, err
	}
	if sv.Audience, err = s.surveyAudience(ctx, id); err != nil {
		return nil, err
	}
	return &sv, nil
}

func (s *Store) surveyQuestions(ctx context.Context, surveyID string) ([]domain.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT question_id, survey_id, question_number, question_text, answer_type, options, is_mandatory
		FROM survey_questions
		WHERE survey_id = ?
		ORDER BY question_number, question_id`, surveyID)
	if err != nil {
		return nil, fmt.Errorf("select survey questions: %w", err)
	}
	defer rows.Close()

	out := []domain.Question{}
	for rows.Next() {
		var (
			q       domain.Question
			options sql.NullString
		)
		if err := rows.Scan(&q.ID, &q.SurveyID, &q.Number, &q.Text, &q.AnswerType, &options, &q.Required); err != nil {
			return nil, fmt.Errorf("scan survey question: %w", err)
		}
		q.Options = parseOptions(options)
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate survey questions: %w", err)
	}
	return out, nil
}

// parseOptions decodes a stored option list. Missing or malformed JSON
// yields an empty list.
func parseOptions(raw sql.NullString) []string {
	options := []string{}
	if !raw.Valid || raw.String == "" {
		return options
	}
	if err := json.Unmarshal([]byte(raw.String), &options); err != nil || options == nil {
		return []string{}
	}
	return options
}

func (s *Store) surveyAudience(ctx context.Context, surveyID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id FROM survey_audience WHERE survey_id = ? ORDER BY user_id`, surveyID)
	if err != nil {
		return nil, fmt.Errorf("select survey audience: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("scan survey audience: %w", err)
		}
		out = append(out, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate survey audience: %w", err)
	}
	return out, nil
}

// SurveysForUser implements ports.SurveyRepository.
func (s *Store) SurveysForUser(ctx context.Context, userID string) ([]domain.Survey, error) {
	return s.querySurveys(ctx, "select surveys for user", `
		JOIN survey_audience a ON a.survey_id = s.survey_id
		WHERE a.user_id = ? AND s.rec_status = 'A'
		ORDER BY s.created_on DESC, s.survey_id`, userID)
}

// SurveysByCreator implements ports.SurveyRepository.
func (s *Store) SurveysByCreator(ctx context.Context, userID string, page int, limit int) ([]domain.Survey, error) {
	return s.querySurveys(ctx, "select surveys by creator", `
		WHERE s.created_by = ? AND s.rec_status = 'A'
		ORDER BY s.created_on DESC, s.survey_id
		LIMIT ? OFFSET ?`, userID, limit, (page-1)*limit)
}

// SurveyDrafts implements ports.SurveyRepository.
func (s *Store) SurveyDrafts(ctx context.Context, userID string) ([]domain.Survey, error) {
	return s.querySurveys(ctx, "select survey drafts", `
		WHERE s.created_by = ? AND s.rec_status = 'D'
		ORDER BY COALESCE(s.modified_on, s.created_on) DESC, s.survey_id`, userID)
}

// SaveAnswers implements ports.SurveyRepository.
func (s *Store) SaveAnswers(
	ctx context.Context, surveyID string, userID string, answers []domain.Answer, at time.Time,
) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var existing int
		if err := tx.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM survey_answers WHERE survey_id = ? AND user_id = ?`,
			surveyID, userID,
		).Scan(&existing); err != nil {
			return fmt.Errorf("check existing response: %w", err)
		}
		if existing > 0 {
			return fmt.Errorf("survey %s already answered by %s: %w", surveyID, userID, domain.ErrConflict)
		}

		for _, a := range answers {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO survey_answers (answer_id, survey_id, question_id, user_id, answer_text, created_on)
				VALUES (?, ?, ?, ?, ?, ?)`,
				uuid.NewString(), surveyID, a.QuestionID, userID, a.AnswerText, at.UTC(),
			); err != nil {
				return wrapErr("insert survey answer", err)
			}
		}
		return nil
	})
}
