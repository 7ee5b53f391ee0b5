package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidationError("taskTitle", "is required"), http.StatusBadRequest},
		{"bad credentials", fmt.Errorf("login: %w", domain.ErrUnauthorized), http.StatusUnauthorized},
		{"not the draft owner", domain.ErrForbidden, http.StatusForbidden},
		{"wrapped not found", fmt.Errorf("task t-1: %w", domain.ErrNotFound), http.StatusNotFound},
		{"handover already actioned", domain.ErrConflict, http.StatusConflict},
		{"object store down", fmt.Errorf("put: %w: %w", domain.ErrUnavailable, errors.New("dial tcp")), http.StatusBadGateway},
		{"deadline", fmt.Errorf("list tasks: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"anything else", errors.New("disk I/O error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dto.StatusFor(tt.err))
		})
	}
}

func TestNewErrorResponse_ClientErrorKeepsDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t-9", nil)
	err := fmt.Errorf("task t-9: %w", domain.ErrNotFound)

	got := dto.NewErrorResponse(r, err)

	assert.Equal(t, dto.ErrorResponse{
		Type:     "about:blank",
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   "task t-9: not found",
		Instance: "/api/v1/tasks/t-9",
	}, got)
}

func TestNewErrorResponse_ServerErrorHidesDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", nil)

	got := dto.NewErrorResponse(r, errors.New("sqlite: UNIQUE constraint failed: task.id"))

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.NotContains(t, got.Detail, "sqlite")

	got = dto.NewErrorResponse(r, fmt.Errorf("put: %w", domain.ErrUnavailable))
	assert.Contains(t, got.Detail, "file storage")
}

func TestNewErrorResponse_ValidationLocation(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"taskTitle":   "is required",
		"assignedTo":  "must be a JSON array",
		"description": "is too long",
	}}

	tests := []struct {
		name        string
		method      string
		contentType string
		want        []string
	}{
		{"json body", http.MethodPost, "application/json", []string{"body.assignedTo", "body.description", "body.taskTitle"}},
		{"multipart form", http.MethodPost, "multipart/form-data; boundary=x", []string{"form.assignedTo", "form.description", "form.taskTitle"}},
		{"query string", http.MethodGet, "", []string{"query.assignedTo", "query.description", "query.taskTitle"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(tt.method, "/api/v1/tasks", nil)
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}

			got := dto.NewErrorResponse(r, verr)

			locations := make([]string, len(got.Errors))
			for i, d := range got.Errors {
				locations[i] = d.Location
			}
			assert.Equal(t, tt.want, locations)
		})
	}
}

func TestNewErrorResponse_NoFieldsForOtherErrors(t *testing.T) {
	t.Parallel()

	got := dto.NewErrorResponse(httptest.NewRequest(http.MethodGet, "/api/v1/process", nil), domain.ErrForbidden)

	assert.Nil(t, got.Errors)
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/survey/submit", nil)
	r.Header.Set("Content-Type", "application/json")

	dto.WriteErrorResponse(w, r, domain.NewValidationError("surveyId", "is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []dto.ErrorDetail{{Location: "body.surveyId", Message: "is required"}}, resp.Errors)
}
