package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/mocks"
)

func newHandoverHandler(t *testing.T) (*handlers.HandoverHandler, *mocks.MockHandoverService) {
	t.Helper()
	svc := mocks.NewMockHandoverService(t)
	return handlers.NewHandoverHandler(svc), svc
}

func TestRequestHandover_Created(t *testing.T) {
	t.Parallel()
	h, svc := newHandoverHandler(t)

	svc.EXPECT().RequestHandover(mock.Anything, employee, []string{"t-1", "t-2"}).
		Return([]domain.Handover{{ID: "h-1"}, {ID: "h-2"}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/request-handover",
		jsonBody(t, dto.HandoverRequest{TaskIDs: []string{"t-1", "t-2"}}))
	h.RequestHandover(rec, asPrincipal(req, employee))

	requireStatus(t, rec, http.StatusCreated)
	assert.JSONEq(t, `{"message":"Handover request submitted successfully."}`, rec.Body.String())
}

func TestRequestHandover_EmptyList(t *testing.T) {
	t.Parallel()
	h, svc := newHandoverHandler(t)

	svc.EXPECT().RequestHandover(mock.Anything, employee, mock.Anything).
		Return(nil, domain.NewValidationError("taskIds", "must not be empty"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/request-handover", jsonBody(t, dto.HandoverRequest{}))
	h.RequestHandover(rec, asPrincipal(req, employee))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestPendingHandovers(t *testing.T) {
	t.Parallel()
	h, svc := newHandoverHandler(t)

	svc.EXPECT().PendingHandovers(mock.Anything).Return([]domain.Handover{{
		ID: "h-1", TaskID: "t-1", OriginalEmployeeID: "u-emp", Status: domain.HandoverPending,
		RequestedOn: testTime, TaskTitle: "Stock count", OriginalEmployeeName: "ada",
	}}, nil)

	rec := httptest.NewRecorder()
	h.PendingHandovers(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/handover-requests", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.HandoverResponse](t, rec)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Pending", resp[0].RequestStatus)
}

func TestDecideHandover(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        dto.HandoverActionRequest
		setup       func(svc *mocks.MockHandoverService)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "approve",
			body: dto.HandoverActionRequest{Action: "Approve", NewEmployeeID: " u-2 "},
			setup: func(svc *mocks.MockHandoverService) {
				svc.EXPECT().DecideHandover(mock.Anything, admin, domain.HandoverDecision{
					HandoverID: "h-1", Action: domain.ActionApprove, NewEmployeeID: "u-2",
				}).Return(&domain.Handover{ID: "h-1", Status: domain.HandoverApproved}, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Request has been successfully approved.",
		},
		{
			name: "reject",
			body: dto.HandoverActionRequest{Action: "reject"},
			setup: func(svc *mocks.MockHandoverService) {
				svc.EXPECT().DecideHandover(mock.Anything, admin, mock.Anything).
					Return(&domain.Handover{ID: "h-1", Status: domain.HandoverRejected}, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Request has been successfully rejected.",
		},
		{
			name: "already actioned",
			body: dto.HandoverActionRequest{Action: "reject"},
			setup: func(svc *mocks.MockHandoverService) {
				svc.EXPECT().DecideHandover(mock.Anything, admin, mock.Anything).Return(nil, domain.ErrConflict)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newHandoverHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/handover-requests/h-1/action", jsonBody(t, tt.body))
			req = withChiParams(req, map[string]string{"handoverId": "h-1"})
			h.DecideHandover(rec, asPrincipal(req, admin))

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeJSON[dto.MessageResponse](t, rec).Message)
			}
		})
	}
}
