package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/mocks"
)

func newEventHandler(t *testing.T) (*handlers.EventHandler, *mocks.MockEventService) {
	t.Helper()
	svc := mocks.NewMockEventService(t)
	return handlers.NewEventHandler(svc), svc
}

func TestProcesses(t *testing.T) {
	t.Parallel()
	h, svc := newEventHandler(t)

	svc.EXPECT().ActiveProcesses(mock.Anything).Return([]domain.Process{{ID: "p-1", Name: "Onboarding"}}, nil)

	rec := httptest.NewRecorder()
	h.Processes(rec, httptest.NewRequest(http.MethodGet, "/api/v1/process", nil))

	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `[{"processId":"p-1","processName":"Onboarding"}]`, rec.Body.String())
}

func TestEvents_FilteredByCallerRole(t *testing.T) {
	t.Parallel()
	h, svc := newEventHandler(t)

	svc.EXPECT().EventsForRole(mock.Anything, domain.RoleManager).
		Return([]domain.Event{{ID: "e-1", Name: "Clock in", RecStatus: domain.RecActive, ProcessID: "p-1"}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/getEvents", nil)
	h.Events(rec, asPrincipal(req, manager))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.EventResponse](t, rec)
	assert.Equal(t, "Clock in", resp[0].EventName)
}

func TestEvents_Unauthenticated(t *testing.T) {
	t.Parallel()
	h, _ := newEventHandler(t)

	rec := httptest.NewRecorder()
	h.Events(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events/getEvents", nil))

	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestVerifyAccess(t *testing.T) {
	t.Parallel()

	t.Run("results per event", func(t *testing.T) {
		t.Parallel()
		h, svc := newEventHandler(t)

		svc.EXPECT().VerifyAccess(mock.Anything, employee, mock.MatchedBy(func(c domain.AccessCheck) bool {
			return len(c.EventIDs) == 2 &&
				c.Location.Latitude != nil && *c.Location.Latitude == 51.5 &&
				c.Location.Longitude != nil && *c.Location.Longitude == -0.12
		})).Return([]domain.AccessResult{
			{EventID: "e-1", Access: true},
			{EventID: "e-2", Access: false, Reason: domain.ReasonOutsideGeofence},
		}, nil)

		body := `{"eventIds":["e-1","e-2"],"userLatitude":51.5,"userLongitude":-0.12}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events/bulk-verify-access", strings.NewReader(body))
		h.VerifyAccess(rec, asPrincipal(req, employee))

		requireStatus(t, rec, http.StatusOK)
		assert.JSONEq(t, `[
			{"eventId":"e-1","access":true},
			{"eventId":"e-2","access":false,"reason":"Not within location fence."}
		]`, rec.Body.String())
	})

	t.Run("latitude out of range", func(t *testing.T) {
		t.Parallel()
		h, _ := newEventHandler(t)

		body := `{"eventIds":["e-1"],"userLatitude":91,"userLongitude":0}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events/bulk-verify-access", strings.NewReader(body))
		h.VerifyAccess(rec, asPrincipal(req, employee))

		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("no location still evaluates", func(t *testing.T) {
		t.Parallel()
		h, svc := newEventHandler(t)

		svc.EXPECT().VerifyAccess(mock.Anything, employee, mock.MatchedBy(func(c domain.AccessCheck) bool {
			return c.Location.Latitude == nil && c.Location.Longitude == nil
		})).Return([]domain.AccessResult{{EventID: "e-1", Access: false, Reason: domain.ReasonNoLocation}}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events/bulk-verify-access", strings.NewReader(`{"eventIds":["e-1"]}`))
		h.VerifyAccess(rec, asPrincipal(req, employee))

		requireStatus(t, rec, http.StatusOK)
	})
}
