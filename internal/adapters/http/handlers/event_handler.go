package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// EventHandler handles the process, event, and fence-check routes.
type EventHandler struct {
	events ports.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(events ports.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// Processes handles GET /api/v1/process.
func (h *EventHandler) Processes(w http.ResponseWriter, r *http.Request) {
	list, err := h.events.ActiveProcesses(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProcessResponses(list))
}

// Events handles GET /api/v1/events/getEvents. Events are filtered by the
// caller's role.
func (h *EventHandler) Events(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := h.events.EventsForRole(r.Context(), principal.Role)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEventResponses(list))
}

// VerifyAccess handles POST /api/v1/events/bulk-verify-access.
func (h *EventHandler) VerifyAccess(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.VerifyAccessRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	results, err := h.events.VerifyAccess(r.Context(), principal, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAccessResultResponses(results))
}
