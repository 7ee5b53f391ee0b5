package handlers

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const msgHandoverRequested = "Handover request submitted successfully."

// HandoverHandler handles the task handover routes.
type HandoverHandler struct {
	handovers ports.HandoverService
}

// NewHandoverHandler creates a new HandoverHandler.
func NewHandoverHandler(handovers ports.HandoverService) *HandoverHandler {
	return &HandoverHandler{handovers: handovers}
}

// RequestHandover handles POST /api/v1/tasks/request-handover.
func (h *HandoverHandler) RequestHandover(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.HandoverRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if _, err := h.handovers.RequestHandover(r.Context(), principal, req.TaskIDs); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.MessageResponse{Message: msgHandoverRequested})
}

// PendingHandovers handles GET /api/v1/tasks/handover-requests.
func (h *HandoverHandler) PendingHandovers(w http.ResponseWriter, r *http.Request) {
	list, err := h.handovers.PendingHandovers(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToHandoverResponses(list))
}

// DecideHandover handles POST /api/v1/tasks/handover-requests/{handoverId}/action.
func (h *HandoverHandler) DecideHandover(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	handoverID, err := pathParam(r, "handoverId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.HandoverActionRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	action := domain.ReviewAction(strings.ToLower(strings.TrimSpace(req.Action)))
	if _, err := h.handovers.DecideHandover(r.Context(), principal, domain.HandoverDecision{
		HandoverID:    handoverID,
		Action:        action,
		NewEmployeeID: strings.TrimSpace(req.NewEmployeeID),
	}); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.HandoverDecisionMessage(action))
}
