package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// AssignmentHandler handles the /tasks/{taskId}/assignments routes and the
// per-user assignment list.
type AssignmentHandler struct {
	assignments ports.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignments ports.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// CreateAssignment handles POST /api/v1/tasks/{taskId}/assignments.
func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	taskID, err := pathParam(r, "taskId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AssignmentRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.assignments.CreateAssignment(r.Context(), principal, req.ToDomain(taskID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToAssignmentResponse(created))
}

// ListByTask handles GET /api/v1/tasks/{taskId}/assignments.
func (h *AssignmentHandler) ListByTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathParam(r, "taskId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := h.assignments.AssignmentsByTask(r.Context(), taskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAssignmentResponses(list))
}

// ListByUser handles GET /api/v1/tasks/user/{userId} and
// GET /api/v1/tasks/{taskId}/assignments/user/{userId}.
func (h *AssignmentHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathParam(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	query, err := parseTaskQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	page, err := h.assignments.AssignmentsByUser(r.Context(), userID, query)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAssignmentPageResponse(page))
}

// UpdateAssignment handles PATCH /api/v1/tasks/{taskId}/assignments/{assignmentId}/{recSeq}.
func (h *AssignmentHandler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, seq, err := rowKey(r, "assignmentId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AssignmentPatchRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	updated, err := h.assignments.UpdateAssignment(r.Context(), id, seq, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAssignmentResponse(updated))
}

// RemoveAssignment handles DELETE /api/v1/tasks/{taskId}/assignments/{assignmentId}/{recSeq}.
func (h *AssignmentHandler) RemoveAssignment(w http.ResponseWriter, r *http.Request) {
	id, seq, err := rowKey(r, "assignmentId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.assignments.RemoveAssignment(r.Context(), id, seq); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
