package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// CommentHandler handles the /tasks/{taskId}/comments routes.
type CommentHandler struct {
	comments ports.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments ports.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// CreateComment handles POST /api/v1/tasks/{taskId}/comments.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
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

	var req dto.CommentRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.comments.AddComment(r.Context(), principal, domain.Comment{
		TaskID: taskID,
		Text:   req.CommentText,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCommentResponse(created))
}

// ListComments handles GET /api/v1/tasks/{taskId}/comments.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathParam(r, "taskId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := h.comments.Comments(r.Context(), taskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCommentResponses(list))
}

// UpdateComment handles PATCH /api/v1/tasks/{taskId}/comments/{commentId}/{recSeq}.
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, seq, err := rowKey(r, "commentId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CommentRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	updated, err := h.comments.EditComment(r.Context(), id, seq, req.CommentText)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCommentResponse(updated))
}

// RemoveComment handles DELETE /api/v1/tasks/{taskId}/comments/{commentId}/{recSeq}.
func (h *CommentHandler) RemoveComment(w http.ResponseWriter, r *http.Request) {
	id, seq, err := rowKey(r, "commentId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.comments.RemoveComment(r.Context(), id, seq); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
