package handlers

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const fieldFile = "file"

// AttachmentHandler handles the /taskAttachments routes.
type AttachmentHandler struct {
	attachments ports.AttachmentService
	limits      UploadLimits
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(attachments ports.AttachmentService, limits UploadLimits) *AttachmentHandler {
	return &AttachmentHandler{attachments: attachments, limits: limits}
}

// Upload handles POST /api/v1/taskAttachments. The multipart body carries
// the taskId field and one or more files under "file".
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	form, err := parseMultipart(r, h.limits)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	defer form.close()

	files, err := form.uploads(fieldFile, h.limits.MaxFiles)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	taskID := strings.TrimSpace(r.PostFormValue("taskId"))
	stored, err := h.attachments.Upload(r.Context(), principal, taskID, files)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToAttachmentResponses(stored))
}

// ListByTask handles GET /api/v1/taskAttachments?taskId=.
func (h *AttachmentHandler) ListByTask(w http.ResponseWriter, r *http.Request) {
	taskID := strings.TrimSpace(r.URL.Query().Get("taskId"))
	if taskID == "" {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"taskId": "query parameter is required"},
		})
		return
	}

	list, err := h.attachments.AttachmentsByTask(r.Context(), taskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAttachmentResponses(list))
}

// ListAll handles GET /api/v1/taskAttachments/all.
func (h *AttachmentHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.attachments.AllAttachments(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAttachmentResponses(list))
}

// GetAttachment handles GET /api/v1/taskAttachments/{attachmentId}/{recSeq}.
func (h *AttachmentHandler) GetAttachment(w http.ResponseWriter, r *http.Request) {
	id, seq, err := rowKey(r, "attachmentId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	a, err := h.attachments.GetAttachment(r.Context(), id, seq)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAttachmentResponse(a))
}

// RemoveAttachment handles DELETE /api/v1/taskAttachments/{attachmentId}/{recSeq}.
// The stored object is kept.
func (h *AttachmentHandler) RemoveAttachment(w http.ResponseWriter, r *http.Request) {
	id, seq, err := rowKey(r, "attachmentId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.attachments.RemoveAttachment(r.Context(), id, seq); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
