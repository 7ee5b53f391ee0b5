package handlers

import (
	"context"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const (
	fieldAttachments = "attachments"
	fieldProofFile   = "proofFile"
)

// TaskHandler handles the task lifecycle routes.
type TaskHandler struct {
	tasks  ports.TaskService
	limits UploadLimits
}

// NewTaskHandler creates a new TaskHandler. limits bound the multipart
// bodies of task creation and submission.
func NewTaskHandler(tasks ports.TaskService, limits UploadLimits) *TaskHandler {
	return &TaskHandler{tasks: tasks, limits: limits}
}

// CreateTask handles POST /api/v1/tasks. The body is multipart: task fields
// as form values, assignedTo as a JSON array of {userId}, and files under
// "attachments".
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
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

	assignees, err := dto.ParseAssignees(r.PostFormValue("assignedTo"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	files, err := form.uploads(fieldAttachments, h.limits.MaxFiles)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	req := dto.TaskRequestFromForm(r.MultipartForm.Value)
	created, err := h.tasks.CreateTask(r.Context(), principal, domain.NewTask{
		Task:      req.ToDomain(),
		Assignees: assignees,
		Files:     files,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}

// ListTasks handles GET /api/v1/tasks/alltasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	query, err := parseTaskQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	page, err := h.tasks.ListTasks(r.Context(), query)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskPageResponse(page))
}

// SaveDraft handles POST /api/v1/tasks/save-draft.
func (h *TaskHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TaskRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	draft, err := h.tasks.SaveDraft(r.Context(), principal, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(draft))
}

// PublishDraft handles PUT /api/v1/tasks/publish/{taskId}.
func (h *TaskHandler) PublishDraft(w http.ResponseWriter, r *http.Request) {
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

	var req dto.TaskRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	published, err := h.tasks.PublishDraft(r.Context(), principal, taskID, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(published))
}

// GetTask handles GET /api/v1/tasks/{taskId}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathParam(r, "taskId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	task, err := h.tasks.GetTask(r.Context(), taskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// DeleteTask handles DELETE /api/v1/tasks/{taskId}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
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

	if err := h.tasks.DeleteTask(r.Context(), principal, taskID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Drafts handles GET /api/v1/tasks/drafts/{userId}.
func (h *TaskHandler) Drafts(w http.ResponseWriter, r *http.Request) {
	userID, err := pathParam(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	drafts, err := h.tasks.Drafts(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskSummaryResponses(drafts))
}

// CreatedBy handles GET /api/v1/tasks/created-by/{userId}.
func (h *TaskHandler) CreatedBy(w http.ResponseWriter, r *http.Request) {
	h.summaries(w, r, h.tasks.TasksCreatedBy)
}

// AssignedTo handles GET /api/v1/tasks/assigned-to/{userId}.
func (h *TaskHandler) AssignedTo(w http.ResponseWriter, r *http.Request) {
	h.summaries(w, r, h.tasks.TasksAssignedTo)
}

// ReviewedBy handles GET /api/v1/tasks/reviewed-by/{userId}.
func (h *TaskHandler) ReviewedBy(w http.ResponseWriter, r *http.Request) {
	h.summaries(w, r, h.tasks.TasksReviewedBy)
}

func (h *TaskHandler) summaries(
	w http.ResponseWriter, r *http.Request,
	list func(ctx context.Context, userID string, query domain.TaskQuery) (*domain.TaskPage[domain.TaskSummary], error),
) {
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

	page, err := list(r.Context(), userID, query)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskSummaryPageResponse(page))
}

// TaskDetails handles GET /api/v1/tasks/{taskId}/details.
func (h *TaskHandler) TaskDetails(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathParam(r, "taskId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	details, err := h.tasks.TaskDetails(r.Context(), taskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskDetailsResponse(details))
}

// AssigneeDashboard handles GET /api/v1/tasks/assigned-to/{userId}/categorized.
func (h *TaskHandler) AssigneeDashboard(w http.ResponseWriter, r *http.Request) {
	h.dashboard(w, r, h.tasks.AssigneeDashboard)
}

// ReviewerDashboard handles GET /api/v1/tasks/reviewed-by/{userId}/categorized.
func (h *TaskHandler) ReviewerDashboard(w http.ResponseWriter, r *http.Request) {
	h.dashboard(w, r, h.tasks.ReviewerDashboard)
}

func (h *TaskHandler) dashboard(
	w http.ResponseWriter, r *http.Request,
	load func(ctx context.Context, userID string) ([]domain.CategorizedTask, error),
) {
	userID, err := pathParam(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tasks, err := load(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCategorizedTaskResponses(tasks))
}

// SubmitTask handles POST /api/v1/tasks/{taskId}/submit. A multipart body
// may carry a proof file under "proofFile" and a commentText field; a JSON
// body carries only commentText.
func (h *TaskHandler) SubmitTask(w http.ResponseWriter, r *http.Request) {
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

	sub := domain.Submission{TaskID: taskID}
	if isMultipart(r) {
		form, err := parseMultipart(r, h.limits)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		defer form.close()

		proofs, err := form.uploads(fieldProofFile, 1)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		if len(proofs) == 1 {
			sub.Proof = &proofs[0]
		}
		sub.CommentText = r.PostFormValue("commentText")
	} else {
		var req dto.CommentRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		sub.CommentText = req.CommentText
	}

	outcome, err := h.tasks.SubmitTask(r.Context(), principal, sub)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskOutcomeResponse(outcome))
}

// ReviewTask handles POST /api/v1/tasks/{taskId}/review.
func (h *TaskHandler) ReviewTask(w http.ResponseWriter, r *http.Request) {
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

	var req dto.ReviewRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	outcome, err := h.tasks.ReviewTask(r.Context(), principal, domain.Review{
		TaskID:  taskID,
		Action:  domain.ReviewAction(strings.ToLower(strings.TrimSpace(req.Action))),
		Comment: req.Comment,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskOutcomeResponse(outcome))
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}
