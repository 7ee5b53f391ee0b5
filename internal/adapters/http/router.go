// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// Handlers groups the route handlers mounted by NewRouter.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Task       *handlers.TaskHandler
	Assignment *handlers.AssignmentHandler
	Comment    *handlers.CommentHandler
	Attachment *handlers.AttachmentHandler
	Handover   *handlers.HandoverHandler
	Survey     *handlers.SurveyHandler
	Event      *handlers.EventHandler
	Health     *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. authenticate guards
// every /api/v1 route except login, registration, and the two lookup lists.
func NewRouter(
	h Handlers,
	authenticate func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Public.
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/register", h.Auth.Register)
		r.Get("/auth/roles", h.Auth.Roles)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/auth/employees", h.Auth.Employees)
			r.Get("/auth/managers", h.Auth.Managers)

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", h.Task.CreateTask)
				r.Get("/alltasks", h.Task.ListTasks)
				r.Post("/save-draft", h.Task.SaveDraft)
				r.Put("/publish/{taskId}", h.Task.PublishDraft)
				r.Get("/user/{userId}", h.Assignment.ListByUser)
				r.Get("/drafts/{userId}", h.Task.Drafts)
				r.Get("/created-by/{userId}", h.Task.CreatedBy)
				r.Get("/assigned-to/{userId}", h.Task.AssignedTo)
				r.Get("/assigned-to/{userId}/categorized", h.Task.AssigneeDashboard)
				r.Get("/reviewed-by/{userId}", h.Task.ReviewedBy)
				r.Get("/reviewed-by/{userId}/categorized", h.Task.ReviewerDashboard)

				r.Post("/request-handover", h.Handover.RequestHandover)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(domain.RoleAdmin))
					r.Get("/handover-requests", h.Handover.PendingHandovers)
					r.Post("/handover-requests/{handoverId}/action", h.Handover.DecideHandover)
				})

				r.Get("/{taskId}", h.Task.GetTask)
				r.Delete("/{taskId}", h.Task.DeleteTask)
				r.Get("/{taskId}/details", h.Task.TaskDetails)
				r.Post("/{taskId}/submit", h.Task.SubmitTask)
				r.Post("/{taskId}/review", h.Task.ReviewTask)

				r.Route("/{taskId}/assignments", func(r chi.Router) {
					r.Post("/", h.Assignment.CreateAssignment)
					r.Get("/", h.Assignment.ListByTask)
					r.Patch("/{assignmentId}/{recSeq}", h.Assignment.UpdateAssignment)
					r.Delete("/{assignmentId}/{recSeq}", h.Assignment.RemoveAssignment)
				})

				r.Route("/{taskId}/comments", func(r chi.Router) {
					r.Post("/", h.Comment.CreateComment)
					r.Get("/", h.Comment.ListComments)
					r.Patch("/{commentId}/{recSeq}", h.Comment.UpdateComment)
					r.Delete("/{commentId}/{recSeq}", h.Comment.RemoveComment)
				})
			})

			r.Route("/taskAttachments", func(r chi.Router) {
				r.Post("/", h.Attachment.Upload)
				r.Get("/", h.Attachment.ListByTask)
				r.Get("/all", h.Attachment.ListAll)
				r.Get("/{attachmentId}/{recSeq}", h.Attachment.GetAttachment)
				r.Delete("/{attachmentId}/{recSeq}", h.Attachment.RemoveAttachment)
			})

			r.Get("/events/getEvents", h.Event.Events)
			r.Post("/events/bulk-verify-access", h.Event.VerifyAccess)
			r.Get("/process", h.Event.Processes)
		})

		r.Route("/survey", func(r chi.Router) {
			r.Get("/types", h.Survey.Types)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Post("/create", h.Survey.CreateSurvey)
				r.Post("/save-draft", h.Survey.SaveDraft)
				r.Post("/submit", h.Survey.Submit)
				r.Get("/my-surveys/{userId}", h.Survey.ForUser)
				r.Get("/created-surveys/{userId}", h.Survey.ByCreator)
				r.Get("/drafts/{userId}", h.Survey.Drafts)
				r.Get("/{surveyId}", h.Survey.GetSurvey)
			})
		})
	})

	return r
}
