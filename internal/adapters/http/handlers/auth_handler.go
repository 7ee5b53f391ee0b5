package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// AuthHandler handles registration, login, and the user directory routes.
type AuthHandler struct {
	auth ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	user, err := h.auth.Register(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToRegisterResponse(user))
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	session, err := h.auth.Login(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(session))
}

// Roles handles GET /api/v1/auth/roles.
func (h *AuthHandler) Roles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Roles())
}

// Employees handles GET /api/v1/auth/employees.
func (h *AuthHandler) Employees(w http.ResponseWriter, r *http.Request) {
	h.usersByRole(w, r, domain.RoleEmployee)
}

// Managers handles GET /api/v1/auth/managers.
func (h *AuthHandler) Managers(w http.ResponseWriter, r *http.Request) {
	h.usersByRole(w, r, domain.RoleManager)
}

func (h *AuthHandler) usersByRole(w http.ResponseWriter, r *http.Request, role domain.Role) {
	users, err := h.auth.UsersByRole(r.Context(), role)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserSummaryResponses(users))
}
