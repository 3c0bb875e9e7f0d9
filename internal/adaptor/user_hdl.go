package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-platform/internal/dto"
	"cinema-platform/internal/usecase"
	"cinema-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /api/admin/users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	users, err := h.service.Get(r.Context(), username)
	if err != nil {
		handleServiceError(w, h.log, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// GetUserByUsername handles GET /api/users/{username}. A customer can only
// read their own profile.
func (h *UserHandler) GetUserByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if principal, ok := utils.GetPrincipal(r.Context()); ok && !principal.IsAdmin() && principal.Username != username {
		utils.ResponseForbidden(w, "access denied")
		return
	}

	user, err := h.service.GetByUsername(r.Context(), username)
	if err != nil {
		handleServiceError(w, h.log, err, "get user by username")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// CreateUser handles POST /api/admin/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserDto
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	username, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, "success", map[string]string{"username": username})
}

// UpdateUser handles PUT /api/users/{username}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if principal, ok := utils.GetPrincipal(r.Context()); ok && !principal.IsAdmin() && principal.Username != username {
		utils.ResponseForbidden(w, "access denied")
		return
	}

	var req dto.UserDto
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	updated, err := h.service.Update(r.Context(), username, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]string{"username": updated})
}

// PatchUser handles PATCH /api/users/{username}
func (h *UserHandler) PatchUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if principal, ok := utils.GetPrincipal(r.Context()); ok && !principal.IsAdmin() && principal.Username != username {
		utils.ResponseForbidden(w, "access denied")
		return
	}

	body, err := readBody(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Patch(r.Context(), username, body)
	if err != nil {
		handleServiceError(w, h.log, err, "patch user")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// DeleteUser handles DELETE /api/admin/users/{username}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username, err := h.service.Delete(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]string{"username": username})
}
