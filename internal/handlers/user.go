// internal/handlers/user.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

// UserHandler handles staff profile HTTP requests
type UserHandler struct {
	base
	service ports.UserService
}

// NewUserHandler creates a new staff profile handler
func NewUserHandler(service ports.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		base:    newBase(logger, "user"),
		service: service,
	}
}

// ListUsers handles GET /api/v1/users?role=&status=active|inactive|all&search=
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	query := ports.StaffQuery{Search: q.Get("search")}
	if role := q.Get("role"); role != "" && role != "all" {
		query.Role = domain.StaffRole(role)
	}
	switch q.Get("status") {
	case "", "all":
	case "active":
		active := true
		query.Active = &active
	case "inactive":
		active := false
		query.Active = &active
	default:
		h.respondError(w, http.StatusBadRequest, "status must be one of: active inactive all")
		return
	}

	result, err := h.service.List(r.Context(), canteenID, query)
	if err != nil {
		h.fail(w, r, err, "list users")
		return
	}
	if result.Items == nil {
		result.Items = []domain.StaffProfile{}
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetUser handles GET /api/v1/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	p, err := h.service.Get(r.Context(), canteenID, id)
	if err != nil {
		h.fail(w, r, err, "get user")
		return
	}

	h.respondJSON(w, http.StatusOK, p)
}

// UpdateUser handles PATCH /api/v1/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	var req UserUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	update := domain.StaffUpdate{
		FullName: req.FullName,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	}
	if req.Role != nil {
		role := domain.StaffRole(*req.Role)
		update.Role = &role
	}

	p, err := h.service.Update(r.Context(), canteenID, id, update)
	if err != nil {
		h.fail(w, r, err, "update user")
		return
	}

	h.respondJSON(w, http.StatusOK, p)
}

// UserUpdateRequest represents a partial staff profile update
type UserUpdateRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=200"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
	Role     *string `json:"role" validate:"omitempty,oneof=owner manager chef cashier"`
	IsActive *bool   `json:"is_active"`
}
