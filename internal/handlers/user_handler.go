// Package handlers translates HTTP requests into domain service calls.
// Request bodies are validated here, before the service layer is
// invoked, and responses expose explicit projections of the stored
// records, never raw store items.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oKauaDev/establo/internal/domain"
	"github.com/oKauaDev/establo/internal/service"
	"github.com/oKauaDev/establo/pkg/response"
	"github.com/oKauaDev/establo/pkg/validation"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	users  *service.UserService
	logger *zap.Logger
}

// NewUserHandler creates a user handler.
func NewUserHandler(users *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// CreateUserRequest is the body of POST /user/create.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=255"`
	Email string `json:"email" validate:"required,email"`
	Type  string `json:"type" validate:"required,oneof=owner customer"`
}

// EditUserRequest is the body of PUT /user/edit/{id}. Absent fields are
// left untouched.
type EditUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=3,max=255"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Type  *string `json:"type,omitempty" validate:"omitempty,oneof=owner customer"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

func projectUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Type:  string(user.Type),
	}
}

// Create handles POST /user/create.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Create(r.Context(), req.Name, req.Email, domain.UserType(req.Type))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, "user created successfully", projectUser(user))
}

// Get handles GET /user/find/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "user found successfully", projectUser(user))
}

// Edit handles PUT /user/edit/{id}.
func (h *UserHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req EditUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}

	user, err := h.users.Edit(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "user edited successfully", projectUser(user))
}

// Delete handles DELETE /user/delete/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "user deleted successfully", nil)
}

// List handles GET /user/list.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}

	projected := make([]UserResponse, 0, len(users))
	for i := range users {
		projected = append(projected, projectUser(&users[i]))
	}
	response.JSON(w, http.StatusOK, "users listed successfully", projected)
}
