package handler

import (
	"errors"
	"net/http"

	"github.com/evolverse/api/internal/model"
	"github.com/evolverse/api/internal/service"
)

// UserHandler handles account endpoints.
type UserHandler struct {
	userService *service.UserService
	userRepo    service.UserRepository
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService *service.UserService, userRepo service.UserRepository) *UserHandler {
	return &UserHandler{userService: userService, userRepo: userRepo}
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired):
			WriteError(w, http.StatusBadRequest, "Username is required")
		case errors.Is(err, service.ErrPasswordRequired):
			WriteError(w, http.StatusBadRequest, "Password is required")
		case errors.Is(err, service.ErrUsernameTaken):
			WriteError(w, http.StatusConflict, "Username already exists")
		default:
			WriteError(w, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}
	WriteJSON(w, http.StatusCreated, user)
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	if user == nil {
		WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	WriteJSON(w, http.StatusOK, user)
}
