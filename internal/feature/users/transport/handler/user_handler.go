// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"userhub_backend/internal/feature/users/domain/entity"
	"userhub_backend/internal/feature/users/transport/http/dto"
	"userhub_backend/internal/feature/users/usecase"
)

// UserUsecase defines the directory operations consumed by the HTTP layer.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	// CreateUser registers a new user and returns the stored record.
	CreateUser(ctx context.Context, name, email string, phone *string) (*entity.User, error)
	// ListUsers returns all users, or only the exact email match when email is non-empty.
	ListUsers(ctx context.Context, email string) ([]entity.User, error)
	// UpdateUser applies a partial update to an existing user.
	UpdateUser(ctx context.Context, id string, patch usecase.UserPatch) (*entity.User, error)
	// DeleteUser removes a user permanently.
	DeleteUser(ctx context.Context, id string) error
}

// UserHandler handles HTTP requests for the user directory.
// It depends on the UserUsecase interface and speaks JSON.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler instance.
// Constructor for dependency injection.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// toResponse converts a domain user into its API representation.
func toResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}

// Create handles POST /users.
// - binds the request JSON to CreateUserReq
// - returns 400 with all field messages on validation failure
// - returns 409 when the email is already taken
// - returns 201 with the created user on success
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: validationMessages(err)})
		return
	}
	user, err := h.users.CreateUser(c.Request.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("create user conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "email already exists"})
			return
		}
		slog.Error("create user failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	slog.Info("user created", "id", user.ID, "email", user.Email)
	c.JSON(http.StatusCreated, toResponse(user))
}

// List handles GET /users.
// An optional ?email= query narrows the result to an exact match; an empty
// result is an empty array, never null.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context(), c.Query("email"))
	if err != nil {
		slog.Error("list users failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toResponse(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Update handles PUT /users/:id.
// Provided fields run through the same validation rules as on create; absent
// fields keep their stored values.
// - returns 400 with all field messages on validation failure
// - returns 404 when no user matches the ID
// - returns 409 when the new email is already taken
// - returns 200 with the updated user on success
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update user validation failed", "error", err, "id", id, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: validationMessages(err)})
		return
	}
	patch := usecase.UserPatch{Name: req.Name, Email: req.Email, Phone: req.Phone}
	user, err := h.users.UpdateUser(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			slog.Warn("update user not found", "id", id, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("update user conflict", "id", id, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "email already exists"})
		default:
			slog.Error("update user failed", "error", err, "id", id, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		}
		return
	}
	slog.Info("user updated", "id", user.ID)
	c.JSON(http.StatusOK, toResponse(user))
}

// Delete handles DELETE /users/:id.
// - returns 404 when no user matches the ID
// - returns 200 with a plain-text confirmation on success
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			slog.Warn("delete user not found", "id", id, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("delete user failed", "error", err, "id", id, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	slog.Info("user deleted", "id", id)
	c.String(http.StatusOK, "user deleted successfully")
}
