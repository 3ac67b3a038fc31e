// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"faranah/internal/delivery/http/response"
	"faranah/internal/domain/entity"
	"faranah/internal/domain/repository"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminUserHandler holds dependencies for the back-office account handlers.
type AdminUserHandler struct {
	uc     usecase.UserAdminUsecase
	logger *slog.Logger
}

// NewAdminUserHandler is the constructor for AdminUserHandler, injected by Fx.
func NewAdminUserHandler(uc usecase.UserAdminUsecase, logger *slog.Logger) *AdminUserHandler {
	return &AdminUserHandler{uc: uc, logger: logger}
}

// adminUserRequest is the create/update body. Password is optional on
// update; empty keeps the stored hash.
type adminUserRequest struct {
	LastName  string `json:"last_name" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password"`
	Role      string `json:"role" validate:"required,oneof=admin client"`
}

// List handles GET /admin/users with optional ?search= and ?role=.
func (h *AdminUserHandler) List(c echo.Context) error {
	users, err := h.uc.Search(c.Request().Context(), repository.UserSearchFilter{
		Search: c.QueryParam("search"),
		Role:   entity.Role(c.QueryParam("role")),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Create handles POST /admin/users.
func (h *AdminUserHandler) Create(c echo.Context) error {
	var req adminUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.Create(c.Request().Context(), toAdminUserInput(&req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "User created")
}

// Update handles PUT /admin/users/:id.
func (h *AdminUserHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user id")
	}

	var req adminUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.Update(c.Request().Context(), id, toAdminUserInput(&req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User updated")
}

// Delete handles DELETE /admin/users/:id.
func (h *AdminUserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func toAdminUserInput(req *adminUserRequest) *usecase.AdminUserInput {
	return &usecase.AdminUserInput{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Role:      req.Role,
	}
}
