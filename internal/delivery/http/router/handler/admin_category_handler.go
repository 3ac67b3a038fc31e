// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"faranah/internal/delivery/http/response"
	"faranah/internal/domain/entity"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminCategoryHandler holds dependencies for the back-office category handlers.
type AdminCategoryHandler struct {
	uc     usecase.CategoryAdminUsecase
	logger *slog.Logger
}

// NewAdminCategoryHandler is the constructor for AdminCategoryHandler, injected by Fx.
func NewAdminCategoryHandler(uc usecase.CategoryAdminUsecase, logger *slog.Logger) *AdminCategoryHandler {
	return &AdminCategoryHandler{uc: uc, logger: logger}
}

// categoryRequest is the create/update body. Photo is optional.
type categoryRequest struct {
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	Photo       entity.ImageUpload `json:"photo"`
}

// List handles GET /admin/categories.
func (h *AdminCategoryHandler) List(c echo.Context) error {
	views, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]categoryResponse, 0, len(views))
	for _, view := range views {
		out = append(out, toCategoryResponse(view))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Create handles POST /admin/categories.
func (h *AdminCategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.uc.Create(c.Request().Context(), &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Photo:       req.Photo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCategoryResponse(view), "Category created")
}

// Update handles PUT /admin/categories/:id.
func (h *AdminCategoryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category id")
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.uc.Update(c.Request().Context(), id, &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Photo:       req.Photo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(view), "Category updated")
}

// Delete handles DELETE /admin/categories/:id. Refused with 422 while
// products still reference the category.
func (h *AdminCategoryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
