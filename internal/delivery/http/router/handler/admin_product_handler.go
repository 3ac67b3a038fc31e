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

// AdminProductHandler holds dependencies for the back-office product handlers.
type AdminProductHandler struct {
	uc     usecase.ProductAdminUsecase
	logger *slog.Logger
}

// NewAdminProductHandler is the constructor for AdminProductHandler, injected by Fx.
func NewAdminProductHandler(uc usecase.ProductAdminUsecase, logger *slog.Logger) *AdminProductHandler {
	return &AdminProductHandler{uc: uc, logger: logger}
}

// productRequest is the create/update body. Image is the inline base64
// data URI upload; empty on update keeps the stored image.
type productRequest struct {
	Name        string             `json:"name" validate:"required"`
	Price       float64            `json:"price" validate:"gt=0"`
	Description string             `json:"description"`
	CategoryID  string             `json:"category_id" validate:"required"`
	Image       entity.ImageUpload `json:"image"`
}

// productSalesResponse is one admin product table row.
type productSalesResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Sales        int64   `json:"sales"`
}

// List handles GET /admin/products with optional ?search= and ?category=.
func (h *AdminProductHandler) List(c echo.Context) error {
	filter := repository.ProductSearchFilter{Search: c.QueryParam("search")}
	if raw := c.QueryParam("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid category id")
		}
		filter.CategoryID = &categoryID
	}

	views, err := h.uc.ListSales(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]productSalesResponse, 0, len(views))
	for _, view := range views {
		out = append(out, toProductSalesResponse(view))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Get handles GET /admin/products/:id.
func (h *AdminProductHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	view, err := h.uc.GetSales(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductSalesResponse(view), "")
}

// Create handles POST /admin/products.
func (h *AdminProductHandler) Create(c echo.Context) error {
	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	view, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(view), "Product created")
}

// Update handles PUT /admin/products/:id.
func (h *AdminProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	view, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(view), "Product updated")
}

// Delete handles DELETE /admin/products/:id.
func (h *AdminProductHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// bindInput parses the shared create/update body. Errors are returned for
// the central error handler to format.
func (h *AdminProductHandler) bindInput(c echo.Context) (*usecase.ProductInput, error) {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	categoryID := uuid.Nil
	if req.CategoryID != "" {
		parsed, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid category id")
		}
		categoryID = parsed
	}

	return &usecase.ProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		CategoryID:  categoryID,
		Image:       req.Image,
	}, nil
}

func toProductSalesResponse(view *usecase.ProductSalesView) productSalesResponse {
	row := view.ProductSales

	return productSalesResponse{
		ID:           row.Product.ID.String(),
		Name:         row.Product.Name,
		Price:        row.Product.Price,
		Description:  row.Product.Description,
		ImageURL:     view.ImageURL,
		CategoryID:   row.Product.CategoryID.String(),
		CategoryName: row.CategoryName,
		Sales:        row.Sales,
	}
}
