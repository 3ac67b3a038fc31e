// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"faranah/internal/delivery/http/response"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the public catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// categoryResponse is the public category JSON shape.
type categoryResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	PhotoURL    string            `json:"photo_url"`
	Products    []productResponse `json:"products,omitempty"`
}

// productResponse is the public product JSON shape.
type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	CategoryID  string  `json:"category_id"`
	Category    string  `json:"category,omitempty"`
}

// ListCategories handles GET /categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	views, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]categoryResponse, 0, len(views))
	for _, view := range views {
		out = append(out, toCategoryResponse(view))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// GetCategory handles GET /categories/:id.
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category id")
	}

	view, err := h.uc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(view), "")
}

// ListProducts handles GET /produits, with an optional ?category=<name>
// filter. An unknown category name is a 404.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var categoryID *uuid.UUID
	if name := c.QueryParam("category"); name != "" {
		view, err := h.uc.GetCategoryByName(c.Request().Context(), name)
		if err != nil {
			return errors.WithStack(err)
		}
		categoryID = &view.Category.ID
	}

	views, err := h.uc.ListProducts(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]productResponse, 0, len(views))
	for _, view := range views {
		out = append(out, toProductResponse(view))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// GetProduct handles GET /produits/:id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	view, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(view), "")
}

func toCategoryResponse(view *usecase.CategoryView) categoryResponse {
	out := categoryResponse{
		ID:          view.Category.ID.String(),
		Name:        view.Category.Name,
		Description: view.Category.Description,
		PhotoURL:    view.PhotoURL,
	}
	for _, product := range view.Products {
		out.Products = append(out.Products, toProductResponse(product))
	}

	return out
}

func toProductResponse(view *usecase.ProductView) productResponse {
	out := productResponse{
		ID:          view.Product.ID.String(),
		Name:        view.Product.Name,
		Price:       view.Product.Price,
		Description: view.Product.Description,
		ImageURL:    view.ImageURL,
		CategoryID:  view.Product.CategoryID.String(),
	}
	if view.Product.Category != nil {
		out.Category = view.Product.Category.Name
	}

	return out
}
