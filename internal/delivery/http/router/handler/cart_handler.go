// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	httpmiddleware "faranah/internal/delivery/http/middleware"
	"faranah/internal/delivery/http/response"
	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for the shopping cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// addToCartRequest is the POST /panier body. GuestID identifies the cart of
// an unauthenticated shopper.
type addToCartRequest struct {
	GuestID   string `json:"guest_id"`
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// updateQuantityRequest is the PUT /panier/:productID body.
type updateQuantityRequest struct {
	GuestID  string `json:"guest_id"`
	Size     string `json:"size" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

// changeSizeRequest is the PUT /panier/size/:productID body.
type changeSizeRequest struct {
	GuestID string `json:"guest_id"`
	OldSize string `json:"old_size" validate:"required"`
	NewSize string `json:"new_size" validate:"required"`
}

// cartLineResponse is the cart line JSON shape.
type cartLineResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// List handles GET /panier. Guests pass ?guest_id=.
func (h *CartHandler) List(c echo.Context) error {
	owner, err := cartOwner(c, "")
	if err != nil {
		return err
	}

	lines, err := h.uc.List(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]cartLineResponse, 0, len(lines))
	total := 0.0
	for _, line := range lines {
		out = append(out, cartLineResponse{
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Size:        line.Size.String(),
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Total:       line.Total,
		})
		total += line.Total
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"lines": out,
		"total": total,
	}, "")
}

// Add handles POST /panier.
func (h *CartHandler) Add(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	owner, err := cartOwner(c, req.GuestID)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	if err := h.uc.Add(c.Request().Context(), &usecase.AddToCartInput{
		Owner:     owner,
		ProductID: productID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item added to cart")
}

// UpdateQuantity handles PUT /panier/:productID.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	owner, err := cartOwner(c, req.GuestID)
	if err != nil {
		return err
	}

	if err := h.uc.UpdateQuantity(c.Request().Context(), owner, productID, req.Size, req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Quantity updated")
}

// ChangeSize handles PUT /panier/size/:productID.
func (h *CartHandler) ChangeSize(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	var req changeSizeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	owner, err := cartOwner(c, req.GuestID)
	if err != nil {
		return err
	}

	if err := h.uc.ChangeSize(c.Request().Context(), &usecase.ChangeSizeInput{
		Owner:     owner,
		ProductID: productID,
		OldSize:   req.OldSize,
		NewSize:   req.NewSize,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Size updated")
}

// Remove handles DELETE /panier/:productID. The size rides on ?size=.
func (h *CartHandler) Remove(c echo.Context) error {
	owner, err := cartOwner(c, "")
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	if err := h.uc.Remove(c.Request().Context(), owner, productID, c.QueryParam("size")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed")
}

// Clear handles POST /panier/clear. Guests pass ?guest_id=.
func (h *CartHandler) Clear(c echo.Context) error {
	owner, err := cartOwner(c, "")
	if err != nil {
		return err
	}

	if err := h.uc.Clear(c.Request().Context(), owner); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}

// cartOwner resolves the cart identity: the authenticated user wins, then the
// client-generated guest_id carried in the body or the query string.
func cartOwner(c echo.Context, guestID string) (entity.OwnerKey, error) {
	if userID, ok := c.Get(httpmiddleware.ContextKeyUserID).(uuid.UUID); ok {
		return entity.OwnerKeyForUser(userID), nil
	}

	if guestID == "" {
		guestID = c.QueryParam("guest_id")
	}
	if guestID != "" {
		return entity.OwnerKey(guestID), nil
	}

	return "", domainerrors.NewValidationError(domainerrors.FieldError{
		Field:   "guest_id",
		Message: "a guest_id or authentication is required",
	})
}
