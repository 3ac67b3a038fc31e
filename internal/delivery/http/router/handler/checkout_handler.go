// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"faranah/internal/delivery/http/response"
	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the order placement handler.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, logger: logger}
}

// checkoutItemRequest is one ordered line in the checkout body.
type checkoutItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// checkoutRequest is the POST /panier/commande body. Phone is the customer's
// own number; DeliveryPhone is the one to reach at the shipping address.
type checkoutRequest struct {
	GuestID       string                `json:"guest_id"`
	LastName      string                `json:"last_name" validate:"required"`
	FirstName     string                `json:"first_name" validate:"required"`
	Email         string                `json:"email" validate:"required,email"`
	Phone         string                `json:"phone" validate:"required"`
	City          string                `json:"city" validate:"required"`
	Address1      string                `json:"address1" validate:"required"`
	Address2      string                `json:"address2"`
	DeliveryPhone string                `json:"delivery_phone" validate:"required"`
	Items         []checkoutItemRequest `json:"items" validate:"required,min=1"`
}

// orderLineResponse is one order line JSON shape.
type orderLineResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// orderResponse is the order JSON shape.
type orderResponse struct {
	ID        string              `json:"id"`
	Status    string              `json:"status"`
	Total     float64             `json:"total"`
	Lines     []orderLineResponse `json:"lines"`
	CreatedAt string              `json:"created_at"`
}

// PlaceOrder handles POST /panier/commande.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]usecase.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return domainerrors.NewValidationError(domainerrors.FieldError{
				Field:   "items.product_id",
				Message: "invalid product id",
			})
		}
		items = append(items, usecase.CheckoutItem{
			ProductID: productID,
			Size:      item.Size,
			Quantity:  item.Quantity,
		})
	}

	// A missing owner is fine here: a checkout without a cart simply has
	// nothing to clear afterwards.
	owner, _ := cartOwner(c, req.GuestID)

	output, err := h.uc.PlaceOrder(c.Request().Context(), &usecase.CheckoutInput{
		Owner:         owner,
		LastName:      req.LastName,
		FirstName:     req.FirstName,
		Email:         req.Email,
		Phone:         req.Phone,
		City:          req.City,
		Address1:      req.Address1,
		Address2:      req.Address2,
		DeliveryPhone: req.DeliveryPhone,
		Items:         items,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(output.Order), "Order placed")
}

func toOrderResponse(order *entity.Order) orderResponse {
	out := orderResponse{
		ID:        order.ID.String(),
		Status:    order.Status.String(),
		Total:     order.Total,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
		Lines:     make([]orderLineResponse, 0, len(order.Lines)),
	}
	for _, line := range order.Lines {
		out.Lines = append(out.Lines, orderLineResponse{
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Size:        line.Size.String(),
			Quantity:    line.Quantity,
			Subtotal:    line.Subtotal,
		})
	}

	return out
}
