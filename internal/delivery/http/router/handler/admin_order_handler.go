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

// AdminOrderHandler holds dependencies for the back-office order handlers.
type AdminOrderHandler struct {
	uc     usecase.OrderAdminUsecase
	logger *slog.Logger
}

// NewAdminOrderHandler is the constructor for AdminOrderHandler, injected by Fx.
func NewAdminOrderHandler(uc usecase.OrderAdminUsecase, logger *slog.Logger) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc, logger: logger}
}

// updateStatusRequest is the PUT /admin/orders/:id/status body.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// adminOrderResponse is the back-office order JSON shape, including the
// customer when preloaded.
type adminOrderResponse struct {
	orderResponse
	Customer *userResponse `json:"customer,omitempty"`
}

// List handles GET /admin/orders with optional ?search=.
func (h *AdminOrderHandler) List(c echo.Context) error {
	orders, err := h.uc.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]adminOrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toAdminOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Get handles GET /admin/orders/:id.
func (h *AdminOrderHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order id")
	}

	order, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAdminOrderResponse(order), "")
}

// UpdateStatus handles PUT /admin/orders/:id/status.
func (h *AdminOrderHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order id")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAdminOrderResponse(order), "Order status updated")
}

// Delete handles DELETE /admin/orders/:id.
func (h *AdminOrderHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func toAdminOrderResponse(order *entity.Order) adminOrderResponse {
	out := adminOrderResponse{orderResponse: toOrderResponse(order)}
	if order.Customer != nil {
		customer := toUserResponse(order.Customer)
		out.Customer = &customer
	}

	return out
}
