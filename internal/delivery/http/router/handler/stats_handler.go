// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"faranah/internal/delivery/http/response"
	"faranah/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler holds dependencies for the reporting handlers.
type StatsHandler struct {
	uc     usecase.StatsUsecase
	logger *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{uc: uc, logger: logger}
}

// Overview handles GET /admin/statistics/overview.
func (h *StatsHandler) Overview(c echo.Context) error {
	overview, err := h.uc.Overview(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"total_sales":    overview.TotalSales,
		"new_users":      overview.NewUsers,
		"total_products": overview.TotalProducts,
	}, "")
}

// ProductStats handles GET /admin/products/stats.
func (h *StatsHandler) ProductStats(c echo.Context) error {
	stats, err := h.uc.Products(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"total_products": stats.TotalProducts,
		"new_sales":      stats.NewSales,
		"total_revenue":  stats.TotalRevenue,
	}, "")
}

// OrderStats handles GET /admin/orders/stats.
func (h *StatsHandler) OrderStats(c echo.Context) error {
	stats, err := h.uc.Orders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"total_orders":  stats.TotalOrders,
		"new_orders":    stats.NewOrders,
		"total_revenue": stats.TotalRevenue,
	}, "")
}

// UserStats handles GET /admin/users/stats.
func (h *StatsHandler) UserStats(c echo.Context) error {
	stats, err := h.uc.Users(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"total_users":  stats.TotalUsers,
		"new_users":    stats.NewUsers,
		"admin_users":  stats.AdminUsers,
		"client_users": stats.ClientUsers,
	}, "")
}

// CategoryDistribution handles GET /admin/statistics/categories. Revenue is
// restricted to paid orders unless ?all=true.
func (h *StatsHandler) CategoryDistribution(c echo.Context) error {
	paidOnly := c.QueryParam("all") != "true"

	distribution, err := h.uc.CategoryDistribution(c.Request().Context(), paidOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]map[string]any, 0, len(distribution))
	for _, slice := range distribution {
		out = append(out, map[string]any{
			"category_id": slice.CategoryID,
			"name":        slice.Name,
			"value":       slice.Value,
		})
	}

	return response.Success(c, http.StatusOK, out, "")
}

// MonthlySales handles GET /admin/statistics/monthly.
func (h *StatsHandler) MonthlySales(c echo.Context) error {
	points, err := h.uc.MonthlySales(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, points, "")
}
