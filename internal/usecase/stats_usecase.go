// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"faranah/internal/domain/entity"
)

// MonthlyPoint is one month of the current-year sales series. The series is
// always twelve points long; silent months carry a zero total.
type MonthlyPoint struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// StatsUsecase defines the reporting reads behind the admin dashboards.
type StatsUsecase interface {
	// Overview returns the dashboard headline block.
	Overview(ctx context.Context) (*entity.StatsOverview, error)

	// Products returns the product page headline block.
	Products(ctx context.Context) (*entity.ProductStats, error)

	// Orders returns the order page headline block.
	Orders(ctx context.Context) (*entity.OrderStats, error)

	// Users returns the user page headline block.
	Users(ctx context.Context) (*entity.UserStats, error)

	// CategoryDistribution returns revenue grouped by category. When paidOnly
	// is true only paid orders contribute.
	CategoryDistribution(ctx context.Context, paidOnly bool) ([]*entity.CategoryValue, error)

	// MonthlySales returns the current-year series, zero-filled over all
	// twelve months.
	MonthlySales(ctx context.Context) ([]*MonthlyPoint, error)
}
