// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"faranah/internal/domain/entity"
)

// StatsRepository defines the read-only reporting queries backing the admin
// dashboards. Implementations may route these to a read replica.
type StatsRepository interface {
	// Overview returns paid sales total, 30-day new users and product count.
	Overview(ctx context.Context) (*entity.StatsOverview, error)

	// ProductStats returns the product page headline numbers.
	ProductStats(ctx context.Context) (*entity.ProductStats, error)

	// OrderStats returns the order page headline numbers.
	OrderStats(ctx context.Context) (*entity.OrderStats, error)

	// UserStats returns the user page headline numbers.
	UserStats(ctx context.Context) (*entity.UserStats, error)

	// CategoryDistribution returns revenue grouped by category. When paidOnly
	// is true only paid orders contribute.
	CategoryDistribution(ctx context.Context, paidOnly bool) ([]*entity.CategoryValue, error)

	// MonthlySales returns the per-month sales sums recorded for a year.
	// Months with no orders are absent; callers zero-fill.
	MonthlySales(ctx context.Context, year int) ([]*entity.MonthlySales, error)
}
