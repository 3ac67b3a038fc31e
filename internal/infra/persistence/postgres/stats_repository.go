// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"faranah/internal/domain/entity"
	"faranah/internal/domain/repository"
	"faranah/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// newWindow is the rolling window behind every "new" counter.
const newWindow = 30 * 24 * time.Hour

// statsRepository implements the repository.StatsRepository interface.
// Every query is read-only and routed to a replica when one is configured.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{
		db: db,
	}
}

// read returns a session pinned to the read pool.
func (repo *statsRepository) read(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

// Overview returns paid sales total, 30-day new users and product count.
func (repo *statsRepository) Overview(ctx context.Context) (*entity.StatsOverview, error) {
	overview := &entity.StatsOverview{}
	since := time.Now().Add(-newWindow)

	if err := repo.read(ctx).
		Model(&model.OrderModel{}).
		Where("status = ?", entity.OrderStatusPaid.String()).
		Select("COALESCE(SUM(total), 0)").
		Scan(&overview.TotalSales).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum paid sales")
	}

	if err := repo.read(ctx).
		Model(&model.UserModel{}).
		Where("created_at >= ?", since).
		Count(&overview.NewUsers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count new users")
	}

	if err := repo.read(ctx).
		Model(&model.ProductModel{}).
		Count(&overview.TotalProducts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	return overview, nil
}

// ProductStats returns the product page headline numbers.
func (repo *statsRepository) ProductStats(ctx context.Context) (*entity.ProductStats, error) {
	stats := &entity.ProductStats{}
	since := time.Now().Add(-newWindow)

	if err := repo.read(ctx).
		Model(&model.ProductModel{}).
		Count(&stats.TotalProducts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	if err := repo.read(ctx).
		Model(&model.OrderModel{}).
		Where("status = ? AND created_at >= ?", entity.OrderStatusPaid.String(), since).
		Count(&stats.NewSales).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count recent paid orders")
	}

	if err := repo.read(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum order revenue")
	}

	return stats, nil
}

// OrderStats returns the order page headline numbers.
func (repo *statsRepository) OrderStats(ctx context.Context) (*entity.OrderStats, error) {
	stats := &entity.OrderStats{}
	since := time.Now().Add(-newWindow)

	if err := repo.read(ctx).
		Model(&model.OrderModel{}).
		Count(&stats.TotalOrders).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	if err := repo.read(ctx).
		Model(&model.OrderModel{}).
		Where("created_at >= ?", since).
		Count(&stats.NewOrders).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count recent orders")
	}

	if err := repo.read(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum order revenue")
	}

	return stats, nil
}

// UserStats returns the user page headline numbers.
func (repo *statsRepository) UserStats(ctx context.Context) (*entity.UserStats, error) {
	stats := &entity.UserStats{}
	since := time.Now().Add(-newWindow)

	if err := repo.read(ctx).
		Model(&model.UserModel{}).
		Count(&stats.TotalUsers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	if err := repo.read(ctx).
		Model(&model.UserModel{}).
		Where("created_at >= ?", since).
		Count(&stats.NewUsers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count new users")
	}

	if err := repo.read(ctx).
		Model(&model.UserModel{}).
		Where("role = ?", entity.RoleAdmin.String()).
		Count(&stats.AdminUsers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count admin users")
	}

	if err := repo.read(ctx).
		Model(&model.UserModel{}).
		Where("role = ?", entity.RoleClient.String()).
		Count(&stats.ClientUsers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count client users")
	}

	return stats, nil
}

// CategoryDistribution returns line revenue grouped by category. When
// paidOnly is true only paid orders contribute.
func (repo *statsRepository) CategoryDistribution(ctx context.Context, paidOnly bool) ([]*entity.CategoryValue, error) {
	query := repo.read(ctx).
		Model(&model.OrderLineModel{}).
		Select("categories.id::text AS category_id, categories.name AS name, COALESCE(SUM(order_lines.subtotal), 0) AS value").
		Joins("JOIN products ON products.id = order_lines.product_id").
		Joins("JOIN categories ON categories.id = products.category_id").
		Group("categories.id, categories.name").
		Order("value DESC")

	if paidOnly {
		query = query.
			Joins("JOIN orders ON orders.id = order_lines.order_id").
			Where("orders.status = ?", entity.OrderStatusPaid.String())
	}

	var values []*entity.CategoryValue
	if err := query.Scan(&values).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute category distribution")
	}

	return values, nil
}

// MonthlySales returns the per-month sales sums recorded for a year.
// Months with no orders are absent; callers zero-fill.
func (repo *statsRepository) MonthlySales(ctx context.Context, year int) ([]*entity.MonthlySales, error) {
	var rows []struct {
		Month int
		Total float64
	}

	if err := repo.read(ctx).
		Model(&model.OrderModel{}).
		Select("EXTRACT(MONTH FROM created_at)::int AS month, COALESCE(SUM(total), 0) AS total").
		Where("EXTRACT(YEAR FROM created_at) = ?", year).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute monthly sales")
	}

	sales := make([]*entity.MonthlySales, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, &entity.MonthlySales{
			Month: time.Month(row.Month),
			Total: row.Total,
		})
	}

	return sales, nil
}
