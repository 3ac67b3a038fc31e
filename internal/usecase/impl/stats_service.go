// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"faranah/internal/domain/entity"
	"faranah/internal/domain/repository"
	"faranah/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	statsRepo repository.StatsRepository
	logger    *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	StatsRepo repository.StatsRepository
	Logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		statsRepo: params.StatsRepo,
		logger:    params.Logger,
	}
}

// Overview returns the dashboard headline block.
func (srv *statsService) Overview(ctx context.Context) (*entity.StatsOverview, error) {
	overview, err := srv.statsRepo.Overview(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load overview stats")
	}

	return overview, nil
}

// Products returns the product page headline block.
func (srv *statsService) Products(ctx context.Context) (*entity.ProductStats, error) {
	stats, err := srv.statsRepo.ProductStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product stats")
	}

	return stats, nil
}

// Orders returns the order page headline block.
func (srv *statsService) Orders(ctx context.Context) (*entity.OrderStats, error) {
	stats, err := srv.statsRepo.OrderStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order stats")
	}

	return stats, nil
}

// Users returns the user page headline block.
func (srv *statsService) Users(ctx context.Context) (*entity.UserStats, error) {
	stats, err := srv.statsRepo.UserStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user stats")
	}

	return stats, nil
}

// CategoryDistribution returns revenue grouped by category.
func (srv *statsService) CategoryDistribution(ctx context.Context, paidOnly bool) ([]*entity.CategoryValue, error) {
	distribution, err := srv.statsRepo.CategoryDistribution(ctx, paidOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load category distribution")
	}

	return distribution, nil
}

// MonthlySales returns the current-year series, zero-filled over all twelve
// months.
func (srv *statsService) MonthlySales(ctx context.Context) ([]*usecase.MonthlyPoint, error) {
	year := time.Now().Year()

	rows, err := srv.statsRepo.MonthlySales(ctx, year)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load monthly sales")
	}

	totals := make(map[time.Month]float64, len(rows))
	for _, row := range rows {
		totals[row.Month] = row.Total
	}

	points := make([]*usecase.MonthlyPoint, 0, 12)
	for month := time.January; month <= time.December; month++ {
		points = append(points, &usecase.MonthlyPoint{
			Month: month.String(),
			Total: totals[month],
		})
	}

	return points, nil
}
