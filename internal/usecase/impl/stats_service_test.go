package impl

import (
	"context"
	"testing"
	"time"

	"faranah/internal/domain/entity"
	mockRepo "faranah/internal/mocks/repository"
	"faranah/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statsServiceFixtures holds all test dependencies for stats tests.
type statsServiceFixtures struct {
	service   usecase.StatsUsecase
	statsRepo *mockRepo.MockStatsRepository
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	statsRepo := mockRepo.NewMockStatsRepository(t)

	service := NewStatsService(StatsServiceParams{
		StatsRepo: statsRepo,
		Logger:    newDiscardLogger(),
	})

	return statsServiceFixtures{
		service:   service,
		statsRepo: statsRepo,
	}
}

func TestStatsService_Overview(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	expected := &entity.StatsOverview{TotalSales: 1240, NewUsers: 8, TotalProducts: 42}

	fx.statsRepo.EXPECT().
		Overview(ctx).
		Return(expected, nil)

	overview, err := fx.service.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, overview)
}

func TestStatsService_CategoryDistribution_PaidOnly(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	expected := []*entity.CategoryValue{
		{CategoryID: "1", Name: "Robes", Value: 840},
	}

	fx.statsRepo.EXPECT().
		CategoryDistribution(ctx, true).
		Return(expected, nil)

	distribution, err := fx.service.CategoryDistribution(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, expected, distribution)
}

func TestStatsService_MonthlySales_ZeroFillsTwelveMonths(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	year := time.Now().Year()

	fx.statsRepo.EXPECT().
		MonthlySales(ctx, year).
		Return([]*entity.MonthlySales{
			{Month: time.March, Total: 300},
			{Month: time.August, Total: 150.5},
		}, nil)

	points, err := fx.service.MonthlySales(ctx)
	require.NoError(t, err)
	require.Len(t, points, 12)
	assert.Equal(t, "January", points[0].Month)
	assert.Zero(t, points[0].Total)
	assert.Equal(t, "March", points[2].Month)
	assert.InDelta(t, 300, points[2].Total, 0.001)
	assert.InDelta(t, 150.5, points[7].Total, 0.001)
	assert.Equal(t, "December", points[11].Month)
	assert.Zero(t, points[11].Total)
}

func TestStatsService_MonthlySales_EmptyYear(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()

	fx.statsRepo.EXPECT().
		MonthlySales(ctx, time.Now().Year()).
		Return(nil, nil)

	points, err := fx.service.MonthlySales(ctx)
	require.NoError(t, err)
	require.Len(t, points, 12)
	for _, point := range points {
		assert.Zero(t, point.Total)
	}
}

func TestStatsService_Orders_RepoError(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()

	fx.statsRepo.EXPECT().
		OrderStats(ctx).
		Return(nil, errors.New("replica unreachable"))

	stats, err := fx.service.Orders(ctx)
	assert.Nil(t, stats)
	assert.Contains(t, err.Error(), "failed to load order stats")
}
