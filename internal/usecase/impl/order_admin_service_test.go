package impl

import (
	"context"
	"testing"

	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/domain/repository"
	mockRepo "faranah/internal/mocks/repository"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderAdminServiceFixtures holds all test dependencies for admin order tests.
type orderAdminServiceFixtures struct {
	service   usecase.OrderAdminUsecase
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderAdminService(t *testing.T) orderAdminServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewOrderAdminService(OrderAdminServiceParams{
		OrderRepo: orderRepo,
		Logger:    newDiscardLogger(),
	})

	return orderAdminServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
	}
}

func TestOrderAdminService_Search(t *testing.T) {
	fx := createTestOrderAdminService(t)

	ctx := context.Background()
	expected := []*entity.Order{
		{ID: uuid.New(), Status: entity.OrderStatusPending, Total: 120},
	}

	fx.orderRepo.EXPECT().
		Search(ctx, "diallo").
		Return(expected, nil)

	orders, err := fx.service.Search(ctx, "diallo")
	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrderAdminService_Get_NotFound(t *testing.T) {
	fx := createTestOrderAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.Get(ctx, id)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderAdminService_UpdateStatus_Success(t *testing.T) {
	fx := createTestOrderAdminService(t)

	ctx := context.Background()
	id := uuid.New()
	updated := &entity.Order{ID: id, Status: entity.OrderStatusPaid}

	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, id, entity.OrderStatusPaid).
		Return(nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, id).
		Return(updated, nil)

	order, err := fx.service.UpdateStatus(ctx, id, "payé")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
}

func TestOrderAdminService_UpdateStatus_UnknownLabel(t *testing.T) {
	fx := createTestOrderAdminService(t)

	order, err := fx.service.UpdateStatus(context.Background(), uuid.New(), "expédié")
	assert.Nil(t, order)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "status", validationErr.Fields()[0].Field)
}

func TestOrderAdminService_UpdateStatus_NotFound(t *testing.T) {
	fx := createTestOrderAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, id, entity.OrderStatusCanceled).
		Return(repository.ErrOrderNotFound)

	order, err := fx.service.UpdateStatus(ctx, id, "annulé")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderAdminService_Delete(t *testing.T) {
	fx := createTestOrderAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.orderRepo.EXPECT().
		Delete(ctx, id).
		Return(nil)

	err := fx.service.Delete(ctx, id)
	require.NoError(t, err)
}

func TestOrderAdminService_Delete_NotFound(t *testing.T) {
	fx := createTestOrderAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.orderRepo.EXPECT().
		Delete(ctx, id).
		Return(repository.ErrOrderNotFound)

	err := fx.service.Delete(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
