package postgres

import (
	"context"
	"testing"

	"faranah/internal/domain/entity"
	"faranah/internal/domain/repository"
	"faranah/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCustomer(t *testing.T, users repository.UserRepository) *entity.User {
	t.Helper()

	suffix := uuid.NewString()[:8]
	customer := &entity.User{
		LastName:     "Diallo",
		FirstName:    "Aissatou",
		Email:        "aissatou-" + suffix + "@example.com",
		Phone:        "+224620" + suffix[:6],
		PasswordHash: "$2a$12$hash",
		Role:         entity.RoleClient,
	}
	require.NoError(t, users.Create(context.Background(), customer))

	return customer
}

func TestOrderRepository_Delete_RemovesOrderAndLines(t *testing.T) {
	db := openIntegrationDB(t)
	orders := NewOrderRepository(db)
	users := NewUserRepository(db)

	ctx := context.Background()
	customer := createTestCustomer(t, users)

	order := &entity.Order{
		UserID: customer.ID,
		Status: entity.OrderStatusPending,
		Total:  100,
		Lines: []*entity.OrderLine{
			{
				ProductID:   uuid.New(),
				ProductName: "Robe wax",
				Size:        entity.SizeM,
				Quantity:    2,
				Subtotal:    100,
			},
		},
	}
	require.NoError(t, orders.Create(ctx, order))

	require.NoError(t, orders.Delete(ctx, order.ID))

	_, err := orders.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	var lineCount int64
	require.NoError(t, db.Model(&model.OrderLineModel{}).
		Where("order_id = ?", order.ID).
		Count(&lineCount).Error)
	assert.Zero(t, lineCount)
}

func TestOrderRepository_Delete_MissingOrder(t *testing.T) {
	db := openIntegrationDB(t)
	orders := NewOrderRepository(db)

	err := orders.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
