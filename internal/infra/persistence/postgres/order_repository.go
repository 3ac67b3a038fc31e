// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/domain/repository"
	"faranah/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists an order together with its lines in one write.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderFailed.WrapMessage("order references a missing user or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, lineM := range orderM.Lines {
		order.Lines[i].ID = lineM.ID
		order.Lines[i].OrderID = lineM.OrderID
	}

	return nil
}

// FindByID retrieves an order with lines and customer preloaded.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Preload("Customer").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// Search lists orders newest first, optionally filtered by a term matching
// the order ID, customer name or customer email.
func (repo *orderRepository) Search(ctx context.Context, search string) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).
		Preload("Lines").
		Preload("Customer").
		Joins("JOIN users ON users.id = orders.user_id").
		Order("orders.created_at DESC")

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"orders.id::text ILIKE ? OR users.last_name ILIKE ? OR users.first_name ILIKE ? OR users.email ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus sets the payment status of an order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order and its lines in one transaction, so a failure
// between the two deletes never strands an order without lines.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("order_id = ?", id).
			Delete(&model.OrderLineModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete order lines")
		}

		result := tx.
			Where("id = ?", id).
			Delete(&model.OrderModel{})

		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete order")
		}

		if result.RowsAffected == 0 {
			return repository.ErrOrderNotFound
		}

		return nil
	})
}

// fromOrderDomain converts a domain entity into its GORM model.
func fromOrderDomain(order *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:     order.ID,
		UserID: order.UserID,
		Total:  order.Total,
		Status: order.Status.String(),
	}
	orderM.Lines = make([]model.OrderLineModel, 0, len(order.Lines))
	for _, line := range order.Lines {
		orderM.Lines = append(orderM.Lines, model.OrderLineModel{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Size:        line.Size.String(),
			Quantity:    line.Quantity,
			Subtotal:    line.Subtotal,
		})
	}

	return orderM
}

// toOrderDomain converts a GORM model into its domain entity.
func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:        orderM.ID,
		UserID:    orderM.UserID,
		Total:     orderM.Total,
		Status:    entity.OrderStatus(orderM.Status),
		CreatedAt: orderM.CreatedAt,
		UpdatedAt: orderM.UpdatedAt,
	}
	order.Lines = make([]*entity.OrderLine, 0, len(orderM.Lines))
	for i := range orderM.Lines {
		lineM := &orderM.Lines[i]
		order.Lines = append(order.Lines, &entity.OrderLine{
			ID:          lineM.ID,
			OrderID:     lineM.OrderID,
			ProductID:   lineM.ProductID,
			ProductName: lineM.ProductName,
			Size:        entity.Size(lineM.Size),
			Quantity:    lineM.Quantity,
			Subtotal:    lineM.Subtotal,
		})
	}
	if orderM.Customer != nil {
		order.Customer = toUserDomain(orderM.Customer)
	}

	return order
}
