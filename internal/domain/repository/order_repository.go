// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"faranah/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists an order together with its lines in one write.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with lines and customer preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Search lists orders with lines and customers preloaded, newest first,
	// optionally filtered by a term matching the order ID, customer name or
	// customer email.
	Search(ctx context.Context, search string) ([]*entity.Order, error)

	// UpdateStatus sets the payment status of an order.
	// Returns ErrOrderNotFound when the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// Delete removes an order and its lines.
	Delete(ctx context.Context, id uuid.UUID) error
}
