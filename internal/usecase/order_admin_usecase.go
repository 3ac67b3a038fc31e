// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"faranah/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderAdminUsecase defines the back-office order management operations.
type OrderAdminUsecase interface {
	// Search lists orders newest first, optionally filtered by a term
	// matching the order ID, customer name or customer email.
	Search(ctx context.Context, search string) ([]*entity.Order, error)

	// Get returns one order with lines and customer.
	Get(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus sets the payment status. Only the known status labels
	// are accepted.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error)

	// Delete removes an order and its lines.
	Delete(ctx context.Context, id uuid.UUID) error
}
