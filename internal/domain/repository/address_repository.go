// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"faranah/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressRepository defines the operations for shipping address persistence.
// Addresses are append-only: one fresh row per checkout, never reused.
type AddressRepository interface {
	// Create persists a new shipping address.
	Create(ctx context.Context, address *entity.ShippingAddress) error

	// ListByUser retrieves all addresses captured for a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error)
}
