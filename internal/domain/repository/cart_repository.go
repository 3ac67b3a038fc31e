// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"faranah/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartLineNotFound is returned when no cart line matches an (owner, product, size) key.
var ErrCartLineNotFound = errors.New("cart line not found")

// CartRepository defines the operations for cart line persistence.
// Line identity is the (owner key, product, size) triple, enforced by a
// unique constraint; Upsert relies on it to stay race-free.
type CartRepository interface {
	// ListByOwner retrieves all cart lines for one owner key.
	ListByOwner(ctx context.Context, owner entity.OwnerKey) ([]*entity.CartLine, error)

	// FindLine retrieves the line at (owner, product, size).
	// Returns ErrCartLineNotFound when absent.
	FindLine(ctx context.Context, owner entity.OwnerKey, productID uuid.UUID, size entity.Size) (*entity.CartLine, error)

	// Upsert inserts the line, or, when (owner, product, size) already exists,
	// atomically adds the line's quantity and total to the stored row.
	// The constraint makes concurrent first inserts collapse into one row.
	Upsert(ctx context.Context, line *entity.CartLine) error

	// UpdateQuantity sets the quantity of an existing line and recomputes its
	// total from the stored unit price. Returns ErrCartLineNotFound when the
	// line does not exist.
	UpdateQuantity(ctx context.Context, owner entity.OwnerKey, productID uuid.UUID, size entity.Size, quantity int) error

	// UpdateLine rewrites an existing line's size, quantity and total by line
	// ID. Used by the size-change merge path.
	UpdateLine(ctx context.Context, line *entity.CartLine) error

	// DeleteLine removes the line at (owner, product, size). Deleting a line
	// that does not exist is not an error.
	DeleteLine(ctx context.Context, owner entity.OwnerKey, productID uuid.UUID, size entity.Size) error

	// Clear removes every line for the owner. Idempotent.
	Clear(ctx context.Context, owner entity.OwnerKey) error
}
