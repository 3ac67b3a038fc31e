// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"faranah/internal/domain/entity"

	"github.com/google/uuid"
)

// AddToCartInput defines the data required to add items to a cart.
type AddToCartInput struct {
	Owner     entity.OwnerKey
	ProductID uuid.UUID
	Size      string // Raw size, normalized by the usecase ("2XL" is accepted).
	Quantity  int
}

// ChangeSizeInput defines the data required to move a cart line to another size.
type ChangeSizeInput struct {
	Owner     entity.OwnerKey
	ProductID uuid.UUID
	OldSize   string
	NewSize   string
}

// CartUsecase defines the shopping cart operations. Every operation is scoped
// to one owner key; guest and account carts share the same code path.
type CartUsecase interface {
	// List returns the cart lines of an owner, oldest first.
	List(ctx context.Context, owner entity.OwnerKey) ([]*entity.CartLine, error)

	// Add puts items in the cart. Adding an existing (product, size) line
	// increments its quantity and total instead of duplicating it.
	Add(ctx context.Context, input *AddToCartInput) error

	// UpdateQuantity sets the quantity of an existing line. Quantities below
	// one are rejected.
	UpdateQuantity(ctx context.Context, owner entity.OwnerKey, productID uuid.UUID, size string, quantity int) error

	// ChangeSize moves a line to another size. When a line at the target size
	// already exists the two lines are merged.
	ChangeSize(ctx context.Context, input *ChangeSizeInput) error

	// Remove deletes one line. Removing an absent line is not an error.
	Remove(ctx context.Context, owner entity.OwnerKey, productID uuid.UUID, size string) error

	// Clear empties the cart. Idempotent.
	Clear(ctx context.Context, owner entity.OwnerKey) error
}
