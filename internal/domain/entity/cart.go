// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OwnerKey scopes cart lines to a single cart identity: either the string
// form of a registered user id, or the client-generated guest token. Guest
// tokens are correlation keys only, never authorization credentials.
type OwnerKey string

// String returns the string representation of the OwnerKey.
func (k OwnerKey) String() string {
	return string(k)
}

// OwnerKeyForUser builds the owner key addressing a registered user's cart.
func OwnerKeyForUser(userID uuid.UUID) OwnerKey {
	return OwnerKey(userID.String())
}

// CartLine is one (product, size) line inside a cart. At most one line
// exists per (owner, product, size); repeated additions increment Quantity
// and Total instead of inserting a duplicate.
type CartLine struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the line.
	OwnerKey    OwnerKey  // The cart identity this line belongs to.
	ProductID   uuid.UUID // The referenced catalog product.
	ProductName string    // Denormalized product name, snapshotted on insert.
	Size        Size      // Garment size, part of the line identity.
	Quantity    int       // Positive item count.
	UnitPrice   float64   // Unit price snapshot taken when the line was first added.
	Total       float64   // Denormalized line total; stays Quantity x UnitPrice after every mutation.
	CreatedAt   time.Time // Timestamp of when this line was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
