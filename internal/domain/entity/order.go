// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the payment state of an order. Status transitions are
// manual: an admin marks an order paid or canceled from the back office.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every order.
	OrderStatusPending OrderStatus = "en attente"
	// OrderStatusPaid marks an order whose payment was confirmed.
	OrderStatusPaid OrderStatus = "payé"
	// OrderStatusCanceled marks an abandoned or refused order.
	OrderStatusCanceled OrderStatus = "annulé"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	return slices.Contains([]OrderStatus{OrderStatusPending, OrderStatusPaid, OrderStatusCanceled}, s)
}

// Order is a placed customer order. Total is the sum of its lines' subtotals,
// fixed at creation time.
type Order struct {
	ID        uuid.UUID    // The Global Unique Identifier (GUID) for the order.
	UserID    uuid.UUID    // The customer this order belongs to.
	Total     float64      // Sum of line subtotals, computed from live prices at checkout.
	Status    OrderStatus  // Payment status, pending until an admin updates it.
	Lines     []*OrderLine // Line items, one per (product, size) tuple.
	Customer  *User        // Optional preloaded customer, nil when not fetched.
	CreatedAt time.Time    // Timestamp of when this order was placed.
	UpdatedAt time.Time    // Timestamp of the last modification.
}

// OrderLine is one item of an order. Subtotal is price x quantity at the
// time of ordering and is never re-derived from the live catalog.
type OrderLine struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the line.
	OrderID     uuid.UUID // The order this line belongs to.
	ProductID   uuid.UUID // The ordered catalog product.
	ProductName string    // Denormalized product name at order time.
	Size        Size      // Garment size.
	Quantity    int       // Positive item count.
	Subtotal    float64   // Price x quantity, frozen at order creation.
}
