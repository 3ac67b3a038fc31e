// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"faranah/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutItem is one ordered (product, size, quantity) tuple. Prices are
// never taken from the client; they are re-read from the catalog.
type CheckoutItem struct {
	ProductID uuid.UUID
	Size      string
	Quantity  int
}

// CheckoutInput defines the data required to place an order. Phone belongs
// to the customer account; DeliveryPhone goes on the shipping address.
type CheckoutInput struct {
	Owner         entity.OwnerKey // Cart to clear after the order commits.
	LastName      string
	FirstName     string
	Email         string
	Phone         string
	City          string
	Address1      string
	Address2      string
	DeliveryPhone string
	Items         []CheckoutItem
}

// CheckoutOutput returns the created order.
type CheckoutOutput struct {
	Order *entity.Order
}

// CheckoutUsecase defines the order placement operation.
type CheckoutUsecase interface {
	// PlaceOrder validates the input, finds or creates the customer account
	// by email, snapshots live prices and writes the order atomically. After
	// the transaction commits it clears the cart and fires the notification
	// fan-out (mails, push, event) best-effort.
	PlaceOrder(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)
}
