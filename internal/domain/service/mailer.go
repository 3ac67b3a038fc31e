// Package service defines interfaces for domain services.
package service

import (
	"context"

	"faranah/internal/domain/entity"
)

// Mailer sends the transactional mails of the storefront. Every send is
// best-effort: callers log failures and never fail the triggering request.
type Mailer interface {
	// SendWelcome greets a freshly registered customer.
	SendWelcome(ctx context.Context, user *entity.User) error

	// SendOrderConfirmation mails the order recap to the customer.
	// qrPNG optionally carries an inline QR image of the order reference.
	SendOrderConfirmation(ctx context.Context, customer *entity.User, order *entity.Order, address *entity.ShippingAddress, qrPNG []byte) error

	// SendNewOrderNotice informs one back-office admin that an order landed.
	SendNewOrderNotice(ctx context.Context, admin *entity.User, customer *entity.User, order *entity.Order, address *entity.ShippingAddress) error

	// SendPasswordReset mails the reset link carrying the signed token.
	SendPasswordReset(ctx context.Context, email, token string) error

	// SendPasswordChanged confirms a completed password reset.
	SendPasswordChanged(ctx context.Context, user *entity.User) error
}
