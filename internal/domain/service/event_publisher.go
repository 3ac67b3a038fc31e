// Package service defines interfaces for domain services.
package service

import "context"

// OrderPlacedEvent is the integration event emitted after an order commits.
type OrderPlacedEvent struct {
	OrderID    string  `json:"order_id"`
	UserID     string  `json:"user_id"`
	Email      string  `json:"email"`
	Total      float64 `json:"total"`
	LineCount  int     `json:"line_count"`
	OccurredAt string  `json:"occurred_at"` // RFC 3339.
}

// EventPublisher publishes integration events. Publishing is fire-and-forget
// with respect to the triggering request; failures are logged, not surfaced.
type EventPublisher interface {
	// PublishOrderPlaced emits an order.placed event.
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases the underlying connection.
	Close() error
}
