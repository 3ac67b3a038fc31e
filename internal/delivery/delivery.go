// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is one serving surface of the application (HTTP today). All
// deliveries are collected into a group and started together.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
