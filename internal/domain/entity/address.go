// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShippingAddress is the delivery address captured at checkout. A fresh row
// is inserted on every order; addresses are never deduplicated or reused.
type ShippingAddress struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the address.
	UserID    uuid.UUID // The customer this address was captured for.
	FullName  string    // Recipient full name ("<last> <first>" as entered at checkout).
	Phone     string    // Delivery contact phone.
	City      string    // Delivery city.
	Address1  string    // Main address line.
	Address2  string    // Optional second address line.
	CreatedAt time.Time // Timestamp of when this address was captured.
}
