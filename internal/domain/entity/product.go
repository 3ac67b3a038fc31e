// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable catalog item. Price is the live unit price; order
// lines snapshot it at checkout and never read it back.
type Product struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the product.
	Name        string    // Display name shown in the storefront.
	Price       float64   // Current unit price, non-negative.
	Description string    // Free-form product description.
	Image       string    // Stored image object name, e.g. "produit_1712_ab12.jpg". Empty when none.
	CategoryID  uuid.UUID // The category this product belongs to.
	Category    *Category // Optional preloaded category, nil when not fetched.
	CreatedAt   time.Time // Timestamp of when this product was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// ProductSales is a product row enriched with its accumulated ordered
// quantity, used by the admin product table.
type ProductSales struct {
	Product
	CategoryName string // Denormalized category name for the table view.
	Sales        int64  // Total quantity ever ordered across all orders.
}
