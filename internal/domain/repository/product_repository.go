// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"faranah/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductSearchFilter narrows admin product listings.
type ProductSearchFilter struct {
	Search     string     // Matches the product name.
	CategoryID *uuid.UUID // Nil means all categories.
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a product by its unique ID, with its category preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products with categories preloaded, optionally restricted
	// to a single category.
	List(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Product, error)

	// ListSales lists products joined with their accumulated ordered quantity,
	// for the admin product table.
	ListSales(ctx context.Context, filter ProductSearchFilter) ([]*entity.ProductSales, error)

	// FindSales retrieves one product with its accumulated ordered quantity.
	FindSales(ctx context.Context, id uuid.UUID) (*entity.ProductSales, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
