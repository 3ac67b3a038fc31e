// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"faranah/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductView is a product enriched with its resolved public image URL.
type ProductView struct {
	Product  *entity.Product
	ImageURL string
}

// CategoryView is a category enriched with its resolved public photo URL.
// Products is populated only by detail lookups.
type CategoryView struct {
	Category *entity.Category
	PhotoURL string
	Products []*ProductView
}

// CatalogUsecase defines the public, read-only storefront catalog operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CatalogUsecase interface {
	// ListCategories returns every category.
	ListCategories(ctx context.Context) ([]*CategoryView, error)

	// GetCategory returns one category with its products.
	GetCategory(ctx context.Context, id uuid.UUID) (*CategoryView, error)

	// GetCategoryByName returns one category by case-insensitive name match,
	// without products. Used to resolve catalog filters.
	GetCategoryByName(ctx context.Context, name string) (*CategoryView, error)

	// ListProducts returns products, optionally restricted to one category.
	ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*ProductView, error)

	// GetProduct returns one product.
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
}
