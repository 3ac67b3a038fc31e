// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"faranah/internal/domain/entity"
	"faranah/internal/domain/repository"

	"github.com/google/uuid"
)

// ProductInput defines the data required to create or update a product.
// Image is optional on update; when empty the stored image is kept.
type ProductInput struct {
	Name        string
	Price       float64
	Description string
	CategoryID  uuid.UUID
	Image       entity.ImageUpload
}

// ProductSalesView is an admin product table row with its resolved image URL.
type ProductSalesView struct {
	ProductSales *entity.ProductSales
	ImageURL     string
}

// ProductAdminUsecase defines the back-office product management operations.
type ProductAdminUsecase interface {
	// ListSales returns the product table rows matching the filter.
	ListSales(ctx context.Context, filter repository.ProductSearchFilter) ([]*ProductSalesView, error)

	// GetSales returns one product table row.
	GetSales(ctx context.Context, id uuid.UUID) (*ProductSalesView, error)

	// Create stores the uploaded image and persists a new product.
	Create(ctx context.Context, input *ProductInput) (*ProductView, error)

	// Update modifies a product, replacing its stored image when a new
	// upload is supplied.
	Update(ctx context.Context, id uuid.UUID, input *ProductInput) (*ProductView, error)

	// Delete removes a product and its stored image.
	Delete(ctx context.Context, id uuid.UUID) error
}
