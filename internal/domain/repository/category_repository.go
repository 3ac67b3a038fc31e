// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"faranah/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// List retrieves all categories.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByIDWithProducts retrieves a category with its products preloaded.
	FindByIDWithProducts(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves a category by case-insensitive name match.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// CountProducts returns how many products reference the category.
	CountProducts(ctx context.Context, id uuid.UUID) (int64, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
