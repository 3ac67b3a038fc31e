// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"faranah/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput defines the data required to create or update a category.
// Photo is optional on update; when empty the stored photo is kept.
type CategoryInput struct {
	Name        string
	Description string
	Photo       entity.ImageUpload
}

// CategoryAdminUsecase defines the back-office category management operations.
type CategoryAdminUsecase interface {
	// List returns every category for the admin table.
	List(ctx context.Context) ([]*CategoryView, error)

	// Create stores the uploaded photo and persists a new category.
	Create(ctx context.Context, input *CategoryInput) (*CategoryView, error)

	// Update modifies a category, replacing its stored photo when a new
	// upload is supplied.
	Update(ctx context.Context, id uuid.UUID, input *CategoryInput) (*CategoryView, error)

	// Delete removes a category and its stored photo. Deletion is refused
	// while products still reference the category.
	Delete(ctx context.Context, id uuid.UUID) error
}
