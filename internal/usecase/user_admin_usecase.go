// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"faranah/internal/domain/entity"
	"faranah/internal/domain/repository"

	"github.com/google/uuid"
)

// AdminUserInput defines the data an admin supplies to create or update an
// account. Password is optional on update; empty keeps the stored hash.
type AdminUserInput struct {
	LastName  string
	FirstName string
	Email     string
	Phone     string
	Password  string
	Role      string
}

// UserAdminUsecase defines the back-office account management operations.
type UserAdminUsecase interface {
	// Search lists accounts matching the filter, newest first.
	Search(ctx context.Context, filter repository.UserSearchFilter) ([]*entity.User, error)

	// Create persists a new account with the given role.
	Create(ctx context.Context, input *AdminUserInput) (*entity.User, error)

	// Update modifies an account.
	Update(ctx context.Context, id uuid.UUID, input *AdminUserInput) (*entity.User, error)

	// Delete removes an account and revokes its sessions.
	Delete(ctx context.Context, id uuid.UUID) error
}
