// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"faranah/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenNotFound is returned when no access token matches a hash.
var ErrTokenNotFound = errors.New("access token not found")

// TokenRepository defines the operations for opaque bearer token persistence.
// Only SHA-256 hashes of raw tokens are ever stored.
type TokenRepository interface {
	// Create persists a newly issued token.
	Create(ctx context.Context, token *entity.AccessToken) error

	// FindByHash retrieves a token record by its stored hash.
	FindByHash(ctx context.Context, hash string) (*entity.AccessToken, error)

	// DeleteByUser removes every token issued to a user, revoking all sessions.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
