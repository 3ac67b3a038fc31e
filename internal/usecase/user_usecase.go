// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"faranah/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer.
type RegisterInput struct {
	LastName  string
	FirstName string
	Email     string
	Phone     string
	Password  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput defines the data required to consume a reset token.
type ResetPasswordInput struct {
	Email    string
	Token    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued bearer token after register or login.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the identity and access operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a customer account and logs it in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a fresh bearer token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout revokes every outstanding token of the user.
	Logout(ctx context.Context, userID uuid.UUID) error

	// RequestPasswordReset mails a reset link when the email is registered.
	// It reports success either way so the endpoint never leaks which
	// addresses exist.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword verifies the mailed token and replaces the password,
	// revoking every outstanding session.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
