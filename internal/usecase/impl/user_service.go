// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "faranah/internal/delivery/context"
	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/domain/repository"
	"faranah/internal/domain/service"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// minPasswordLen is the minimum accepted password length.
const minPasswordLen = 8

// userService implements the UserUsecase interface.
type userService struct {
	userRepo   repository.UserRepository
	tokenRepo  repository.TokenRepository
	hasher     service.PasswordHasher
	tokens     service.TokenService
	resetToken service.ResetTokenService
	mailer     service.Mailer
	logger     *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	TokenRepo  repository.TokenRepository
	Hasher     service.PasswordHasher
	Tokens     service.TokenService
	ResetToken service.ResetTokenService
	Mailer     service.Mailer
	Logger     *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:   params.UserRepo,
		tokenRepo:  params.TokenRepo,
		hasher:     params.Hasher,
		tokens:     params.Tokens,
		resetToken: params.ResetToken,
		mailer:     params.Mailer,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer account and logs it in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if err := srv.validateRegister(input); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		LastName:     input.LastName,
		FirstName:    input.FirstName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         entity.RoleClient,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := srv.issueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered",
		slog.String("userID", user.ID.String()),
		slog.String("email", user.Email),
	)

	if err := srv.mailer.SendWelcome(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to send welcome mail",
			slog.String("email", user.Email),
			slog.Any("error", err),
		)
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login verifies credentials and issues a fresh bearer token. A miss on
// either the email or the password yields the same error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.issueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Logout revokes every outstanding token of the user.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.tokenRepo.DeleteByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to revoke tokens")
	}

	srv.log(ctx).Info("User logged out", slog.String("userID", userID.String()))

	return nil
}

// RequestPasswordReset mails a reset link when the email is registered. The
// result is the same whether or not the address exists.
func (srv *userService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to look up user")
	}

	token, err := srv.resetToken.Generate(user.Email)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	if err := srv.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		srv.log(ctx).Warn("Failed to send password reset mail",
			slog.String("email", user.Email),
			slog.Any("error", err),
		)
	}

	return nil
}

// ResetPassword verifies the mailed token and replaces the password,
// revoking every outstanding session.
func (srv *userService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := srv.resetToken.Verify(input.Token, input.Email); err != nil {
		return domainerrors.ErrResetTokenInvalid
	}

	if len(input.Password) < minPasswordLen {
		return domainerrors.ErrPasswordTooShort
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}

		return errors.Wrap(err, "failed to look up user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	user.PasswordHash = hash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := srv.tokenRepo.DeleteByUser(ctx, user.ID); err != nil {
		srv.log(ctx).Warn("Failed to revoke sessions after password reset",
			slog.String("userID", user.ID.String()),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Password reset", slog.String("userID", user.ID.String()))

	if err := srv.mailer.SendPasswordChanged(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to send password changed mail",
			slog.String("email", user.Email),
			slog.Any("error", err),
		)
	}

	return nil
}

// issueToken creates and persists a bearer token and returns its raw form.
func (srv *userService) issueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	raw, hash, err := srv.tokens.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}

	record := &entity.AccessToken{
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(srv.tokens.TTL()),
	}
	if err := srv.tokenRepo.Create(ctx, record); err != nil {
		return "", errors.Wrap(err, "failed to persist token")
	}

	return raw, nil
}

// validateRegister enforces the registration field rules.
func (srv *userService) validateRegister(input *usecase.RegisterInput) error {
	var fields []domainerrors.FieldError

	required := []struct {
		field string
		value string
	}{
		{"last_name", input.LastName},
		{"first_name", input.FirstName},
		{"email", input.Email},
		{"phone", input.Phone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			fields = append(fields, domainerrors.FieldError{Field: r.field, Message: r.field + " is required"})
		}
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	if len(input.Password) < minPasswordLen {
		return domainerrors.ErrPasswordTooShort
	}

	return nil
}
