// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

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

// userAdminService implements the UserAdminUsecase interface.
type userAdminService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserAdminServiceParams holds dependencies for UserAdminService, injected by Fx.
type UserAdminServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	TokenRepo repository.TokenRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserAdminService is the constructor for userAdminService.
func NewUserAdminService(params UserAdminServiceParams) usecase.UserAdminUsecase {
	return &userAdminService{
		userRepo:  params.UserRepo,
		tokenRepo: params.TokenRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search lists accounts matching the filter, newest first.
func (srv *userAdminService) Search(ctx context.Context, filter repository.UserSearchFilter) ([]*entity.User, error) {
	users, err := srv.userRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return users, nil
}

// Create persists a new account with the given role. The password is
// mandatory here, unlike on update.
func (srv *userAdminService) Create(ctx context.Context, input *usecase.AdminUserInput) (*entity.User, error) {
	role, err := srv.validateInput(input, true)
	if err != nil {
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
		Role:         role,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User created by admin",
		slog.String("userID", user.ID.String()),
		slog.String("role", role.String()),
	)

	return user, nil
}

// Update modifies an account. An empty password keeps the stored hash.
func (srv *userAdminService) Update(ctx context.Context, id uuid.UUID, input *usecase.AdminUserInput) (*entity.User, error) {
	role, err := srv.validateInput(input, false)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	user.LastName = input.LastName
	user.FirstName = input.FirstName
	user.Email = input.Email
	user.Phone = input.Phone
	user.Role = role

	if input.Password != "" {
		if len(input.Password) < minPasswordLen {
			return nil, domainerrors.ErrPasswordTooShort
		}
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		user.PasswordHash = hash
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	// A password change invalidates outstanding sessions.
	if input.Password != "" {
		if err := srv.tokenRepo.DeleteByUser(ctx, id); err != nil {
			srv.log(ctx).Warn("Failed to revoke sessions after password change",
				slog.String("userID", id.String()),
				slog.Any("error", err),
			)
		}
	}

	srv.log(ctx).Info("User updated by admin", slog.String("userID", id.String()))

	return user, nil
}

// Delete removes an account and revokes its sessions.
func (srv *userAdminService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.tokenRepo.DeleteByUser(ctx, id); err != nil {
		return errors.Wrap(err, "failed to revoke tokens")
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted by admin", slog.String("userID", id.String()))

	return nil
}

// validateInput enforces field rules shared by create and update.
// requirePassword is true only on create.
func (srv *userAdminService) validateInput(input *usecase.AdminUserInput, requirePassword bool) (entity.Role, error) {
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

	role := entity.Role(input.Role)
	if !role.IsValid() {
		fields = append(fields, domainerrors.FieldError{Field: "role", Message: "role must be client or admin"})
	}

	if len(fields) > 0 {
		return "", domainerrors.NewValidationError(fields...)
	}

	if requirePassword && len(input.Password) < minPasswordLen {
		return "", domainerrors.ErrPasswordTooShort
	}

	return role, nil
}
