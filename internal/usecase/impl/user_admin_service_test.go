package impl

import (
	"context"
	"testing"

	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/domain/repository"
	mockRepo "faranah/internal/mocks/repository"
	mockService "faranah/internal/mocks/service"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userAdminServiceFixtures holds all test dependencies for admin user tests.
type userAdminServiceFixtures struct {
	service   usecase.UserAdminUsecase
	userRepo  *mockRepo.MockUserRepository
	tokenRepo *mockRepo.MockTokenRepository
	hasher    *mockService.MockPasswordHasher
}

func createTestUserAdminService(t *testing.T) userAdminServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	service := NewUserAdminService(UserAdminServiceParams{
		UserRepo:  userRepo,
		TokenRepo: tokenRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return userAdminServiceFixtures{
		service:   service,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		hasher:    hasher,
	}
}

func validAdminUserInput() *usecase.AdminUserInput {
	return &usecase.AdminUserInput{
		LastName:  "Camara",
		FirstName: "Fatou",
		Email:     "fatou@example.com",
		Phone:     "+224620000003",
		Password:  "solid-password",
		Role:      "admin",
	}
}

func TestUserAdminService_Search(t *testing.T) {
	fx := createTestUserAdminService(t)

	ctx := context.Background()
	filter := repository.UserSearchFilter{Search: "camara", Role: entity.RoleAdmin}
	expected := []*entity.User{{ID: uuid.New(), LastName: "Camara"}}

	fx.userRepo.EXPECT().
		Search(ctx, filter).
		Return(expected, nil)

	users, err := fx.service.Search(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestUserAdminService_Create_Success(t *testing.T) {
	fx := createTestUserAdminService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("solid-password").
		Return("$2a$12$hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
			assert.Equal(t, entity.RoleAdmin, user.Role)
		}).
		Return(nil)

	user, err := fx.service.Create(ctx, validAdminUserInput())
	require.NoError(t, err)
	assert.Equal(t, "fatou@example.com", user.Email)
}

func TestUserAdminService_Create_UnknownRole(t *testing.T) {
	fx := createTestUserAdminService(t)

	input := validAdminUserInput()
	input.Role = "manager"

	user, err := fx.service.Create(context.Background(), input)
	assert.Nil(t, user)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "role", validationErr.Fields()[0].Field)
}

func TestUserAdminService_Create_ShortPassword(t *testing.T) {
	fx := createTestUserAdminService(t)

	input := validAdminUserInput()
	input.Password = "short"

	user, err := fx.service.Create(context.Background(), input)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestUserAdminService_Update_KeepsPasswordWhenEmpty(t *testing.T) {
	fx := createTestUserAdminService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		LastName:     "Camara",
		PasswordHash: "$2a$12$old",
		Role:         entity.RoleClient,
	}
	input := validAdminUserInput()
	input.Password = ""

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, user).
		Return(nil)

	updated, err := fx.service.Update(ctx, user.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "$2a$12$old", updated.PasswordHash)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
}

func TestUserAdminService_Update_PasswordChangeRevokesSessions(t *testing.T) {
	fx := createTestUserAdminService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "$2a$12$old"}
	input := validAdminUserInput()

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)
	fx.hasher.EXPECT().
		Hash("solid-password").
		Return("$2a$12$new", nil)
	fx.userRepo.EXPECT().
		Update(ctx, user).
		Return(nil)
	fx.tokenRepo.EXPECT().
		DeleteByUser(ctx, user.ID).
		Return(nil)

	updated, err := fx.service.Update(ctx, user.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "$2a$12$new", updated.PasswordHash)
}

func TestUserAdminService_Update_ShortPassword(t *testing.T) {
	fx := createTestUserAdminService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	input := validAdminUserInput()
	input.Password = "short"

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	updated, err := fx.service.Update(ctx, user.ID, input)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestUserAdminService_Update_NotFound(t *testing.T) {
	fx := createTestUserAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrUserNotFound)

	updated, err := fx.service.Update(ctx, id, validAdminUserInput())
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserAdminService_Delete_RevokesSessionsFirst(t *testing.T) {
	fx := createTestUserAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.tokenRepo.EXPECT().
		DeleteByUser(ctx, id).
		Return(nil)
	fx.userRepo.EXPECT().
		Delete(ctx, id).
		Return(nil)

	err := fx.service.Delete(ctx, id)
	require.NoError(t, err)
}

func TestUserAdminService_Delete_NotFound(t *testing.T) {
	fx := createTestUserAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.tokenRepo.EXPECT().
		DeleteByUser(ctx, id).
		Return(nil)
	fx.userRepo.EXPECT().
		Delete(ctx, id).
		Return(repository.ErrUserNotFound)

	err := fx.service.Delete(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
