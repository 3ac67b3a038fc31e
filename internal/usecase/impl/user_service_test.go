package impl

import (
	"context"
	"testing"
	"time"

	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/domain/repository"
	mockRepo "faranah/internal/mocks/repository"
	mockService "faranah/internal/mocks/service"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service    usecase.UserUsecase
	userRepo   *mockRepo.MockUserRepository
	tokenRepo  *mockRepo.MockTokenRepository
	hasher     *mockService.MockPasswordHasher
	tokens     *mockService.MockTokenService
	resetToken *mockService.MockResetTokenService
	mailer     *mockService.MockMailer
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)
	resetToken := mockService.NewMockResetTokenService(t)
	mailer := mockService.NewMockMailer(t)

	service := NewUserService(UserServiceParams{
		UserRepo:   userRepo,
		TokenRepo:  tokenRepo,
		Hasher:     hasher,
		Tokens:     tokens,
		ResetToken: resetToken,
		Mailer:     mailer,
		Logger:     newDiscardLogger(),
	})

	return userServiceFixtures{
		service:    service,
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		hasher:     hasher,
		tokens:     tokens,
		resetToken: resetToken,
		mailer:     mailer,
	}
}

// expectTokenIssue stubs a full bearer token issuance.
func (fx userServiceFixtures) expectTokenIssue(ctx context.Context, raw string) {
	fx.tokens.EXPECT().
		Generate().
		Return(raw, "hash-of-"+raw, nil)
	fx.tokens.EXPECT().
		TTL().
		Return(168 * time.Hour)
	fx.tokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AccessToken")).
		Return(nil)
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		LastName:  "Bah",
		FirstName: "Mamadou",
		Email:     "mamadou@example.com",
		Phone:     "+224620000002",
		Password:  "correct-horse",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().
		Hash("correct-horse").
		Return("$2a$12$hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
			assert.Equal(t, entity.RoleClient, user.Role)
			assert.Equal(t, "$2a$12$hash", user.PasswordHash)
		}).
		Return(nil)
	fx.expectTokenIssue(ctx, "raw-token")
	fx.mailer.EXPECT().
		SendWelcome(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "raw-token", output.Token)
	assert.Equal(t, "mamadou@example.com", output.User.Email)
}

func TestUserService_Register_WelcomeMailFailureIsIgnored(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("correct-horse").
		Return("$2a$12$hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	fx.expectTokenIssue(ctx, "raw-token")
	fx.mailer.EXPECT().
		SendWelcome(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.New("smtp down"))

	output, err := fx.service.Register(ctx, validRegisterInput())
	require.NoError(t, err)
	assert.Equal(t, "raw-token", output.Token)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	fx := createTestUserService(t)

	input := validRegisterInput()
	input.LastName = ""
	input.Phone = "  "

	output, err := fx.service.Register(context.Background(), input)
	assert.Nil(t, output)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := make([]string, 0, len(validationErr.Fields()))
	for _, f := range validationErr.Fields() {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"last_name", "phone"}, fields)
}

func TestUserService_Register_ShortPassword(t *testing.T) {
	fx := createTestUserService(t)

	input := validRegisterInput()
	input.Password = "short"

	output, err := fx.service.Register(context.Background(), input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "mamadou@example.com",
		PasswordHash: "$2a$12$hash",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "mamadou@example.com").
		Return(user, nil)
	fx.hasher.EXPECT().
		Check("correct-horse", "$2a$12$hash").
		Return(true)
	fx.expectTokenIssue(ctx, "fresh-token")

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "mamadou@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", output.Token)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever-pass",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "$2a$12$hash"}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "mamadou@example.com").
		Return(user, nil)
	fx.hasher.EXPECT().
		Check("wrong-pass", "$2a$12$hash").
		Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "mamadou@example.com",
		Password: "wrong-pass",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Logout_RevokesAllTokens(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().
		DeleteByUser(ctx, userID).
		Return(nil)

	err := fx.service.Logout(ctx, userID)
	require.NoError(t, err)
}

func TestUserService_RequestPasswordReset_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "mamadou@example.com"}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "mamadou@example.com").
		Return(user, nil)
	fx.resetToken.EXPECT().
		Generate("mamadou@example.com").
		Return("reset-token", nil)
	fx.mailer.EXPECT().
		SendPasswordReset(ctx, "mamadou@example.com", "reset-token").
		Return(nil)

	err := fx.service.RequestPasswordReset(ctx, "mamadou@example.com")
	require.NoError(t, err)
}

func TestUserService_RequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.RequestPasswordReset(ctx, "nobody@example.com")
	require.NoError(t, err)
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "mamadou@example.com", PasswordHash: "$2a$12$old"}

	fx.resetToken.EXPECT().
		Verify("reset-token", "mamadou@example.com").
		Return(nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "mamadou@example.com").
		Return(user, nil)
	fx.hasher.EXPECT().
		Hash("new-password").
		Return("$2a$12$new", nil)
	fx.userRepo.EXPECT().
		Update(ctx, user).
		Return(nil)
	fx.tokenRepo.EXPECT().
		DeleteByUser(ctx, user.ID).
		Return(nil)
	fx.mailer.EXPECT().
		SendPasswordChanged(ctx, user).
		Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:    "mamadou@example.com",
		Token:    "reset-token",
		Password: "new-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "$2a$12$new", user.PasswordHash)
}

func TestUserService_ResetPassword_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.resetToken.EXPECT().
		Verify("stale-token", "mamadou@example.com").
		Return(errors.New("token expired"))

	err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		Email:    "mamadou@example.com",
		Token:    "stale-token",
		Password: "new-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestUserService_ResetPassword_ShortPassword(t *testing.T) {
	fx := createTestUserService(t)

	fx.resetToken.EXPECT().
		Verify("reset-token", "mamadou@example.com").
		Return(nil)

	err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		Email:    "mamadou@example.com",
		Token:    "reset-token",
		Password: "short",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestUserService_ResetPassword_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.resetToken.EXPECT().
		Verify("reset-token", "nobody@example.com").
		Return(nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:    "nobody@example.com",
		Token:    "reset-token",
		Password: "new-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}
