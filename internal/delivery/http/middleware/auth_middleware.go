package middleware

import (
	"net/http"
	"strings"
	"time"

	"faranah/internal/domain/entity"
	"faranah/internal/domain/repository"
	"faranah/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by the authentication middleware.
const (
	// ContextKeyUserID holds the authenticated user's uuid.UUID.
	ContextKeyUserID = "userID"
	// ContextKeyUser holds the authenticated *entity.User.
	ContextKeyUser = "user"
	// ContextKeyRole holds the authenticated user's role string.
	ContextKeyRole = "role"
)

// AuthMiddleware validates opaque bearer tokens against their stored hashes.
type AuthMiddleware struct {
	tokens    service.TokenService
	tokenRepo repository.TokenRepository
	userRepo  repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService, tokenRepo repository.TokenRepository, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, tokenRepo: tokenRepo, userRepo: userRepo}
}

// Authenticate validates the bearer token and loads the account behind it.
// Requests without a valid, unexpired token get a 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.resolveUser(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyRole, user.Role.String())

		return next(c)
	}
}

// Identify is the optional variant used on guest-friendly routes: a valid
// token attaches the account, anything else passes through anonymously.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if user, err := m.resolveUser(c); err == nil {
			c.Set(ContextKeyUserID, user.ID)
			c.Set(ContextKeyUser, user)
			c.Set(ContextKeyRole, user.Role.String())
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if role != requiredRole {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole + "' role"})
			}

			return next(c)
		}
	}
}

// resolveUser turns the Authorization header into the account it belongs to.
func (m *AuthMiddleware) resolveUser(c echo.Context) (*entity.User, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, errAuthHeaderMissing
	}

	raw := strings.TrimPrefix(authHeader, "Bearer ")
	if raw == authHeader {
		return nil, errTokenFormat
	}

	record, err := m.tokenRepo.FindByHash(c.Request().Context(), m.tokens.HashToken(raw))
	if err != nil {
		return nil, errTokenInvalid
	}
	if time.Now().After(record.ExpiresAt) {
		return nil, errTokenInvalid
	}

	user, err := m.userRepo.FindByID(c.Request().Context(), record.UserID)
	if err != nil {
		return nil, errTokenInvalid
	}

	return user, nil
}

// authError keeps the 401 bodies stable without leaking internals.
type authError string

func (e authError) Error() string { return string(e) }

const (
	errAuthHeaderMissing authError = "Authorization header is missing"
	errTokenFormat       authError = "Invalid token format, must be Bearer token"
	errTokenInvalid      authError = "Invalid or expired token"
)
