// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	httpmiddleware "faranah/internal/delivery/http/middleware"
	"faranah/internal/delivery/http/response"
	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the identity and access handlers.
type AuthHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// registerRequest is the POST /register body.
type registerRequest struct {
	LastName  string `json:"last_name" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// loginRequest is the POST /login body.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// resetRequestBody is the POST /email body.
type resetRequestBody struct {
	Email string `json:"email" validate:"required,email"`
}

// resetPasswordRequest is the POST /reset body.
type resetPasswordRequest struct {
	Email                string `json:"email" validate:"required,email"`
	Token                string `json:"token" validate:"required"`
	Password             string `json:"password" validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

// userResponse is the public account JSON shape. The password hash never
// leaves the server.
type userResponse struct {
	ID        string `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// authResponse carries the issued bearer token and the public profile.
type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// Register handles POST /register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(output), "User registered successfully")
}

// Login handles POST /login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output), "Login successful")
}

// Logout handles POST /logout. Requires authentication.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := c.Get(httpmiddleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	if err := h.uc.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// RequestPasswordReset handles POST /email. The response shape never reveals
// whether the address is registered.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req resetRequestBody
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "If the address is registered, a reset link has been sent")
}

// ResetPassword handles POST /reset.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Password != req.PasswordConfirmation {
		return domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "password_confirmation",
			Message: "password confirmation does not match",
		})
	}

	if err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Email:    req.Email,
		Token:    req.Token,
		Password: req.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

func toAuthResponse(output *usecase.AuthOutput) authResponse {
	return authResponse{
		Token: output.Token,
		User:  toUserResponse(output.User),
	}
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		LastName:  user.LastName,
		FirstName: user.FirstName,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role.String(),
	}
}
