// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"faranah/config"
	"faranah/internal/domain/service"
)

const defaultResetTTL = time.Hour

// resetTokenService signs the short-lived tokens mailed in password reset
// links. The token binds the account email as its subject so the consume
// step verifies the pair without any server-side state.
type resetTokenService struct {
	secret string
	ttl    time.Duration
}

// NewResetTokenService is the constructor for resetTokenService.
func NewResetTokenService(cfg *config.Config) (service.ResetTokenService, error) {
	if cfg.Reset.Secret == "" {
		return nil, errors.New("reset token secret must be provided")
	}

	ttl := cfg.Reset.TTL
	if ttl <= 0 {
		ttl = defaultResetTTL
	}

	return &resetTokenService{
		secret: cfg.Reset.Secret,
		ttl:    ttl,
	}, nil
}

// Generate creates a reset token for the given account email.
func (s *resetTokenService) Generate(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     email,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
		"purpose": "password_reset",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign reset token")
	}

	return signed, nil
}

// Verify checks signature and expiry and confirms the token was issued for
// the given email.
func (s *resetTokenService) Verify(tokenString, email string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return errors.Wrap(err, "parse reset token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return errors.New("invalid reset token claims")
	}

	if purpose, _ := claims["purpose"].(string); purpose != "password_reset" {
		return errors.New("token is not a reset token")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return errors.Wrap(err, "read reset token subject")
	}
	if subject != email {
		return errors.New("reset token was issued for another account")
	}

	return nil
}
