// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"

	"faranah/config"
	"faranah/internal/domain/service"
)

const (
	// tokenByteLen is the entropy of a raw bearer token before hex encoding.
	tokenByteLen = 32

	defaultTokenTTL = 24 * time.Hour * 7
)

// opaqueTokenService issues random bearer tokens and stores only their
// SHA-256 hashes. Unlike a signed token, an opaque token carries no claims;
// every request resolves it against the access_tokens table, which makes
// logout an immediate revocation.
type opaqueTokenService struct {
	ttl time.Duration
}

// NewTokenService is the constructor for opaqueTokenService.
func NewTokenService(cfg *config.Config) service.TokenService {
	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &opaqueTokenService{ttl: ttl}
}

// Generate returns a fresh raw token and the hash under which it is stored.
func (s *opaqueTokenService) Generate() (string, string, error) {
	buf := make([]byte, tokenByteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "generate token entropy")
	}

	raw := hex.EncodeToString(buf)

	return raw, s.HashToken(raw), nil
}

// HashToken recomputes the storage hash for a presented raw token.
func (s *opaqueTokenService) HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// TTL returns how long an issued token stays valid.
func (s *opaqueTokenService) TTL() time.Duration {
	return s.ttl
}
