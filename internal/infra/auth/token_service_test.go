package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faranah/config"
)

func newTokenConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth.TokenTTL = ttl

	return cfg
}

func TestOpaqueTokenService_Generate(t *testing.T) {
	svc := NewTokenService(newTokenConfig(time.Hour))

	raw, hash, err := svc.Generate()
	require.NoError(t, err)
	assert.Len(t, raw, tokenByteLen*2) // hex encoded
	assert.Len(t, hash, 64)            // sha256 hex digest
	assert.NotEqual(t, raw, hash)

	// The stored hash must be recomputable from the raw token.
	assert.Equal(t, hash, svc.HashToken(raw))
}

func TestOpaqueTokenService_GenerateIsUnique(t *testing.T) {
	svc := NewTokenService(newTokenConfig(time.Hour))

	seen := make(map[string]struct{})
	for range 50 {
		raw, _, err := svc.Generate()
		require.NoError(t, err)

		_, dup := seen[raw]
		assert.False(t, dup, "generated a duplicate token")
		seen[raw] = struct{}{}
	}
}

func TestOpaqueTokenService_HashToken_IsDeterministic(t *testing.T) {
	svc := NewTokenService(newTokenConfig(time.Hour))

	assert.Equal(t, svc.HashToken("abc"), svc.HashToken("abc"))
	assert.NotEqual(t, svc.HashToken("abc"), svc.HashToken("abd"))
}

func TestOpaqueTokenService_TTL(t *testing.T) {
	svc := NewTokenService(newTokenConfig(2 * time.Hour))
	assert.Equal(t, 2*time.Hour, svc.TTL())

	// A zero TTL falls back to the default.
	svc = NewTokenService(newTokenConfig(0))
	assert.Equal(t, defaultTokenTTL, svc.TTL())
}
