package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faranah/config"
)

func newResetConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Reset.Secret = secret
	cfg.Reset.TTL = ttl

	return cfg
}

func TestNewResetTokenService_RequiresSecret(t *testing.T) {
	_, err := NewResetTokenService(newResetConfig("", time.Hour))
	assert.Error(t, err)
}

func TestResetTokenService_GenerateAndVerify(t *testing.T) {
	svc, err := NewResetTokenService(newResetConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.Generate("client@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, svc.Verify(token, "client@example.com"))
}

func TestResetTokenService_Verify_WrongEmail(t *testing.T) {
	svc, err := NewResetTokenService(newResetConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.Generate("client@example.com")
	require.NoError(t, err)

	assert.Error(t, svc.Verify(token, "autre@example.com"))
}

func TestResetTokenService_Verify_WrongSecret(t *testing.T) {
	issuer, err := NewResetTokenService(newResetConfig("secret-a", time.Hour))
	require.NoError(t, err)
	verifier, err := NewResetTokenService(newResetConfig("secret-b", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Generate("client@example.com")
	require.NoError(t, err)

	assert.Error(t, verifier.Verify(token, "client@example.com"))
}

func TestResetTokenService_Verify_Expired(t *testing.T) {
	svc, err := NewResetTokenService(newResetConfig("test-secret", time.Nanosecond))
	require.NoError(t, err)

	token, err := svc.Generate("client@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	assert.Error(t, svc.Verify(token, "client@example.com"))
}

func TestResetTokenService_Verify_Garbage(t *testing.T) {
	svc, err := NewResetTokenService(newResetConfig("test-secret", time.Hour))
	require.NoError(t, err)

	assert.Error(t, svc.Verify("not-a-token", "client@example.com"))
}
