package auth

import (
	"testing"
	"time"

	"chatline/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestAuthConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Secret = "test_secret_key_very_long_for_testing"
	cfg.Auth.TokenTTL = ttl

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	tokenService, err := NewJWTService(newTestAuthConfig(time.Hour))
	assert.NoError(t, err)
	assert.NotNil(t, tokenService)

	accountID := uuid.New()

	token, expiresAt, err := tokenService.Generate(accountID, "alice", "alice@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := tokenService.Validate(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestAuthConfig(time.Hour))
	assert.NoError(t, err)

	claims, err := tokenService.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestAuthConfig(-time.Minute))
	assert.NoError(t, err)

	token, _, err := tokenService.Generate(uuid.New(), "bob", "bob@example.com")
	assert.NoError(t, err)

	claims, err := tokenService.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestAuthConfig(time.Hour))
	assert.NoError(t, err)

	other := newTestAuthConfig(time.Hour)
	other.Auth.Secret = "a_completely_different_secret_key"
	verifier, err := NewJWTService(other)
	assert.NoError(t, err)

	token, _, err := issuer.Generate(uuid.New(), "carol", "carol@example.com")
	assert.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	tokenService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, tokenService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_HashToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestAuthConfig(time.Hour))
	assert.NoError(t, err)

	hash := tokenService.HashToken("some-credential")
	assert.Len(t, hash, 64) // hex-encoded SHA-256
	assert.Equal(t, hash, tokenService.HashToken("some-credential"))
	assert.NotEqual(t, hash, tokenService.HashToken("another-credential"))
}
