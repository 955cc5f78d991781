package jwtutil

import (
	"testing"

	"github.com/BrenoDPS/teste-tecnico-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUtil(key string) *JWTUtil {
	return NewJWTUtil(&config.JWTConfig{SigningKey: key, ExpirationMinutes: 30})
}

func TestGenerateAndValidateToken(t *testing.T) {
	util := newTestUtil("test-signing-key")

	token, err := util.GenerateToken("admin", "admin@example.com", 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Subject)
}

func TestValidateTokenWrongKey(t *testing.T) {
	token, err := newTestUtil("key-one").GenerateToken("admin", "admin@example.com", 1)
	require.NoError(t, err)

	_, err = newTestUtil("key-two").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	util := NewJWTUtil(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationMinutes: -1})

	token, err := util.GenerateToken("admin", "admin@example.com", 1)
	require.NoError(t, err)

	_, err = util.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := newTestUtil("test-signing-key").ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestNilConfig(t *testing.T) {
	util := NewJWTUtil(nil)

	_, err := util.GenerateToken("admin", "admin@example.com", 1)
	assert.Error(t, err)

	_, err = util.ValidateToken("anything")
	assert.Error(t, err)
}
