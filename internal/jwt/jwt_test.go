package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandtools-be/internal/jwt"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateToken("user-123", "user@example.com", "Test User")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", -time.Minute)

	token, err := svc.GenerateToken("user-123", "user@example.com", "Test User")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateTamperedToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateToken("user-123", "user@example.com", "Test User")
	require.NoError(t, err)

	// Flip a single byte anywhere in the token
	for _, i := range []int{5, len(token) / 2, len(token) - 2} {
		tampered := []byte(token)
		tampered[i] ^= 0x01
		claims, err := svc.ValidateToken(string(tampered))
		assert.Nil(t, claims, "byte %d", i)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken, "byte %d", i)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := jwt.NewJWTService("secret-one", time.Hour)
	verifier := jwt.NewJWTService("secret-two", time.Hour)

	token, err := issuer.GenerateToken("user-123", "user@example.com", "Test User")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateMalformedToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		claims, err := svc.ValidateToken(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	}
}
