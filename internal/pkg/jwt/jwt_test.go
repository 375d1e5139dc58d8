package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_Claims(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", "1h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "user@example.com", "tenant-1")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "user@example.com", claims["email"])
	assert.Equal(t, "tenant-1", claims["tenant_id"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", "not-a-duration")

	_, _, err := svc.GenerateAccessToken("user-1", "user@example.com", "tenant-1")
	assert.Error(t, err)
}

func TestDecode_RejectsForeignSignature(t *testing.T) {
	t.Parallel()

	minter := NewJWTService("other-secret", "1h")
	tokenString, _, err := minter.GenerateAccessToken("user-1", "user@example.com", "tenant-1")
	require.NoError(t, err)

	verifier := NewJWTService("test-secret", "1h")
	_, err = verifier.JWTAuth().Decode(tokenString)
	assert.Error(t, err)
}
