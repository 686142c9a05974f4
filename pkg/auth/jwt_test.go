package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(42, "parent@example.com", "parent", testSecret, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "parent@example.com", claims.Email)
	assert.Equal(t, "parent", claims.Role)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, "a@b.c", "parent", testSecret, 1)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(1, "a@b.c", "parent", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestValidateJWTWithBlacklist(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	blacklist := NewTokenBlacklist(client)

	token, err := GenerateJWT(7, "org@example.com", "org_admin", testSecret, 1)
	require.NoError(t, err)

	ctx := context.Background()

	claims, err := ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.NoError(t, err)
	assert.Equal(t, "org_admin", claims.Role)

	require.NoError(t, blacklist.Add(ctx, token, time.Hour))

	_, err = ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	assert.ErrorContains(t, err, "revoked")
}
