package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jordanlanch/squadscore/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a cache client backed by miniredis
func setupTestRedis(t *testing.T) (*cache.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	// Create redis client
	redisURL := "redis://" + mr.Addr()
	client, err := cache.NewClient(redisURL)
	require.NoError(t, err)

	return client, mr
}

func TestTokenBlacklist_Add(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	blacklist := NewTokenBlacklist(client)
	ctx := context.Background()

	err := blacklist.Add(ctx, "some-token", time.Hour)
	require.NoError(t, err)

	blacklisted, err := blacklist.IsBlacklisted(ctx, "some-token")
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestTokenBlacklist_NotBlacklisted(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	blacklist := NewTokenBlacklist(client)

	blacklisted, err := blacklist.IsBlacklisted(context.Background(), "unknown-token")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestTokenBlacklist_Expiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	blacklist := NewTokenBlacklist(client)
	ctx := context.Background()

	require.NoError(t, blacklist.Add(ctx, "short-lived", time.Minute))

	mr.FastForward(2 * time.Minute)

	blacklisted, err := blacklist.IsBlacklisted(ctx, "short-lived")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}
