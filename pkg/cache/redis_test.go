package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestCache creates a cache client backed by miniredis
func setupTestCache(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	opts := &redis.Options{
		Addr: mr.Addr(),
	}
	redisClient := redis.NewClient(opts)

	client := &Client{
		Redis: redisClient,
	}

	return client, mr
}

func TestCache_SetAndGet(t *testing.T) {
	client, mr := setupTestCache(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "greeting", "hello", time.Minute)
	require.NoError(t, err)

	val, err := client.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", val)
}

func TestCache_GetMissingKey(t *testing.T) {
	client, mr := setupTestCache(t)
	defer mr.Close()
	defer client.Close()

	_, err := client.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestCache_SetNX(t *testing.T) {
	client, mr := setupTestCache(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	set, err := client.SetNX(ctx, "cooldown:user:1", "1", time.Minute)
	require.NoError(t, err)
	assert.True(t, set)

	// Second attempt is rejected while the key lives
	set, err = client.SetNX(ctx, "cooldown:user:1", "1", time.Minute)
	require.NoError(t, err)
	assert.False(t, set)

	mr.FastForward(2 * time.Minute)

	set, err = client.SetNX(ctx, "cooldown:user:1", "1", time.Minute)
	require.NoError(t, err)
	assert.True(t, set)
}

func TestCache_Exists(t *testing.T) {
	client, mr := setupTestCache(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	exists, err := client.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, client.Set(ctx, "k", "v", time.Minute))

	exists, err = client.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCache_Delete(t *testing.T) {
	client, mr := setupTestCache(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, client.Set(ctx, "b", "2", time.Minute))

	err := client.Delete(ctx, "a", "b")
	require.NoError(t, err)

	exists, err := client.Exists(ctx, "a")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCache_DeletePattern(t *testing.T) {
	client, mr := setupTestCache(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "session:1", "x", time.Minute))
	require.NoError(t, client.Set(ctx, "session:2", "y", time.Minute))
	require.NoError(t, client.Set(ctx, "other:1", "z", time.Minute))

	err := client.DeletePattern(ctx, "session:*")
	require.NoError(t, err)

	exists, err := client.Exists(ctx, "session:1")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = client.Exists(ctx, "other:1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCache_TTL(t *testing.T) {
	client, mr := setupTestCache(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", "v", time.Minute))

	ttl, err := client.TTL(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)
}
