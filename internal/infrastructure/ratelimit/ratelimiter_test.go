package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	err := client.Ping(ctx).Err()
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(3, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, _ := l.Allow(ctx, "10.0.0.1")
	assert.False(t, allowed, "4th request should be denied")

	allowed, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, allowed, "other keys have their own window")

	now = now.Add(time.Minute)
	allowed, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, allowed, "a new window resets the count")
}

func TestMemoryLimiter_ZeroLimitDisables(t *testing.T) {
	l := NewMemoryLimiter(0, time.Minute)
	for i := 0; i < 100; i++ {
		allowed, err := l.Allow(context.Background(), "k")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestMemoryLimiter_SweepsExpiredWindows(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < sweepThreshold; i++ {
		_, _ = l.Allow(context.Background(), time.Duration(i).String())
	}
	now = now.Add(2 * time.Minute)
	_, _ = l.Allow(context.Background(), "fresh")

	assert.Len(t, l.windows, 1)
}

func TestRedisLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	l := NewRedisLimiter(client, "login", 5, time.Minute)
	now := time.Date(2026, 3, 2, 9, 0, 30, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")

	now = now.Add(time.Minute)
	allowed, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	ttl, err := client.TTL(ctx, l.getKey("10.0.0.1", now)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
