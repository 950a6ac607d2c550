package lock

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRedisLockIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	client := setupRedis(t)
	ctx := context.Background()

	first := NewRedis(client, zap.NewNop().Sugar(), 2*time.Second, 10*time.Millisecond)
	second := NewRedis(client, zap.NewNop().Sugar(), 2*time.Second, 10*time.Millisecond)

	unlock, err := first.Lock(ctx, "employee:1")
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err = second.Lock(waitCtx, "employee:1")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	other, err := second.Lock(ctx, "employee:2")
	require.NoError(t, err)
	other()

	unlock()
	unlock()

	again, err := second.Lock(ctx, "employee:1")
	require.NoError(t, err)
	again()

	exists, err := client.Exists(ctx, redisKeyPrefix+"employee:1").Result()
	require.NoError(t, err)
	require.Zero(t, exists)
}

func TestRedisLockExpires(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	client := setupRedis(t)
	ctx := context.Background()

	short := NewRedis(client, zap.NewNop().Sugar(), 100*time.Millisecond, 10*time.Millisecond)
	_, err := short.Lock(ctx, "employee:9")
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	unlock, err := short.Lock(waitCtx, "employee:9")
	require.NoError(t, err)
	unlock()
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	client := redis.NewClient(&redis.Options{Addr: "localhost:" + resource.GetPort("6379/tcp")})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, pool.Retry(func() error {
		return client.Ping(context.Background()).Err()
	}))
	return client
}
