package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "calendar:booking-lock:"

// releaseScript deletes the key only while it still holds our token, so an expired
// lock taken over by another instance is never released by the previous owner.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a lease based lock shared by every service instance pointing at the same redis.
type Redis struct {
	client redis.UniversalClient
	log    *zap.SugaredLogger
	ttl    time.Duration
	retry  time.Duration
}

// NewRedis builds a redis lock. ttl bounds how long a crashed holder can block others.
func NewRedis(client redis.UniversalClient, log *zap.SugaredLogger, ttl, retry time.Duration) *Redis {
	if retry <= 0 {
		retry = 50 * time.Millisecond
	}
	return &Redis{
		client: client,
		log:    log.Named("lock.redis"),
		ttl:    ttl,
		retry:  retry,
	}
}

// Lock polls SET NX until the key is acquired or ctx is done.
func (r *Redis) Lock(ctx context.Context, key string) (Unlock, error) {
	redisKey := redisKeyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(r.retry)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("set lock %q: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("acquire lock %q: %w", key, ctx.Err())
		case <-ticker.C:
		}
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true

		releaseCtx, cancel := context.WithTimeout(context.Background(), r.ttl)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, r.client, []string{redisKey}, token).Err(); err != nil {
			r.log.Warnw("failed to release lock", "key", key, "error", err)
		}
	}, nil
}
