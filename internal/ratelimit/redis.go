package ratelimit

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisLimiter is a fixed-window counter keyed per caller. Without a Redis
// address it degrades to allow-all, so the limiter never becomes a hard
// dependency of the login path.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewRedisLimiter(addr string, limit int, window time.Duration) *RedisLimiter {
	l := &RedisLimiter{
		limit:  int64(limit),
		window: window,
	}

	if addr != "" {
		l.client = redis.NewClient(&redis.Options{Addr: addr})
	}

	return l
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l == nil || l.client == nil {
		return true, nil
	}

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		// Fail open: a limiter outage must not block verification mail.
		return true, nil
	}

	if n == 1 {
		l.client.Expire(ctx, key, l.window)
	}

	return n <= l.limit, nil
}
