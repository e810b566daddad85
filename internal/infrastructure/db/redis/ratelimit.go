package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter is a fixed-window counter keyed by client IP, used to slow
// credential-stuffing against the login endpoint.
// Key format: ratelimit:login:<ip>
type LoginLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLoginLimiter allows limit attempts per window for each key.
func NewLoginLimiter(client *redis.Client, limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, limit: int64(limit), window: window}
}

// Allow records one attempt for key and reports whether it is still within
// the window's budget.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	rkey := l.key(key)

	n, err := l.client.Incr(ctx, rkey).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		// First attempt in this window starts the clock.
		if err := l.client.Expire(ctx, rkey, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.limit, nil
}

func (l *LoginLimiter) key(k string) string {
	return "ratelimit:login:" + k
}
