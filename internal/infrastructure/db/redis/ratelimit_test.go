package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewLoginLimiter(client, limit, window), srv
}

func TestLoginLimiter_Allow(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "203.0.113.9")
		if err != nil {
			t.Fatalf("attempt %d: %v", i+1, err)
		}
		if !ok {
			t.Fatalf("attempt %d rejected within budget", i+1)
		}
	}

	ok, err := limiter.Allow(ctx, "203.0.113.9")
	if err != nil {
		t.Fatalf("attempt 4: %v", err)
	}
	if ok {
		t.Fatalf("attempt 4 allowed over budget")
	}
}

func TestLoginLimiter_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if ok, _ := limiter.Allow(ctx, "203.0.113.9"); !ok {
		t.Fatalf("first attempt for first ip rejected")
	}
	if ok, _ := limiter.Allow(ctx, "203.0.113.9"); ok {
		t.Fatalf("second attempt for first ip allowed")
	}
	if ok, _ := limiter.Allow(ctx, "198.51.100.4"); !ok {
		t.Fatalf("other ip hit by first ip's budget")
	}
}

func TestLoginLimiter_WindowResets(t *testing.T) {
	limiter, srv := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if ok, _ := limiter.Allow(ctx, "203.0.113.9"); !ok {
		t.Fatalf("first attempt rejected")
	}
	if ok, _ := limiter.Allow(ctx, "203.0.113.9"); ok {
		t.Fatalf("second attempt allowed within the window")
	}

	srv.FastForward(time.Minute + time.Second)

	ok, err := limiter.Allow(ctx, "203.0.113.9")
	if err != nil {
		t.Fatalf("post-window attempt: %v", err)
	}
	if !ok {
		t.Fatalf("attempt rejected after the window expired")
	}
}

func TestLoginLimiter_ErrorWhenUnreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	limiter := NewLoginLimiter(client, 5, time.Minute)
	srv.Close()

	if _, err := limiter.Allow(context.Background(), "203.0.113.9"); err == nil {
		t.Fatalf("expected an error when the backend is down")
	}
}
