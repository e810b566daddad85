package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/edugestion/school-records/internal/core/domain"
	"github.com/edugestion/school-records/internal/infrastructure/queue"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost, nil)
	ctx := context.Background()

	first, err := h.Hash(ctx, "Abc123!@")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := h.Hash(ctx, "Abc123!@")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if first == second {
		t.Fatalf("expected per-call salts to produce different digests")
	}
	if first == "Abc123!@" || second == "Abc123!@" {
		t.Fatalf("digest must not equal the plaintext")
	}
	if !h.Verify(ctx, "Abc123!@", first) {
		t.Fatalf("first digest did not verify")
	}
	if !h.Verify(ctx, "Abc123!@", second) {
		t.Fatalf("second digest did not verify")
	}
}

func TestBcryptHasher_WrongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost, nil)
	ctx := context.Background()

	digest, err := h.Hash(ctx, "correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h.Verify(ctx, "battery-staple", digest) {
		t.Fatalf("wrong password verified")
	}
}

func TestBcryptHasher_MalformedHashFailsClosed(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost, nil)
	ctx := context.Background()

	for _, malformed := range []string{"", "not-a-hash", "$2a$truncated"} {
		if h.Verify(ctx, "anything", malformed) {
			t.Fatalf("malformed hash %q verified", malformed)
		}
	}
}

func TestBcryptHasher_CostEmbeddedInDigest(t *testing.T) {
	h := NewBcryptHasher(6, nil)
	ctx := context.Background()

	digest, err := h.Hash(ctx, "Abc123!@")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != 6 {
		t.Fatalf("expected cost 6 embedded in digest, got %d", cost)
	}

	// A hasher configured with a different cost still verifies old digests.
	newer := NewBcryptHasher(bcrypt.MinCost, nil)
	if !newer.Verify(ctx, "Abc123!@", digest) {
		t.Fatalf("old digest did not verify after cost change")
	}
}

func TestBcryptHasher_OverlongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost, nil)
	ctx := context.Background()

	// 100 bytes, well formed otherwise; bcrypt keys on at most 72.
	_, err := h.Hash(ctx, strings.Repeat("Aa1!", 25))
	if !errors.Is(err, domain.ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}

	// Multibyte input that fits 72 runes but not 72 bytes.
	_, err = h.Hash(ctx, strings.Repeat("Ñ1a$", 18))
	if !errors.Is(err, domain.ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong for 72-rune multibyte input, got %v", err)
	}
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(99, nil)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to default cost, got %d", h.cost)
	}
}

func TestBcryptHasher_WithPool(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := queue.NewPool(2, zerolog.Nop())
	pool.Start(ctx)

	h := NewBcryptHasher(bcrypt.MinCost, pool)
	digest, err := h.Hash(ctx, "Abc123!@")
	if err != nil {
		t.Fatalf("hash via pool: %v", err)
	}
	if !h.Verify(ctx, "Abc123!@", digest) {
		t.Fatalf("digest did not verify via pool")
	}
}
