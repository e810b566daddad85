package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/edugestion/school-records/internal/core/domain"
	"github.com/edugestion/school-records/internal/infrastructure/queue"
)

// BcryptHasher hashes passwords with bcrypt. The cost is fixed at
// construction for the whole process; each stored hash embeds its own cost
// and salt, so raising the cost later never invalidates existing hashes.
type BcryptHasher struct {
	cost int
	pool *queue.Pool
}

// NewBcryptHasher creates a hasher with the given work factor. Costs outside
// bcrypt's valid range fall back to bcrypt.DefaultCost. pool may be nil, in
// which case hashing runs on the calling goroutine.
func NewBcryptHasher(cost int, pool *queue.Pool) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost, pool: pool}
}

// Hash returns a salted bcrypt digest of plaintext. The salt is random per
// call, so repeated hashes of the same input differ.
func (h *BcryptHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	var (
		digest []byte
		err    error
	)
	run := func() {
		digest, err = bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	}
	if poolErr := h.dispatch(ctx, run); poolErr != nil {
		return "", poolErr
	}
	if err != nil {
		// bcrypt only keys on the first 72 bytes; longer input is a client
		// error, not a server fault.
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.ErrPasswordTooLong
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches hash. bcrypt's comparison is
// constant time in the password; a malformed hash simply yields false.
func (h *BcryptHasher) Verify(ctx context.Context, plaintext, hash string) bool {
	var ok bool
	run := func() {
		ok = bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
	}
	if err := h.dispatch(ctx, run); err != nil {
		return false
	}
	return ok
}

func (h *BcryptHasher) dispatch(ctx context.Context, fn func()) error {
	if h.pool == nil {
		fn()
		return nil
	}
	return h.pool.Run(ctx, fn)
}
