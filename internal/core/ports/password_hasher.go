package ports

import "context"

// PasswordHasher produces and checks salted one-way password digests.
type PasswordHasher interface {
	// Hash returns a salted digest embedding its own work factor. Two calls
	// with the same plaintext yield different digests.
	Hash(ctx context.Context, plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. Malformed hashes fail
	// closed: the result is false, never an error a caller could misread as
	// success.
	Verify(ctx context.Context, plaintext, hash string) bool
}
