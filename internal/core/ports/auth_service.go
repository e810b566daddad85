package ports

import (
	"context"

	"github.com/edugestion/school-records/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
// Role is optional and defaults to "student".
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AuthService defines the authentication use-cases.
type AuthService interface {
	// Register creates the account and returns it with a freshly issued token.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	// Login resolves identifier as username or email. Unknown identifier,
	// inactive account and wrong password are indistinguishable to the
	// caller: all return domain.ErrInvalidCredentials.
	Login(ctx context.Context, identifier, password string) (*domain.User, string, error)
	// ChangePassword verifies current before storing a new hash.
	ChangePassword(ctx context.Context, userID, current, next string) error
}
