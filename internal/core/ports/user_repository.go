package ports

import (
	"context"

	"github.com/edugestion/school-records/internal/core/domain"
)

// UserRepository defines persistence for user credential records. Uniqueness
// of username and email is enforced by the store itself; a violating Create
// returns domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByUsernameOrEmail matches identifier against either unique field,
	// so the login form can offer a single combined input.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error

	// Administrative mutators; not reachable from the current HTTP surface
	// but part of the credential store contract.
	SetActive(ctx context.Context, id string, active bool) error
	SetRole(ctx context.Context, id, role string) error
}
