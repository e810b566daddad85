package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/edugestion/school-records/internal/core/domain"
	"github.com/edugestion/school-records/internal/core/ports"
)

// dummyHash is a throwaway bcrypt digest. Login verifies against it when the
// identifier is unknown so that lookup misses cost the same as password
// mismatches and cannot be told apart by timing.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// AuthService implements registration, login and the password lifecycle.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// Register creates an account, hashing the password before it ever reaches
// the repository, and returns the stored user with a fresh token. Duplicate
// username or email surfaces as domain.ErrUserExists straight from the
// store's uniqueness constraint.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleStudent
	}
	if !domain.ValidRole(role) {
		return nil, "", domain.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        strings.ToLower(input.Email),
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, token, nil
}

// Login authenticates by username or email. Unknown identifier, inactive
// account and wrong password all collapse into domain.ErrInvalidCredentials;
// the real reason is only logged.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.User, string, error) {
	if identifier == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.Verify(ctx, password, dummyHash)
			s.log.Debug().Msg("login failed: unknown identifier")
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Verify(ctx, password, user.PasswordHash) {
		s.log.Debug().Str("user_id", user.ID).Msg("login failed: password mismatch")
		return nil, "", domain.ErrInvalidCredentials
	}

	if !user.Active {
		s.log.Debug().Str("user_id", user.ID).Msg("login failed: inactive account")
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

// ChangePassword re-hashes only the new password, and only after the current
// one verifies against the stored hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(ctx, current, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(ctx, next)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password changed")
	return nil
}
