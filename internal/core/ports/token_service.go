package ports

import "github.com/edugestion/school-records/internal/core/domain"

// TokenClaims is the identity snapshot embedded in a bearer token. It can go
// stale; the authentication middleware re-resolves the live user on every
// request.
type TokenClaims struct {
	UserID   string
	Username string
	Role     string
}

// TokenIssuer creates signed, time-bound bearer tokens.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier validates a token and extracts its claims. Failures are
// domain.ErrTokenExpired or domain.ErrTokenInvalid.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// TokenService combines issuance and verification.
type TokenService interface {
	TokenIssuer
	TokenVerifier
}
