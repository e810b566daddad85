package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/edugestion/school-records/internal/core/domain"
	"github.com/edugestion/school-records/internal/core/ports"
)

type stubVerifier struct {
	claims *ports.TokenClaims
	err    error
}

func (v *stubVerifier) Verify(token string) (*ports.TokenClaims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

type stubUserStore struct {
	users map[string]*domain.User
}

func (s *stubUserStore) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (s *stubUserStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserStore) FindByUsernameOrEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserStore) UpdatePasswordHash(_ context.Context, _, _ string) error { return nil }
func (s *stubUserStore) SetActive(_ context.Context, _ string, _ bool) error     { return nil }
func (s *stubUserStore) SetRole(_ context.Context, _, _ string) error            { return nil }

func invokeAuth(t *testing.T, mw echo.MiddlewareFunc, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/perfil", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuth_AttachesFreshUser(t *testing.T) {
	// The stored user carries a role different from the token snapshot; the
	// context must hold the stored one.
	store := &stubUserStore{users: map[string]*domain.User{
		"u1": {ID: "u1", Username: "ana", Role: domain.RoleAdmin, Active: true},
	}}
	verifier := &stubVerifier{claims: &ports.TokenClaims{UserID: "u1", Username: "ana", Role: domain.RoleStudent}}

	c, err := invokeAuth(t, Auth(verifier, store), "Bearer some-token")
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}

	user, ok := CurrentUser(c)
	if !ok {
		t.Fatalf("no user attached to context")
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("context user role = %q, want the stored role %q", user.Role, domain.RoleAdmin)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	verifier := &stubVerifier{err: domain.ErrTokenInvalid}
	_, err := invokeAuth(t, Auth(verifier, &stubUserStore{}), "")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	verifier := &stubVerifier{claims: &ports.TokenClaims{UserID: "u1"}}
	for _, header := range []string{"some-token", "Basic abc123", "Bearer"} {
		_, err := invokeAuth(t, Auth(verifier, &stubUserStore{}), header)

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	verifier := &stubVerifier{err: domain.ErrTokenExpired}
	_, err := invokeAuth(t, Auth(verifier, &stubUserStore{}), "Bearer expired")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if httpErr.Message != "token expired, please log in again" {
		t.Fatalf("message = %v", httpErr.Message)
	}
}

func TestAuth_DeletedUser(t *testing.T) {
	verifier := &stubVerifier{claims: &ports.TokenClaims{UserID: "gone"}}
	_, err := invokeAuth(t, Auth(verifier, &stubUserStore{users: map[string]*domain.User{}}), "Bearer token")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a deleted account, got %v", err)
	}
}

func TestAuth_DeactivatedUser(t *testing.T) {
	store := &stubUserStore{users: map[string]*domain.User{
		"u1": {ID: "u1", Username: "ana", Role: domain.RoleStudent, Active: false},
	}}
	verifier := &stubVerifier{claims: &ports.TokenClaims{UserID: "u1"}}

	c, err := invokeAuth(t, Auth(verifier, store), "Bearer token")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a deactivated account, got %v", err)
	}
	if _, ok := CurrentUser(c); ok {
		t.Fatalf("deactivated user must not be attached to the context")
	}
}
