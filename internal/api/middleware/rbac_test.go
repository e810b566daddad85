package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/edugestion/school-records/internal/core/domain"
)

func invokeRBAC(t *testing.T, user *domain.User, allowedRoles ...string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/estudiantes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(ContextUserKey, user)
	}

	handler := RBAC(allowedRoles...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	for _, role := range []string{domain.RoleAdmin, domain.RoleInstructor} {
		user := &domain.User{ID: "u1", Role: role, Active: true}
		if err := invokeRBAC(t, user, domain.RoleAdmin, domain.RoleInstructor); err != nil {
			t.Errorf("role %q: expected pass, got %v", role, err)
		}
	}
}

func TestRBAC_RejectsUnlistedRole(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleStudent, Active: true}
	err := invokeRBAC(t, user, domain.RoleAdmin, domain.RoleInstructor)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRBAC_NoAuthenticatedUser(t *testing.T) {
	err := invokeRBAC(t, nil, domain.RoleAdmin)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when Auth did not run, got %v", err)
	}
}

func TestRBAC_EmptyAllowListRejectsEveryone(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleAdmin, Active: true}
	err := invokeRBAC(t, user)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 with an empty allow-list, got %v", err)
	}
}
