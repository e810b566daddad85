package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/edugestion/school-records/internal/api/middleware"
	"github.com/edugestion/school-records/internal/core/domain"
	"github.com/edugestion/school-records/internal/core/ports"
)

type stubAuthService struct {
	registerCalls int
	registerInput ports.RegisterInput
	registerErr   error

	loginErr error

	changeErr   error
	changeCalls int
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	s.registerCalls++
	s.registerInput = input
	if s.registerErr != nil {
		return nil, "", s.registerErr
	}
	role := input.Role
	if role == "" {
		role = domain.RoleStudent
	}
	user := &domain.User{
		ID:           "u1",
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: "$2a$12$secret-digest",
		Role:         role,
		Active:       true,
	}
	return user, "issued-token", nil
}

func (s *stubAuthService) Login(_ context.Context, identifier, password string) (*domain.User, string, error) {
	if s.loginErr != nil {
		return nil, "", s.loginErr
	}
	user := &domain.User{
		ID:           "u1",
		Username:     identifier,
		PasswordHash: "$2a$12$secret-digest",
		Role:         domain.RoleStudent,
		Active:       true,
	}
	return user, "issued-token", nil
}

func (s *stubAuthService) ChangePassword(_ context.Context, _, _, _ string) error {
	s.changeCalls++
	return s.changeErr
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	body := `{"username":"ana.torres","email":"ana@example.com","password":"Clave123!","role":"instructor"}`
	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/registro", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			User  map[string]any `json:"user"`
			Token string         `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp.Success {
		t.Errorf("success = false")
	}
	if resp.Data.Token != "issued-token" {
		t.Errorf("token = %q", resp.Data.Token)
	}
	if resp.Data.User["username"] != "ana.torres" {
		t.Errorf("user = %v", resp.Data.User)
	}
	if svc.registerInput.Role != "instructor" {
		t.Errorf("service received role %q", svc.registerInput.Role)
	}

	// The stored digest must never reach the wire.
	raw := rec.Body.String()
	if strings.Contains(raw, "password") || strings.Contains(raw, "secret-digest") {
		t.Fatalf("response leaks password material: %s", raw)
	}
}

func TestAuthHandler_RegisterWeakPassword(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	for _, password := range []string{"short1A!", "alllowercase1!", "ALLUPPERCASE1!", "NoDigitsHere!", "NoSpecials123"} {
		body := `{"username":"ana","email":"ana@example.com","password":"` + password + `"}`
		c, _ := newAuthContext(t, http.MethodPost, "/api/auth/registro", body)

		err := h.Register(c)
		if password == "short1A!" {
			// Meets complexity and the minimum length of eight.
			if err != nil {
				t.Errorf("password %q: %v", password, err)
			}
			continue
		}

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Errorf("password %q: expected 400, got %v", password, err)
		}
	}
	if svc.registerCalls != 1 {
		t.Fatalf("service called %d times, weak passwords must be rejected before it", svc.registerCalls)
	}
}

func TestAuthHandler_RegisterInvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/registro", `{"username":`)

	err := h.Register(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed json, got %v", err)
	}
}

func TestAuthHandler_RegisterConflictPassesThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})
	body := `{"username":"ana","email":"ana@example.com","password":"Clave123!"}`
	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/registro", body)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for the central handler, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/login", `{"username":"ana","password":"Clave123!"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "issued-token") {
		t.Fatalf("token missing from body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "secret-digest") {
		t.Fatalf("response leaks the stored digest")
	}
}

func TestAuthHandler_LoginFailurePassesThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/login", `{"username":"ana","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for the central handler, got %v", err)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, http.MethodGet, "/api/auth/perfil", "")
	c.Set(middleware.ContextUserKey, &domain.User{
		ID: "u1", Username: "ana", Email: "ana@example.com",
		PasswordHash: "$2a$12$secret-digest", Role: domain.RoleStudent, Active: true,
	})

	if err := h.Profile(c); err != nil {
		t.Fatalf("profile: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret-digest") {
		t.Fatalf("profile leaks the stored digest: %s", rec.Body.String())
	}
}

func TestAuthHandler_ProfileWithoutAuth(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newAuthContext(t, http.MethodGet, "/api/auth/perfil", "")

	err := h.Profile(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)
	c, rec := newAuthContext(t, http.MethodPut, "/api/auth/cambiar-password",
		`{"current_password":"Clave123!","new_password":"Nueva456#"}`)
	c.Set(middleware.ContextUserKey, &domain.User{ID: "u1", Role: domain.RoleStudent, Active: true})

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.changeCalls != 1 {
		t.Fatalf("service called %d times", svc.changeCalls)
	}
}

func TestAuthHandler_ChangePasswordWrongCurrent(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{changeErr: domain.ErrInvalidCredentials})
	c, _ := newAuthContext(t, http.MethodPut, "/api/auth/cambiar-password",
		`{"current_password":"wrong","new_password":"Nueva456#"}`)
	c.Set(middleware.ContextUserKey, &domain.User{ID: "u1", Role: domain.RoleStudent, Active: true})

	err := h.ChangePassword(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if httpErr.Message != "current password is incorrect" {
		t.Fatalf("message = %v", httpErr.Message)
	}
}

func TestAuthHandler_ChangePasswordRejectedNew(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	// Too weak, and too long for bcrypt's 72-byte limit.
	for _, password := range []string{"weak", strings.Repeat("Aa1!", 25)} {
		c, _ := newAuthContext(t, http.MethodPut, "/api/auth/cambiar-password",
			`{"current_password":"Clave123!","new_password":"`+password+`"}`)
		c.Set(middleware.ContextUserKey, &domain.User{ID: "u1", Role: domain.RoleStudent, Active: true})

		err := h.ChangePassword(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Errorf("password %q: expected 400, got %v", password, err)
		}
	}
	if svc.changeCalls != 0 {
		t.Fatalf("rejected passwords must not reach the service")
	}
}
