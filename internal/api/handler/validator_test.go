package handler

import (
	"strings"
	"testing"
)

func TestValidator_StrongPassword(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		password string
		valid    bool
	}{
		{"Clave123!", true},
		{"Str0ng-Pass", true},
		{"Ñandú123$", true},
		{strings.Repeat("Aa1!", 18), true},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigitsHere!", false},
		{"NoSpecials123", false},
		// bcrypt keys on at most 72 bytes, so longer input is rejected up front.
		{strings.Repeat("Aa1!", 25), false},
		{"", false},
	}

	for _, tc := range cases {
		req := registerRequest{
			Username: "ana.torres",
			Email:    "ana@example.com",
			Password: tc.password,
		}
		err := v.Validate(&req)
		if tc.valid && err != nil {
			t.Errorf("password %q: expected valid, got %v", tc.password, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("password %q: expected rejection", tc.password)
		}
	}
}

func TestValidator_MessagesAreReadable(t *testing.T) {
	v := NewValidator()

	req := registerRequest{Username: "ab", Email: "not-an-email", Password: "Clave123!"}
	err := v.Validate(&req)
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, "username must be at least 3 characters") {
		t.Errorf("missing username message: %q", msg)
	}
	if !strings.Contains(msg, "email must be a valid email") {
		t.Errorf("missing email message: %q", msg)
	}
}

func TestValidator_RoleAllowList(t *testing.T) {
	v := NewValidator()

	for _, role := range []string{"", "admin", "instructor", "student"} {
		req := registerRequest{Username: "ana", Email: "ana@example.com", Password: "Clave123!", Role: role}
		if err := v.Validate(&req); err != nil {
			t.Errorf("role %q: %v", role, err)
		}
	}

	req := registerRequest{Username: "ana", Email: "ana@example.com", Password: "Clave123!", Role: "director"}
	if err := v.Validate(&req); err == nil {
		t.Fatalf("expected rejection of an unknown role")
	}
}
