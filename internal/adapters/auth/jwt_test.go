package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

const testSecret = "test-secret-that-is-at-least-32-bytes!"

func newTestIssuer(now time.Time) *JWTIssuer {
	i := NewJWTIssuer(testSecret, "taskflow-test", time.Hour)
	i.now = func() time.Time { return now }
	return i
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Now()
	i := newTestIssuer(now)
	want := domain.Principal{UserID: "u1", Role: domain.RoleManager, UserName: "Mona", OrgID: "org-1"}

	token, err := i.Issue(want)
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("token = %q, want three JWT segments", token)
	}

	got, err := i.Verify(token)
	if err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("Verify() mismatch (-want +got):\n%s", diff)
	}
}

func TestJWTIssuer_Expired(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	i := newTestIssuer(issued)
	token, err := i.Issue(domain.Principal{UserID: "u1", Role: domain.RoleEmployee})
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}

	i.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = i.Verify(token)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("Verify() err = %v, want ErrUnauthorized", err)
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("Verify() err = %v, want it to wrap jwt.ErrTokenExpired", err)
	}
}

func TestJWTIssuer_Rejects(t *testing.T) {
	t.Parallel()

	now := time.Now()
	i := newTestIssuer(now)
	valid, err := i.Issue(domain.Principal{UserID: "u1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}

	sign := func(method jwt.SigningMethod, key any, c jwt.Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, c).SignedString(key)
		if err != nil {
			t.Fatalf("SignedString() failed: %v", err)
		}
		return s
	}
	base := jwt.RegisteredClaims{
		Issuer:    "taskflow-test",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	otherIssuer := base
	otherIssuer.Issuer = "someone-else"
	noExpiry := base
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"tampered", valid[:len(valid)-2] + "xx"},
		{"wrong secret", sign(jwt.SigningMethodHS256, []byte("another-secret-of-sufficient-length"),
			&claims{UserID: "u1", Role: "admin", RegisteredClaims: base})},
		{"wrong issuer", sign(jwt.SigningMethodHS256, []byte(testSecret),
			&claims{UserID: "u1", Role: "admin", RegisteredClaims: otherIssuer})},
		{"no expiry", sign(jwt.SigningMethodHS256, []byte(testSecret),
			&claims{UserID: "u1", Role: "admin", RegisteredClaims: noExpiry})},
		{"wrong algorithm", sign(jwt.SigningMethodHS512, []byte(testSecret),
			&claims{UserID: "u1", Role: "admin", RegisteredClaims: base})},
		{"unknown role", sign(jwt.SigningMethodHS256, []byte(testSecret),
			&claims{UserID: "u1", Role: "root", RegisteredClaims: base})},
		{"missing user", sign(jwt.SigningMethodHS256, []byte(testSecret),
			&claims{Role: "admin", RegisteredClaims: base})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := i.Verify(tt.token); !errors.Is(err, domain.ErrUnauthorized) {
				t.Errorf("Verify() err = %v, want ErrUnauthorized", err)
			}
		})
	}
}
