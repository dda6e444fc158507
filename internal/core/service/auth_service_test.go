package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/belezagestao/salon-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stub store
// ---------------------------------------------------------------------------

type stubAuthStore struct {
	users []domain.User
}

func (s *stubAuthStore) Users() []domain.User {
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	store := &stubAuthStore{users: []domain.User{
		{ID: "1", Name: "Ana Admin", Email: "admin@salao.com", PasswordHash: hashOf(t, "123456"), Role: domain.RoleAdmin},
		{ID: "3", Name: "Bruna Cabelos", Email: "bruna@salao.com", PasswordHash: hashOf(t, "outra"), Role: domain.RoleProfessional},
	}}
	return NewAuthService(store, testSecret, time.Hour)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	svc := newAuthFixture(t)

	token, user, err := svc.Login(context.Background(), "admin@salao.com", "123456")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if user.ID != "1" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_EmailCaseInsensitive(t *testing.T) {
	svc := newAuthFixture(t)

	_, user, err := svc.Login(context.Background(), "ADMIN@SALAO.COM", "123456")
	if err != nil {
		t.Fatalf("Login with upper-cased email: %v", err)
	}
	if user.ID != "1" {
		t.Fatalf("matched wrong user: %+v", user)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "admin@salao.com", "errada")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "ninguem@salao.com", "123456")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email must look like bad credentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := newAuthFixture(t)

	for _, tc := range []struct{ email, password string }{
		{"", "123456"},
		{"admin@salao.com", ""},
	} {
		if _, _, err := svc.Login(context.Background(), tc.email, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q): expected ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
	}
}

func TestAuthService_TokenClaims(t *testing.T) {
	svc := newAuthFixture(t)

	token, _, err := svc.Login(context.Background(), "bruna@salao.com", "outra")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}

	if claims["sub"] != "3" {
		t.Errorf("sub = %v, want 3", claims["sub"])
	}
	if claims["name"] != "Bruna Cabelos" {
		t.Errorf("name = %v", claims["name"])
	}
	if claims["role"] != string(domain.RoleProfessional) {
		t.Errorf("role = %v", claims["role"])
	}
	if _, ok := claims["exp"].(float64); !ok {
		t.Error("exp claim missing")
	}
}
