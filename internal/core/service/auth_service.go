package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/belezagestao/salon-system/internal/core/domain"
	"github.com/belezagestao/salon-system/internal/core/ports"
)

// AuthService implements the session gate: credential login and token
// issuance. Failures are always the generic invalid-credentials error so
// callers cannot distinguish an unknown email from a wrong password.
type AuthService struct {
	store     ports.AuthStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(store ports.AuthStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login matches email case-insensitively against all users (first match
// wins) and verifies the password against the stored bcrypt hash.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	var match *domain.User
	for _, u := range s.store.Users() {
		if strings.EqualFold(u.Email, email) {
			match = &u
			break
		}
	}
	if match == nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(match.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(match)
	if err != nil {
		return "", nil, err
	}
	return token, match, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"role": string(user.Role),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
