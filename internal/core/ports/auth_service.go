package ports

import (
	"context"

	"github.com/belezagestao/salon-system/internal/core/domain"
)

// AuthService authenticates staff members and issues session tokens.
type AuthService interface {
	// Login matches email case-insensitively and verifies the password.
	// On success it returns a signed session token and the matched user;
	// on any failure it returns domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// Actor identifies the authenticated caller of a service operation, as
// extracted from the session token.
type Actor struct {
	UserID string
	Role   domain.Role
}
