package ports

import (
	"context"

	"github.com/belezagestao/salon-system/internal/core/domain"
)

// CreateUserInput carries the data for a new staff member.
type CreateUserInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	CommissionRate float64
	ServiceIDs     []string
}

// UpdateUserInput carries a full replacement of a staff member's editable
// fields. Password is optional: when empty the stored hash is kept.
type UpdateUserInput struct {
	ID             string
	Name           string
	Email          string
	Password       string
	Role           string
	CommissionRate float64
	ServiceIDs     []string
}

// StaffService manages the staff collection. Write operations are
// admin-only; the transport layer enforces the role gate.
type StaffService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
