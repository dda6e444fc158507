package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/belezagestao/salon-system/internal/core/domain"
	"github.com/belezagestao/salon-system/internal/core/ports"
)

// StaffService manages the staff collection. The router restricts write
// operations to administrators; everyone else gets read-only access.
type StaffService struct {
	store  ports.StaffStore
	newID  func() string
	logger zerolog.Logger
}

func NewStaffService(store ports.StaffStore, logger zerolog.Logger) *StaffService {
	return &StaffService{store: store, newID: uuid.NewString, logger: logger}
}

func (s *StaffService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.store.Users(), nil
}

func (s *StaffService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	role := domain.Role(input.Role)
	if err := validateStaffInput(role, input.CommissionRate); err != nil {
		return nil, err
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		ID:           s.newID(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if role == domain.RoleProfessional {
		user.CommissionRate = input.CommissionRate
		user.ServiceIDs = input.ServiceIDs
	}

	if err := s.store.AddUser(user); err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("staff member created")
	return &user, nil
}

func (s *StaffService) UpdateUser(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	role := domain.Role(input.Role)
	if err := validateStaffInput(role, input.CommissionRate); err != nil {
		return nil, err
	}

	existing, err := s.store.UserByID(input.ID)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		ID:           existing.ID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: existing.PasswordHash,
		Role:         role,
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if role == domain.RoleProfessional {
		user.CommissionRate = input.CommissionRate
		user.ServiceIDs = input.ServiceIDs
	}

	if err := s.store.UpdateUser(user); err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", user.ID).Msg("staff member updated")
	return &user, nil
}

func (s *StaffService) DeleteUser(ctx context.Context, id string) error {
	if err := s.store.DeleteUser(id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("staff member deleted")
	return nil
}

func validateStaffInput(role domain.Role, commissionRate float64) error {
	if !role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}
	if commissionRate < 0 || commissionRate > 1 {
		return fmt.Errorf("%w: commission rate must be between 0 and 1", domain.ErrInvalidInput)
	}
	return nil
}
