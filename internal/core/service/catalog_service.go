package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/belezagestao/salon-system/internal/core/domain"
	"github.com/belezagestao/salon-system/internal/core/ports"
)

// CatalogService manages the service price list.
type CatalogService struct {
	store  ports.CatalogStore
	newID  func() string
	logger zerolog.Logger
}

func NewCatalogService(store ports.CatalogStore, logger zerolog.Logger) *CatalogService {
	return &CatalogService{store: store, newID: uuid.NewString, logger: logger}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.store.Services(), nil
}

func (s *CatalogService) CreateService(ctx context.Context, input ports.ServiceInput) (*domain.Service, error) {
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	svc := domain.Service{
		ID:    s.newID(),
		Name:  input.Name,
		Price: input.Price,
	}
	if err := s.store.AddService(svc); err != nil {
		return nil, err
	}
	s.logger.Info().Str("service_id", svc.ID).Str("name", svc.Name).Msg("service created")
	return &svc, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id string, input ports.ServiceInput) (*domain.Service, error) {
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	svc := domain.Service{
		ID:    id,
		Name:  input.Name,
		Price: input.Price,
	}
	if err := s.store.UpdateService(svc); err != nil {
		return nil, err
	}
	s.logger.Info().Str("service_id", id).Msg("service updated")
	return &svc, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.store.DeleteService(id); err != nil {
		return err
	}
	s.logger.Info().Str("service_id", id).Msg("service deleted")
	return nil
}
