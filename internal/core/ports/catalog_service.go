package ports

import (
	"context"

	"github.com/belezagestao/salon-system/internal/core/domain"
)

// ServiceInput carries the editable fields of a price list entry.
type ServiceInput struct {
	Name  string
	Price float64
}

// CatalogService manages the service price list. Write operations are
// admin-only; the transport layer enforces the role gate.
type CatalogService interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	CreateService(ctx context.Context, input ServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, input ServiceInput) (*domain.Service, error)
	DeleteService(ctx context.Context, id string) error
}
