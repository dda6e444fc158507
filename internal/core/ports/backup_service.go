package ports

import (
	"context"

	"github.com/belezagestao/salon-system/internal/core/domain"
)

// BackupService exports and restores full snapshots of the store.
// Import is all-or-nothing: missing collections reject the whole payload
// with domain.ErrInvalidSnapshot and leave the store unchanged.
type BackupService interface {
	Export(ctx context.Context) (*domain.Snapshot, error)
	Import(ctx context.Context, raw []byte) error
}
