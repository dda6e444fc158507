package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/belezagestao/salon-system/internal/core/domain"
	"github.com/belezagestao/salon-system/internal/core/ports"
)

// BackupService exports and restores full store snapshots. Both
// operations are admin-gated at the router.
type BackupService struct {
	store  ports.BackupStore
	now    func() time.Time
	logger zerolog.Logger
}

func NewBackupService(store ports.BackupStore, now func() time.Time, logger zerolog.Logger) *BackupService {
	if now == nil {
		now = time.Now
	}
	return &BackupService{store: store, now: now, logger: logger}
}

func (s *BackupService) Export(ctx context.Context) (*domain.Snapshot, error) {
	snap := s.store.ExportSnapshot(s.now())
	s.logger.Info().
		Int("users", len(snap.Users)).
		Int("services", len(snap.Services)).
		Int("appointments", len(snap.Appointments)).
		Msg("snapshot exported")
	return &snap, nil
}

func (s *BackupService) Import(ctx context.Context, raw []byte) error {
	if err := s.store.ImportSnapshot(raw); err != nil {
		return err
	}
	s.logger.Info().Msg("snapshot imported")
	return nil
}
