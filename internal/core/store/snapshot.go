package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/belezagestao/salon-system/internal/core/domain"
)

// ExportSnapshot returns an immutable point-in-time copy of all three
// collections plus the export timestamp.
func (s *Store) ExportSnapshot(now time.Time) domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := domain.Snapshot{
		Users:        make([]domain.User, len(s.users)),
		Services:     make([]domain.Service, len(s.services)),
		Appointments: make([]domain.Appointment, len(s.appointments)),
		ExportDate:   now.UTC().Format(time.RFC3339),
	}
	for i, u := range s.users {
		snap.Users[i] = cloneUser(u)
	}
	copy(snap.Services, s.services)
	copy(snap.Appointments, s.appointments)
	return snap
}

// ImportSnapshot replaces all three collections wholesale. The payload
// must contain the users, services, and appointments arrays; anything
// else is ignored. On any validation failure the store is left unchanged
// and nothing is persisted.
func (s *Store) ImportSnapshot(raw []byte) error {
	var probe struct {
		Users        *[]domain.User        `json:"users"`
		Services     *[]domain.Service     `json:"services"`
		Appointments *[]domain.Appointment `json:"appointments"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	if probe.Users == nil || probe.Services == nil || probe.Appointments == nil {
		return fmt.Errorf("%w: missing required collection", domain.ErrInvalidSnapshot)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = *probe.Users
	s.services = *probe.Services
	s.appointments = *probe.Appointments

	if err := s.persistUsersLocked(); err != nil {
		return err
	}
	if err := s.persistServicesLocked(); err != nil {
		return err
	}
	return s.persistAppointmentsLocked()
}
