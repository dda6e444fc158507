// Package store holds the three salon collections (users, services,
// appointments) as the single in-memory source of truth, mirrored to a
// persisted key-value port under three fixed keys. Reads may run in
// parallel; all mutation goes through this package, and every mutation
// writes the affected collection through to the KV port on a serialized
// background writer.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/belezagestao/salon-system/internal/core/domain"
	"github.com/belezagestao/salon-system/internal/core/ports"
)

const (
	keyUsers        = "users"
	keyServices     = "services"
	keyAppointments = "appointments"
)

// Store is the repository for all persisted salon state.
type Store struct {
	mu           sync.RWMutex
	users        []domain.User
	services     []domain.Service
	appointments []domain.Appointment

	writer *writer
	log    zerolog.Logger
}

// New loads each collection from its persisted key, seeding the built-in
// defaults for keys that have never been written, and starts the
// write-through writer.
func New(ctx context.Context, kv ports.KV, log zerolog.Logger) (*Store, error) {
	s := &Store{
		writer: newWriter(kv, log),
		log:    log,
	}

	if err := loadOrSeed(ctx, kv, keyUsers, &s.users, seedUsers); err != nil {
		return nil, err
	}
	if err := loadOrSeed(ctx, kv, keyServices, &s.services, seedServices); err != nil {
		return nil, err
	}
	if err := loadOrSeed(ctx, kv, keyAppointments, &s.appointments, seedAppointments); err != nil {
		return nil, err
	}

	s.writer.start()
	return s, nil
}

// loadOrSeed fills dst from the persisted key when present, otherwise
// from seed(), persisting the seed synchronously so a fresh install is
// durable before the first request.
func loadOrSeed[T any](ctx context.Context, kv ports.KV, key string, dst *[]T, seed func() []T) error {
	blob, ok, err := kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("store: load %s: %w", key, err)
	}
	if ok {
		if err := json.Unmarshal(blob, dst); err != nil {
			return fmt.Errorf("store: decode %s: %w", key, err)
		}
		return nil
	}

	*dst = seed()
	seeded, err := json.Marshal(*dst)
	if err != nil {
		return fmt.Errorf("store: encode %s seed: %w", key, err)
	}
	if err := kv.Set(ctx, key, seeded); err != nil {
		return fmt.Errorf("store: persist %s seed: %w", key, err)
	}
	return nil
}

// Dirty reports whether any write-through has failed since the last
// successful save of the affected key. When true, in-memory changes may
// not be persisted.
func (s *Store) Dirty() bool {
	return s.writer.dirty()
}

// Flush blocks until every save enqueued so far has been attempted.
func (s *Store) Flush(ctx context.Context) error {
	return s.writer.flush(ctx)
}

// Close flushes pending saves, stops the writer, and closes the KV port.
func (s *Store) Close(ctx context.Context) error {
	return s.writer.close(ctx)
}

// --- Users ---

// Users returns a copy of the user collection in insertion order.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, len(s.users))
	for i, u := range s.users {
		out[i] = cloneUser(u)
	}
	return out
}

// UserByID returns the user with the given id.
func (s *Store) UserByID(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

// AddUser appends a new user and writes the collection through.
func (s *Store) AddUser(u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.ID == u.ID {
			return fmt.Errorf("store: user %s already exists", u.ID)
		}
	}
	s.users = append(s.users, cloneUser(u))
	return s.persistUsersLocked()
}

// UpdateUser replaces the user with the same id.
func (s *Store) UpdateUser(u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.users {
		if existing.ID == u.ID {
			s.users[i] = cloneUser(u)
			return s.persistUsersLocked()
		}
	}
	return domain.ErrUserNotFound
}

// DeleteUser removes the user with the given id.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.users {
		if existing.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return s.persistUsersLocked()
		}
	}
	return domain.ErrUserNotFound
}

// --- Services ---

// Services returns a copy of the price list in insertion order.
func (s *Store) Services() []domain.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Service, len(s.services))
	copy(out, s.services)
	return out
}

// ServiceByID returns the service with the given id.
func (s *Store) ServiceByID(id string) (domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, svc := range s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return domain.Service{}, domain.ErrServiceNotFound
}

// AddService appends a new price list entry.
func (s *Store) AddService(svc domain.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.services {
		if existing.ID == svc.ID {
			return fmt.Errorf("store: service %s already exists", svc.ID)
		}
	}
	s.services = append(s.services, svc)
	return s.persistServicesLocked()
}

// UpdateService replaces the service with the same id.
func (s *Store) UpdateService(svc domain.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.services {
		if existing.ID == svc.ID {
			s.services[i] = svc
			return s.persistServicesLocked()
		}
	}
	return domain.ErrServiceNotFound
}

// DeleteService removes the service with the given id.
func (s *Store) DeleteService(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.services {
		if existing.ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return s.persistServicesLocked()
		}
	}
	return domain.ErrServiceNotFound
}

// --- Appointments ---

// Appointments returns a copy of the appointment collection in insertion
// order.
func (s *Store) Appointments() []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// AppointmentByID returns the appointment with the given id.
func (s *Store) AppointmentByID(id string) (domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Appointment{}, domain.ErrAppointmentNotFound
}

// AddAppointment appends a new appointment. Appointments are never
// deleted, only status-transitioned.
func (s *Store) AddAppointment(a domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.appointments {
		if existing.ID == a.ID {
			return fmt.Errorf("store: appointment %s already exists", a.ID)
		}
	}
	s.appointments = append(s.appointments, a)
	return s.persistAppointmentsLocked()
}

// UpdateAppointmentStatus transitions only the status field, enforcing
// the SCHEDULED → {COMPLETED, CANCELLED} state machine.
func (s *Store) UpdateAppointmentStatus(id string, status domain.AppointmentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.appointments {
		if existing.ID != id {
			continue
		}
		if !existing.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, existing.Status, status)
		}
		s.appointments[i].Status = status
		return s.persistAppointmentsLocked()
	}
	return domain.ErrAppointmentNotFound
}

// --- Write-through ---

// The persist*Locked helpers marshal under the store lock so saves are
// enqueued in mutation order, preserving the single-writer model.

func (s *Store) persistUsersLocked() error {
	return s.persistLocked(keyUsers, s.users)
}

func (s *Store) persistServicesLocked() error {
	return s.persistLocked(keyServices, s.services)
}

func (s *Store) persistAppointmentsLocked() error {
	return s.persistLocked(keyAppointments, s.appointments)
}

func (s *Store) persistLocked(key string, collection any) error {
	blob, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	s.writer.enqueue(key, blob)
	return nil
}

func cloneUser(u domain.User) domain.User {
	clone := u
	if u.ServiceIDs != nil {
		clone.ServiceIDs = make([]string, len(u.ServiceIDs))
		copy(clone.ServiceIDs, u.ServiceIDs)
	}
	return clone
}
