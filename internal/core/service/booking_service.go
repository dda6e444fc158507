package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/belezagestao/salon-system/internal/core/domain"
	"github.com/belezagestao/salon-system/internal/core/ports"
	"github.com/belezagestao/salon-system/internal/core/rules"
)

// BookingService creates appointments and drives their status lifecycle.
// The referential rule (service must be linked to the professional) is
// enforced here, on every creation path.
type BookingService struct {
	store  ports.BookingStore
	newID  func() string
	logger zerolog.Logger
}

func NewBookingService(store ports.BookingStore, logger zerolog.Logger) *BookingService {
	return &BookingService{store: store, newID: uuid.NewString, logger: logger}
}

// ListAppointments returns the agenda visible to the actor: everything
// for admins and receptionists, own appointments only for professionals.
func (s *BookingService) ListAppointments(ctx context.Context, actor ports.Actor) ([]domain.Appointment, error) {
	all := s.store.Appointments()
	if actor.Role != domain.RoleProfessional {
		return all, nil
	}

	var own []domain.Appointment
	for _, a := range all {
		if a.ProfessionalID == actor.UserID {
			own = append(own, a)
		}
	}
	return own, nil
}

func (s *BookingService) CreateAppointment(ctx context.Context, actor ports.Actor, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	professionalID := input.ProfessionalID
	if actor.Role == domain.RoleProfessional {
		// Professionals only book for themselves.
		if professionalID == "" {
			professionalID = actor.UserID
		} else if professionalID != actor.UserID {
			return nil, domain.ErrForbidden
		}
	}

	if _, err := time.Parse(domain.DateLayout, input.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be in %s form", domain.ErrInvalidInput, domain.DateLayout)
	}
	if _, err := time.Parse(domain.TimeLayout, input.Time); err != nil {
		return nil, fmt.Errorf("%w: time must be in %s form", domain.ErrInvalidInput, domain.TimeLayout)
	}

	prof, err := s.store.UserByID(professionalID)
	if err != nil {
		return nil, err
	}
	if prof.Role != domain.RoleProfessional {
		return nil, fmt.Errorf("%w: user %s is not a professional", domain.ErrInvalidInput, professionalID)
	}
	if _, err := s.store.ServiceByID(input.ServiceID); err != nil {
		return nil, err
	}
	if err := rules.ValidateBooking(professionalID, input.ServiceID, s.store.Users(), s.store.Services()); err != nil {
		return nil, err
	}

	appointment := domain.Appointment{
		ID:             s.newID(),
		ProfessionalID: professionalID,
		ServiceID:      input.ServiceID,
		ClientName:     input.ClientName,
		Date:           input.Date,
		Time:           input.Time,
		Status:         domain.StatusScheduled,
	}
	if err := s.store.AddAppointment(appointment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", appointment.ID).
		Str("professional_id", professionalID).
		Str("service_id", input.ServiceID).
		Msg("appointment created")
	return &appointment, nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, actor ports.Actor, id string, status string) (*domain.Appointment, error) {
	next := domain.AppointmentStatus(status)
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}

	existing, err := s.store.AppointmentByID(id)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleProfessional && existing.ProfessionalID != actor.UserID {
		return nil, domain.ErrForbidden
	}

	if err := s.store.UpdateAppointmentStatus(id, next); err != nil {
		return nil, err
	}

	existing.Status = next
	s.logger.Info().Str("appointment_id", id).Str("status", status).Msg("appointment status updated")
	return &existing, nil
}
