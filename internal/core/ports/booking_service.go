package ports

import (
	"context"

	"github.com/belezagestao/salon-system/internal/core/domain"
)

// CreateAppointmentInput carries the data for a new booking. Date must be
// in domain.DateLayout form and Time in domain.TimeLayout form.
type CreateAppointmentInput struct {
	ProfessionalID string
	ServiceID      string
	ClientName     string
	Date           string
	Time           string
}

// BookingService manages appointments. A PROFESSIONAL actor is scoped to
// their own appointments on every operation; receptionists and admins see
// the whole agenda.
type BookingService interface {
	ListAppointments(ctx context.Context, actor Actor) ([]domain.Appointment, error)
	CreateAppointment(ctx context.Context, actor Actor, input CreateAppointmentInput) (*domain.Appointment, error)
	// UpdateStatus transitions an appointment out of SCHEDULED. COMPLETED
	// and CANCELLED are terminal; any other change fails with
	// domain.ErrInvalidTransition.
	UpdateStatus(ctx context.Context, actor Actor, id string, status string) (*domain.Appointment, error)
}
