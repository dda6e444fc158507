package domain

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// validTransitions defines the allowed state machine transitions.
// COMPLETED and CANCELLED are terminal.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {StatusCompleted, StatusCancelled},
}

// IsValid reports whether s is one of the known statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DateLayout is the calendar-date form appointments are stored in.
const DateLayout = "2006-01-02"

// TimeLayout is the time-of-day form appointments are stored in (24h).
const TimeLayout = "15:04"

// Appointment books a client with a professional for a single service.
// Date and Time are kept as strings in DateLayout / TimeLayout form;
// appointments are never deleted, only status-transitioned.
type Appointment struct {
	ID             string            `json:"id"`
	ProfessionalID string            `json:"professionalId"`
	ServiceID      string            `json:"serviceId"`
	ClientName     string            `json:"clientName"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	Status         AppointmentStatus `json:"status"`
}

// Day parses the appointment's calendar date.
func (a Appointment) Day() (time.Time, error) {
	return time.Parse(DateLayout, a.Date)
}
