package domain

import "errors"

var (
	// ErrInvalidCredentials is returned on any login failure. It is
	// deliberately generic: callers must not learn whether the email or
	// the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnlinkedService is returned when an appointment references a
	// service the chosen professional is not linked to.
	ErrUnlinkedService = errors.New("service not linked to professional")

	ErrUserNotFound        = errors.New("user not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidTransition is returned when an appointment status change
	// leaves the allowed state machine.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidSnapshot is returned when imported backup data is missing
	// one of the required collections. The store is left untouched.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrInvalidInput is wrapped by services for semantic validation
	// failures (bad role, commission rate out of range, malformed date).
	ErrInvalidInput = errors.New("invalid input")

	ErrForbidden = errors.New("access forbidden")
)
