package ports

import (
	"time"

	"github.com/belezagestao/salon-system/internal/core/domain"
)

// AuthStore is the read access the session gate needs: the full user
// collection, since login scans for the first case-insensitive email match.
type AuthStore interface {
	Users() []domain.User
}

// StaffStore is the slice of the repository store the staff service needs.
// All read methods return copies; mutations write through to the KV port.
type StaffStore interface {
	Users() []domain.User
	UserByID(id string) (domain.User, error)
	AddUser(u domain.User) error
	UpdateUser(u domain.User) error
	DeleteUser(id string) error
}

// CatalogStore covers the service price list collection.
type CatalogStore interface {
	Services() []domain.Service
	ServiceByID(id string) (domain.Service, error)
	AddService(s domain.Service) error
	UpdateService(s domain.Service) error
	DeleteService(id string) error
}

// BookingStore covers the appointment collection plus the read access the
// booking path needs to validate references.
type BookingStore interface {
	Users() []domain.User
	UserByID(id string) (domain.User, error)
	Services() []domain.Service
	ServiceByID(id string) (domain.Service, error)
	Appointments() []domain.Appointment
	AppointmentByID(id string) (domain.Appointment, error)
	AddAppointment(a domain.Appointment) error
	UpdateAppointmentStatus(id string, status domain.AppointmentStatus) error
}

// ReportStore is the read-only view the report service aggregates over.
type ReportStore interface {
	Users() []domain.User
	Services() []domain.Service
	Appointments() []domain.Appointment
}

// BackupStore covers snapshot export and wholesale import.
type BackupStore interface {
	ExportSnapshot(now time.Time) domain.Snapshot
	ImportSnapshot(raw []byte) error
}
