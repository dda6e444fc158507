// Package rules holds the referential consistency checks between users,
// services, and appointments. All functions are pure: they work on the
// snapshots passed in and never touch the store.
package rules

import (
	"github.com/belezagestao/salon-system/internal/core/domain"
)

// AvailableServices returns the services the given professional may be
// booked for: the intersection of the global service set with the
// professional's linked service ids. The result is empty when the
// professional does not exist, is not a PROFESSIONAL, or has no links.
func AvailableServices(professionalID string, users []domain.User, services []domain.Service) []domain.Service {
	var prof *domain.User
	for i := range users {
		if users[i].ID == professionalID {
			prof = &users[i]
			break
		}
	}
	if prof == nil || prof.Role != domain.RoleProfessional {
		return nil
	}

	var available []domain.Service
	for _, svc := range services {
		if prof.ProvidesService(svc.ID) {
			available = append(available, svc)
		}
	}
	return available
}

// ValidateBooking rejects an appointment whose service is not in the
// professional's available set with domain.ErrUnlinkedService.
func ValidateBooking(professionalID, serviceID string, users []domain.User, services []domain.Service) error {
	for _, svc := range AvailableServices(professionalID, users, services) {
		if svc.ID == serviceID {
			return nil
		}
	}
	return domain.ErrUnlinkedService
}
