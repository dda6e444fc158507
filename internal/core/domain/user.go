package domain

// Role identifies what a staff member is allowed to see and do.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleReceptionist Role = "RECEPTIONIST"
	RoleProfessional Role = "PROFESSIONAL"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleReceptionist, RoleProfessional:
		return true
	}
	return false
}

// User models a salon staff member. Email is the login key, compared
// case-insensitively. CommissionRate and ServiceIDs are only meaningful
// when Role is PROFESSIONAL; CommissionRate is a fraction in [0,1].
type User struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	PasswordHash   string   `json:"passwordHash,omitempty"`
	Role           Role     `json:"role"`
	CommissionRate float64  `json:"commissionRate,omitempty"`
	ServiceIDs     []string `json:"serviceIds,omitempty"`
}

// ProvidesService reports whether the user is linked to the given service.
func (u User) ProvidesService(serviceID string) bool {
	for _, id := range u.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
