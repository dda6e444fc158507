package store

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/belezagestao/salon-system/internal/core/domain"
)

// defaultPassword is the credential every seeded account starts with.
// Operators are expected to change it after first login.
const defaultPassword = "123456"

var seededServiceIDs = []string{"s1", "s2", "s3"}

// seedUsers returns the built-in staff: one admin, one receptionist, and
// two professionals pre-linked to every seeded service.
func seedUsers() []domain.User {
	hash := mustHash(defaultPassword)
	return []domain.User{
		{ID: "1", Name: "Ana Admin", Email: "admin@salao.com", PasswordHash: hash, Role: domain.RoleAdmin},
		{ID: "2", Name: "Carla Recepcionista", Email: "recepcao@salao.com", PasswordHash: hash, Role: domain.RoleReceptionist},
		{ID: "3", Name: "Bruna Cabelos", Email: "bruna@salao.com", PasswordHash: hash, Role: domain.RoleProfessional, CommissionRate: 0.5, ServiceIDs: seededServiceIDs},
		{ID: "4", Name: "Diego Unhas", Email: "diego@salao.com", PasswordHash: hash, Role: domain.RoleProfessional, CommissionRate: 0.4, ServiceIDs: seededServiceIDs},
	}
}

func seedServices() []domain.Service {
	return []domain.Service{
		{ID: "s1", Name: "Corte Feminino", Price: 120},
		{ID: "s2", Name: "Manicure", Price: 45},
		{ID: "s3", Name: "Coloração", Price: 200},
	}
}

func seedAppointments() []domain.Appointment {
	return []domain.Appointment{
		{ID: "a1", ProfessionalID: "3", ServiceID: "s1", ClientName: "Maria Silva", Date: "2023-11-20", Time: "14:00", Status: domain.StatusCompleted},
		{ID: "a2", ProfessionalID: "4", ServiceID: "s2", ClientName: "Joana Santos", Date: "2023-11-20", Time: "15:00", Status: domain.StatusScheduled},
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on oversized input; the default password is
		// a compile-time constant well under the limit.
		panic(err)
	}
	return string(hash)
}
