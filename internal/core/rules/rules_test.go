package rules

import (
	"errors"
	"testing"

	"github.com/belezagestao/salon-system/internal/core/domain"
)

var services = []domain.Service{
	{ID: "s1", Name: "Corte Feminino", Price: 120},
	{ID: "s2", Name: "Manicure", Price: 45},
	{ID: "s3", Name: "Coloração", Price: 200},
}

var users = []domain.User{
	{ID: "1", Name: "Ana Admin", Role: domain.RoleAdmin},
	{ID: "3", Name: "Bruna", Role: domain.RoleProfessional, ServiceIDs: []string{"s1", "s2"}},
	{ID: "4", Name: "Diego", Role: domain.RoleProfessional, ServiceIDs: []string{"s2", "ghost"}},
}

// ---------------------------------------------------------------------------
// AvailableServices
// ---------------------------------------------------------------------------

func TestAvailableServices_Intersection(t *testing.T) {
	got := AvailableServices("3", users, services)

	if len(got) != 2 {
		t.Fatalf("expected 2 services, got %d", len(got))
	}
	if got[0].ID != "s1" || got[1].ID != "s2" {
		t.Fatalf("expected s1 and s2 in catalog order, got %s and %s", got[0].ID, got[1].ID)
	}
}

func TestAvailableServices_DanglingLinkIgnored(t *testing.T) {
	// Diego links "ghost", which is not in the catalog.
	got := AvailableServices("4", users, services)

	if len(got) != 1 || got[0].ID != "s2" {
		t.Fatalf("dangling links must not surface, got %v", got)
	}
}

func TestAvailableServices_UnknownProfessional(t *testing.T) {
	if got := AvailableServices("nope", users, services); len(got) != 0 {
		t.Fatalf("unknown professional must yield empty set, got %v", got)
	}
}

func TestAvailableServices_NonProfessionalRole(t *testing.T) {
	if got := AvailableServices("1", users, services); len(got) != 0 {
		t.Fatalf("admin must have no bookable services, got %v", got)
	}
}

// ---------------------------------------------------------------------------
// ValidateBooking
// ---------------------------------------------------------------------------

func TestValidateBooking_LinkedService(t *testing.T) {
	if err := ValidateBooking("3", "s1", users, services); err != nil {
		t.Fatalf("linked service must validate, got %v", err)
	}
}

func TestValidateBooking_UnlinkedService(t *testing.T) {
	err := ValidateBooking("4", "s1", users, services)
	if !errors.Is(err, domain.ErrUnlinkedService) {
		t.Fatalf("expected ErrUnlinkedService, got %v", err)
	}
}

func TestValidateBooking_UnknownProfessional(t *testing.T) {
	err := ValidateBooking("nope", "s1", users, services)
	if !errors.Is(err, domain.ErrUnlinkedService) {
		t.Fatalf("expected ErrUnlinkedService, got %v", err)
	}
}
