package report

import (
	"math"
	"testing"

	"github.com/belezagestao/salon-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

var testServices = []domain.Service{
	{ID: "s1", Name: "Corte Feminino", Price: 120},
	{ID: "s2", Name: "Manicure", Price: 45},
	{ID: "s3", Name: "Coloração", Price: 200},
}

var testUsers = []domain.User{
	{ID: "1", Name: "Ana Admin", Role: domain.RoleAdmin},
	{ID: "3", Name: "Bruna", Role: domain.RoleProfessional, CommissionRate: 0.5, ServiceIDs: []string{"s1", "s2", "s3"}},
	{ID: "4", Name: "Diego", Role: domain.RoleProfessional, CommissionRate: 0.4, ServiceIDs: []string{"s2"}},
}

func completed(id, professionalID, serviceID string) domain.Appointment {
	return domain.Appointment{
		ID:             id,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           "2023-11-20",
		Time:           "14:00",
		Status:         domain.StatusCompleted,
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// ---------------------------------------------------------------------------
// Aggregate
// ---------------------------------------------------------------------------

func TestAggregate_EmptyInput(t *testing.T) {
	got := Aggregate(nil, testServices, testUsers)
	if got.TotalRevenue != 0 || got.TotalCommissions != 0 || got.NetProfit != 0 || got.Count != 0 {
		t.Fatalf("empty input must produce zero summary, got %+v", got)
	}
}

func TestAggregate_SingleCompletedAppointment(t *testing.T) {
	// Bruna (0.5 commission) completes a Corte Feminino (120).
	got := Aggregate([]domain.Appointment{completed("a1", "3", "s1")}, testServices, testUsers)

	if !closeTo(got.TotalRevenue, 120) {
		t.Errorf("TotalRevenue = %v, want 120", got.TotalRevenue)
	}
	if !closeTo(got.TotalCommissions, 60) {
		t.Errorf("TotalCommissions = %v, want 60", got.TotalCommissions)
	}
	if !closeTo(got.NetProfit, 60) {
		t.Errorf("NetProfit = %v, want 60", got.NetProfit)
	}
	if got.Count != 1 {
		t.Errorf("Count = %d, want 1", got.Count)
	}
}

func TestAggregate_OnlyCompletedCount(t *testing.T) {
	scheduled := completed("a2", "3", "s1")
	scheduled.Status = domain.StatusScheduled
	cancelled := completed("a3", "3", "s3")
	cancelled.Status = domain.StatusCancelled

	got := Aggregate([]domain.Appointment{
		completed("a1", "3", "s2"),
		scheduled,
		cancelled,
	}, testServices, testUsers)

	if got.Count != 1 {
		t.Fatalf("Count = %d, want 1 (SCHEDULED and CANCELLED excluded)", got.Count)
	}
	if !closeTo(got.TotalRevenue, 45) {
		t.Fatalf("TotalRevenue = %v, want 45", got.TotalRevenue)
	}
}

func TestAggregate_UnknownServiceSkipped(t *testing.T) {
	got := Aggregate([]domain.Appointment{
		completed("a1", "3", "deleted-service"),
		completed("a2", "3", "s1"),
	}, testServices, testUsers)

	if got.Count != 1 {
		t.Fatalf("appointments with unresolvable service must be skipped, Count = %d", got.Count)
	}
	if !closeTo(got.TotalRevenue, 120) {
		t.Fatalf("TotalRevenue = %v, want 120", got.TotalRevenue)
	}
}

func TestAggregate_UnknownProfessionalZeroCommission(t *testing.T) {
	got := Aggregate([]domain.Appointment{completed("a1", "gone", "s3")}, testServices, testUsers)

	if got.Count != 1 {
		t.Fatalf("Count = %d, want 1 (appointment still included)", got.Count)
	}
	if !closeTo(got.TotalCommissions, 0) {
		t.Errorf("TotalCommissions = %v, want 0 for unknown professional", got.TotalCommissions)
	}
	if !closeTo(got.NetProfit, 200) {
		t.Errorf("NetProfit = %v, want full price 200", got.NetProfit)
	}
}

func TestAggregate_RevenueEqualsCommissionPlusProfit(t *testing.T) {
	got := Aggregate([]domain.Appointment{
		completed("a1", "3", "s1"),
		completed("a2", "4", "s2"),
		completed("a3", "3", "s3"),
		completed("a4", "gone", "s2"),
	}, testServices, testUsers)

	if !closeTo(got.TotalRevenue, got.TotalCommissions+got.NetProfit) {
		t.Fatalf("revenue %v != commissions %v + profit %v",
			got.TotalRevenue, got.TotalCommissions, got.NetProfit)
	}
}

// ---------------------------------------------------------------------------
// EarningsByProfessional
// ---------------------------------------------------------------------------

func TestEarningsByProfessional_ZeroRows(t *testing.T) {
	rows := EarningsByProfessional(nil, testServices, testUsers)

	if len(rows) != 2 {
		t.Fatalf("expected a row per professional, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Revenue != 0 || row.Commission != 0 {
			t.Errorf("professional %s: expected zero row, got %+v", row.ProfessionalID, row)
		}
	}
	if rows[0].ProfessionalID != "3" || rows[1].ProfessionalID != "4" {
		t.Fatalf("rows must follow user input order, got %s then %s",
			rows[0].ProfessionalID, rows[1].ProfessionalID)
	}
}

func TestEarningsByProfessional_GroupsByProfessional(t *testing.T) {
	rows := EarningsByProfessional([]domain.Appointment{
		completed("a1", "3", "s1"), // 120 for Bruna
		completed("a2", "3", "s3"), // 200 for Bruna
		completed("a3", "4", "s2"), // 45 for Diego
	}, testServices, testUsers)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	bruna, diego := rows[0], rows[1]
	if !closeTo(bruna.Revenue, 320) || !closeTo(bruna.Commission, 160) {
		t.Errorf("Bruna: got revenue %v commission %v, want 320 / 160", bruna.Revenue, bruna.Commission)
	}
	if !closeTo(diego.Revenue, 45) || !closeTo(diego.Commission, 18) {
		t.Errorf("Diego: got revenue %v commission %v, want 45 / 18", diego.Revenue, diego.Commission)
	}
}

func TestEarningsByProfessional_ExcludesNonProfessionals(t *testing.T) {
	rows := EarningsByProfessional([]domain.Appointment{
		completed("a1", "1", "s1"), // appointment pointing at the admin
	}, testServices, testUsers)

	for _, row := range rows {
		if row.ProfessionalID == "1" {
			t.Fatalf("non-professional users must not get a row: %+v", row)
		}
	}
}
