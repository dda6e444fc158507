package report

import (
	"testing"
	"time"

	"github.com/belezagestao/salon-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func apptOn(id, date string) domain.Appointment {
	return domain.Appointment{
		ID:             id,
		ProfessionalID: "3",
		ServiceID:      "s1",
		ClientName:     "Maria Silva",
		Date:           date,
		Time:           "14:00",
		Status:         domain.StatusCompleted,
	}
}

func ids(appointments []domain.Appointment) []string {
	out := make([]string, len(appointments))
	for i, a := range appointments {
		out[i] = a.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var reference = time.Date(2023, time.November, 20, 10, 30, 0, 0, time.UTC)

// ---------------------------------------------------------------------------
// FilterByPeriod
// ---------------------------------------------------------------------------

func TestFilterByPeriod_AllIsIdentity(t *testing.T) {
	input := []domain.Appointment{
		apptOn("a1", "2023-11-20"),
		apptOn("a2", "2021-01-01"),
		apptOn("a3", "not-a-date"),
	}

	got := FilterByPeriod(input, domain.PeriodAll, reference)
	if !equalIDs(ids(got), ids(input)) {
		t.Fatalf("ALL must return the input unchanged, got %v", ids(got))
	}
}

func TestFilterByPeriod_Day(t *testing.T) {
	input := []domain.Appointment{
		apptOn("same-day", "2023-11-20"),
		apptOn("same-month", "2023-11-21"),
		apptOn("same-year", "2023-03-20"),
	}

	got := FilterByPeriod(input, domain.PeriodDay, reference)
	if !equalIDs(ids(got), []string{"same-day"}) {
		t.Fatalf("expected only same-day, got %v", ids(got))
	}
}

func TestFilterByPeriod_Month(t *testing.T) {
	input := []domain.Appointment{
		apptOn("a1", "2023-11-20"),
		apptOn("a2", "2023-10-15"),
	}

	got := FilterByPeriod(input, domain.PeriodMonth, reference)
	if !equalIDs(ids(got), []string{"a1"}) {
		t.Fatalf("expected only the 2023-11-20 appointment, got %v", ids(got))
	}
}

func TestFilterByPeriod_Month_DifferentYearSameMonth(t *testing.T) {
	input := []domain.Appointment{
		apptOn("last-year", "2022-11-20"),
	}

	got := FilterByPeriod(input, domain.PeriodMonth, reference)
	if len(got) != 0 {
		t.Fatalf("same month of another year must not match, got %v", ids(got))
	}
}

func TestFilterByPeriod_Year(t *testing.T) {
	input := []domain.Appointment{
		apptOn("a1", "2023-01-02"),
		apptOn("a2", "2023-12-31"),
		apptOn("a3", "2022-12-31"),
	}

	got := FilterByPeriod(input, domain.PeriodYear, reference)
	if !equalIDs(ids(got), []string{"a1", "a2"}) {
		t.Fatalf("expected a1 and a2, got %v", ids(got))
	}
}

func TestFilterByPeriod_PreservesOrdering(t *testing.T) {
	input := []domain.Appointment{
		apptOn("z", "2023-11-20"),
		apptOn("a", "2023-11-05"),
		apptOn("m", "2023-11-28"),
	}

	got := FilterByPeriod(input, domain.PeriodMonth, reference)
	if !equalIDs(ids(got), []string{"z", "a", "m"}) {
		t.Fatalf("ordering must be preserved, got %v", ids(got))
	}
}

func TestFilterByPeriod_Idempotent(t *testing.T) {
	input := []domain.Appointment{
		apptOn("a1", "2023-11-20"),
		apptOn("a2", "2023-10-15"),
		apptOn("a3", "2022-06-01"),
	}

	for _, period := range []domain.Period{domain.PeriodDay, domain.PeriodMonth, domain.PeriodYear} {
		once := FilterByPeriod(input, period, reference)
		twice := FilterByPeriod(once, period, reference)
		if !equalIDs(ids(once), ids(twice)) {
			t.Fatalf("period %s not idempotent: %v vs %v", period, ids(once), ids(twice))
		}
	}
}

func TestFilterByPeriod_UnparseableDateExcluded(t *testing.T) {
	input := []domain.Appointment{
		apptOn("good", "2023-11-20"),
		apptOn("bad", "20/11/2023"),
	}

	got := FilterByPeriod(input, domain.PeriodYear, reference)
	if !equalIDs(ids(got), []string{"good"}) {
		t.Fatalf("unparseable dates must be excluded, got %v", ids(got))
	}
}
