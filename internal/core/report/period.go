// Package report holds the pure query and aggregation logic the
// role-specific dashboards are built from: calendar-period filtering and
// the revenue/commission/profit reduction.
package report

import (
	"time"

	"github.com/belezagestao/salon-system/internal/core/domain"
)

// FilterByPeriod keeps the appointments whose date falls in the calendar
// window anchored at now. Comparisons are calendar-component equality
// (same day / same month / same year), never elapsed-duration windows.
// Input ordering is preserved. PeriodAll returns the input unchanged;
// for the other periods, appointments with an unparseable date are
// excluded.
func FilterByPeriod(appointments []domain.Appointment, period domain.Period, now time.Time) []domain.Appointment {
	if period == domain.PeriodAll {
		return appointments
	}

	nowY, nowM, nowD := now.Date()

	var kept []domain.Appointment
	for _, a := range appointments {
		day, err := a.Day()
		if err != nil {
			continue
		}
		y, m, d := day.Date()

		switch period {
		case domain.PeriodDay:
			if y == nowY && m == nowM && d == nowD {
				kept = append(kept, a)
			}
		case domain.PeriodMonth:
			if y == nowY && m == nowM {
				kept = append(kept, a)
			}
		case domain.PeriodYear:
			if y == nowY {
				kept = append(kept, a)
			}
		}
	}
	return kept
}
