package domain

import "fmt"

// Period is a calendar-aligned reporting window.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// ParsePeriod converts a query string into a Period.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodMonth, PeriodYear, PeriodAll:
		return Period(s), nil
	case "":
		return PeriodAll, nil
	}
	return "", fmt.Errorf("%w: unknown period %q", ErrInvalidInput, s)
}

// FinancialSummary is the reduction of a set of completed appointments.
// For every included appointment commission+profit equals the service
// price, so TotalRevenue == TotalCommissions + NetProfit.
type FinancialSummary struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalCommissions float64 `json:"totalCommissions"`
	NetProfit        float64 `json:"netProfit"`
	Count            int     `json:"count"`
}

// ProfessionalEarnings is one row of the per-professional breakdown.
// Professionals with no completed appointments appear with zero values.
type ProfessionalEarnings struct {
	ProfessionalID   string  `json:"professionalId"`
	ProfessionalName string  `json:"professionalName"`
	Revenue          float64 `json:"revenue"`
	Commission       float64 `json:"commission"`
}
