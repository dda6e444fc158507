package report

import (
	"github.com/belezagestao/salon-system/internal/core/domain"
)

// Aggregate reduces the given appointments into revenue, commission, and
// profit totals. Only COMPLETED appointments whose service resolves are
// included; everything else is skipped entirely and does not count. The
// commission rate defaults to 0 when the professional is unknown, so for
// every included appointment commission+profit equals the service price.
func Aggregate(appointments []domain.Appointment, services []domain.Service, users []domain.User) domain.FinancialSummary {
	serviceByID := indexServices(services)
	userByID := indexUsers(users)

	var sum domain.FinancialSummary
	for _, a := range appointments {
		if a.Status != domain.StatusCompleted {
			continue
		}
		svc, ok := serviceByID[a.ServiceID]
		if !ok {
			continue
		}

		var rate float64
		if prof, ok := userByID[a.ProfessionalID]; ok {
			rate = prof.CommissionRate
		}

		commission := svc.Price * rate
		sum.TotalRevenue += svc.Price
		sum.TotalCommissions += commission
		sum.NetProfit += svc.Price - commission
		sum.Count++
	}
	return sum
}

// EarningsByProfessional groups COMPLETED appointments by professional and
// applies the same per-item formulas within each group. Every user with
// role PROFESSIONAL gets a row, in input order, with zero values when they
// have no matching appointments.
func EarningsByProfessional(appointments []domain.Appointment, services []domain.Service, users []domain.User) []domain.ProfessionalEarnings {
	serviceByID := indexServices(services)

	var rows []domain.ProfessionalEarnings
	for _, u := range users {
		if u.Role != domain.RoleProfessional {
			continue
		}

		var revenue float64
		for _, a := range appointments {
			if a.ProfessionalID != u.ID || a.Status != domain.StatusCompleted {
				continue
			}
			if svc, ok := serviceByID[a.ServiceID]; ok {
				revenue += svc.Price
			}
		}

		rows = append(rows, domain.ProfessionalEarnings{
			ProfessionalID:   u.ID,
			ProfessionalName: u.Name,
			Revenue:          revenue,
			Commission:       revenue * u.CommissionRate,
		})
	}
	return rows
}

func indexServices(services []domain.Service) map[string]domain.Service {
	m := make(map[string]domain.Service, len(services))
	for _, s := range services {
		m[s.ID] = s
	}
	return m
}

func indexUsers(users []domain.User) map[string]domain.User {
	m := make(map[string]domain.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return m
}
