package service

import (
	"context"
	"time"

	"github.com/belezagestao/salon-system/internal/core/domain"
	"github.com/belezagestao/salon-system/internal/core/ports"
	"github.com/belezagestao/salon-system/internal/core/report"
)

// ReportService computes the role-scoped financial views. Admins see the
// whole salon; a professional sees only their own appointments. The
// filtering and aggregation path is shared, only the input subset differs.
type ReportService struct {
	store ports.ReportStore
	now   func() time.Time
}

func NewReportService(store ports.ReportStore, now func() time.Time) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{store: store, now: now}
}

func (s *ReportService) Summary(ctx context.Context, actor ports.Actor, period string) (*domain.FinancialSummary, error) {
	p, err := domain.ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	appointments := s.scoped(actor)
	filtered := report.FilterByPeriod(appointments, p, s.now())
	summary := report.Aggregate(filtered, s.store.Services(), s.store.Users())
	return &summary, nil
}

func (s *ReportService) Earnings(ctx context.Context, actor ports.Actor, period string) ([]domain.ProfessionalEarnings, error) {
	p, err := domain.ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	filtered := report.FilterByPeriod(s.scoped(actor), p, s.now())
	return report.EarningsByProfessional(filtered, s.store.Services(), s.store.Users()), nil
}

// scoped returns the appointment subset the actor may report over.
func (s *ReportService) scoped(actor ports.Actor) []domain.Appointment {
	all := s.store.Appointments()
	if actor.Role != domain.RoleProfessional {
		return all
	}

	var own []domain.Appointment
	for _, a := range all {
		if a.ProfessionalID == actor.UserID {
			own = append(own, a)
		}
	}
	return own
}
