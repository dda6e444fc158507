package ports

import (
	"context"

	"github.com/belezagestao/salon-system/internal/core/domain"
)

// ReportService computes financial summaries over a calendar period. The
// same aggregation serves the whole salon (admin view) and a single
// professional (own view); only the appointment subset differs.
type ReportService interface {
	Summary(ctx context.Context, actor Actor, period string) (*domain.FinancialSummary, error)
	Earnings(ctx context.Context, actor Actor, period string) ([]domain.ProfessionalEarnings, error)
}
