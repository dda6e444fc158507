package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/belezagestao/salon-system/internal/core/ports"
)

// ReportHandler handles HTTP requests for financial reporting.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Summary handles GET /v1/reports/summary?period=day|month|year|all.
//
// @Summary      Financial summary for a calendar period
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        period  query     string  false  "day, month, year, or all (default all)"
// @Success      200     {object}  domain.FinancialSummary
// @Failure      400     {object}  map[string]string
// @Router       /v1/reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summary(c.Request().Context(), actor, c.QueryParam("period"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Earnings handles GET /v1/reports/professionals?period=....
//
// @Summary      Per-professional revenue and commission breakdown
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        period  query    string  false  "day, month, year, or all (default all)"
// @Success      200     {array}  domain.ProfessionalEarnings
// @Failure      400     {object} map[string]string
// @Router       /v1/reports/professionals [get]
func (h *ReportHandler) Earnings(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	rows, err := h.service.Earnings(c.Request().Context(), actor, c.QueryParam("period"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
