package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/belezagestao/salon-system/internal/api/metrics"
	"github.com/belezagestao/salon-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for the appointment agenda.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type createAppointmentRequest struct {
	// ProfessionalID may be omitted by a professional booking for
	// themselves; it is required for receptionists and admins.
	ProfessionalID string `json:"professional_id"`
	ServiceID      string `json:"service_id"  validate:"required"`
	ClientName     string `json:"client_name" validate:"required"`
	Date           string `json:"date"        validate:"required"`
	Time           string `json:"time"        validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=SCHEDULED COMPLETED CANCELLED"`
}

// List handles GET /v1/appointments.
//
// @Summary      List appointments visible to the caller
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Appointment
// @Router       /v1/appointments [get]
func (h *BookingHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	appointments, err := h.service.ListAppointments(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Create handles POST /v1/appointments.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/appointments [post]
func (h *BookingHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.service.CreateAppointment(c.Request().Context(), actor, ports.CreateAppointmentInput{
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		ClientName:     req.ClientName,
		Date:           req.Date,
		Time:           req.Time,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, appointment)
}

// UpdateStatus handles PATCH /v1/appointments/:id/status.
//
// @Summary      Transition an appointment's status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Appointment id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  domain.Appointment
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/appointments/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.service.UpdateStatus(c.Request().Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.AppointmentTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, appointment)
}
