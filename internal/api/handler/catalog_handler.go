package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/belezagestao/salon-system/internal/core/ports"
)

// CatalogHandler handles HTTP requests for the service price list.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type serviceRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

// List handles GET /v1/services.
//
// @Summary      List services
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Service
// @Router       /v1/services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.service.ListServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Create handles POST /v1/services.
//
// @Summary      Create a service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  map[string]string
// @Router       /v1/services [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.service.CreateService(c.Request().Context(), ports.ServiceInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// Update handles PUT /v1/services/:id.
//
// @Summary      Update a service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Service id"
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      200   {object}  domain.Service
// @Failure      404   {object}  map[string]string
// @Router       /v1/services/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.service.UpdateService(c.Request().Context(), c.Param("id"), ports.ServiceInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Delete handles DELETE /v1/services/:id.
//
// @Summary      Delete a service
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  string  true  "Service id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/services/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
