package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/belezagestao/salon-system/internal/core/domain"
	"github.com/belezagestao/salon-system/internal/core/ports"
)

// StaffHandler handles HTTP requests for staff management.
type StaffHandler struct {
	service ports.StaffService
}

func NewStaffHandler(service ports.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

// userResponse is the staff view returned by the API. The password hash
// never leaves the process.
type userResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Role           string   `json:"role"`
	CommissionRate float64  `json:"commission_rate,omitempty"`
	ServiceIDs     []string `json:"service_ids,omitempty"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		CommissionRate: u.CommissionRate,
		ServiceIDs:     u.ServiceIDs,
	}
}

type createUserRequest struct {
	Name           string   `json:"name"            validate:"required"`
	Email          string   `json:"email"           validate:"required,email"`
	Password       string   `json:"password"        validate:"required"`
	Role           string   `json:"role"            validate:"required,oneof=ADMIN RECEPTIONIST PROFESSIONAL"`
	CommissionRate float64  `json:"commission_rate" validate:"gte=0,lte=1"`
	ServiceIDs     []string `json:"service_ids"`
}

type updateUserRequest struct {
	Name           string   `json:"name"            validate:"required"`
	Email          string   `json:"email"           validate:"required,email"`
	Password       string   `json:"password"`
	Role           string   `json:"role"            validate:"required,oneof=ADMIN RECEPTIONIST PROFESSIONAL"`
	CommissionRate float64  `json:"commission_rate" validate:"gte=0,lte=1"`
	ServiceIDs     []string `json:"service_ids"`
}

// List handles GET /v1/users.
//
// @Summary      List staff members
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  userResponse
// @Router       /v1/users [get]
func (h *StaffHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /v1/users.
//
// @Summary      Create a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Staff member details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/users [post]
func (h *StaffHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		CommissionRate: req.CommissionRate,
		ServiceIDs:     req.ServiceIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(*user))
}

// Update handles PUT /v1/users/:id.
//
// @Summary      Update a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Staff member details"
// @Success      200   {object}  userResponse
// @Failure      404   {object}  map[string]string
// @Router       /v1/users/{id} [put]
func (h *StaffHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateUser(c.Request().Context(), ports.UpdateUserInput{
		ID:             c.Param("id"),
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		CommissionRate: req.CommissionRate,
		ServiceIDs:     req.ServiceIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(*user))
}

// Delete handles DELETE /v1/users/:id.
//
// @Summary      Delete a staff member
// @Tags         staff
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id} [delete]
func (h *StaffHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
