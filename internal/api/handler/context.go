package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/belezagestao/salon-system/internal/core/domain"
	"github.com/belezagestao/salon-system/internal/core/ports"
)

// ctxActor extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both the user id
// and the role must be present, otherwise the token is structurally
// valid but operationally unusable.
func ctxActor(c echo.Context) (ports.Actor, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Actor{UserID: userID, Role: domain.Role(role)}, nil
}
