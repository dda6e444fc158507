package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DirtyChecker reports whether the store has unsaved changes.
type DirtyChecker interface {
	Dirty() bool
}

// HealthHandler handles GET /health. Besides liveness it surfaces the
// store's durability state: "degraded" means a write-through failed and
// recent changes may not be saved.
type HealthHandler struct {
	store DirtyChecker
}

func NewHealthHandler(store DirtyChecker) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	status := "ok"
	if h.store != nil && h.store.Dirty() {
		status = "degraded"
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": status,
	})
}
