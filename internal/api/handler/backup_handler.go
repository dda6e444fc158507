package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/belezagestao/salon-system/internal/api/metrics"
	"github.com/belezagestao/salon-system/internal/core/ports"
)

// BackupHandler handles snapshot export and restore.
type BackupHandler struct {
	service ports.BackupService
}

func NewBackupHandler(service ports.BackupService) *BackupHandler {
	return &BackupHandler{service: service}
}

// Export handles GET /v1/backup.
//
// @Summary      Export a full snapshot of all collections
// @Tags         backup
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Snapshot
// @Router       /v1/backup [get]
func (h *BackupHandler) Export(c echo.Context) error {
	snap, err := h.service.Export(c.Request().Context())
	if err != nil {
		metrics.SnapshotsTotal.WithLabelValues("export", "failure").Inc()
		return err
	}

	metrics.SnapshotsTotal.WithLabelValues("export", "success").Inc()
	return c.JSON(http.StatusOK, snap)
}

// Import handles POST /v1/backup. The request body is the snapshot JSON
// as produced by Export; the import is all-or-nothing.
//
// @Summary      Restore a snapshot, replacing all collections
// @Tags         backup
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /v1/backup [post]
func (h *BackupHandler) Import(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Import(c.Request().Context(), raw); err != nil {
		metrics.SnapshotsTotal.WithLabelValues("import", "failure").Inc()
		return err
	}

	metrics.SnapshotsTotal.WithLabelValues("import", "success").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "snapshot imported"})
}
