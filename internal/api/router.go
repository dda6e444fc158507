package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/belezagestao/salon-system/internal/api/handler"
	"github.com/belezagestao/salon-system/internal/api/middleware"
	"github.com/belezagestao/salon-system/internal/core/domain"
	"github.com/belezagestao/salon-system/internal/core/service"
	"github.com/belezagestao/salon-system/internal/core/store"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(st *store.Store, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("salon"))

	// --- Dependencies ---
	authService := service.NewAuthService(st, jwtSecret, 24*time.Hour)
	staffService := service.NewStaffService(st, log)
	catalogService := service.NewCatalogService(st, log)
	bookingService := service.NewBookingService(st, log)
	reportService := service.NewReportService(st, time.Now)
	backupService := service.NewBackupService(st, time.Now, log)

	authHandler := handler.NewAuthHandler(authService)
	staffHandler := handler.NewStaffHandler(staffService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	reportHandler := handler.NewReportHandler(reportService)
	backupHandler := handler.NewBackupHandler(backupService)
	healthHandler := handler.NewHealthHandler(st)

	auth := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	allStaff := middleware.RBAC(domain.RoleAdmin, domain.RoleReceptionist, domain.RoleProfessional)
	reportRoles := middleware.RBAC(domain.RoleAdmin, domain.RoleProfessional)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Staff (writes admin-only, reads for everyone) ---
	users := e.Group("/v1/users", auth)
	users.GET("", staffHandler.List, allStaff)
	users.POST("", staffHandler.Create, adminOnly)
	users.PUT("/:id", staffHandler.Update, adminOnly)
	users.DELETE("/:id", staffHandler.Delete, adminOnly)

	// --- Service catalog (writes admin-only, reads for everyone) ---
	services := e.Group("/v1/services", auth)
	services.GET("", catalogHandler.List, allStaff)
	services.POST("", catalogHandler.Create, adminOnly)
	services.PUT("/:id", catalogHandler.Update, adminOnly)
	services.DELETE("/:id", catalogHandler.Delete, adminOnly)

	// --- Appointments ---
	appointments := e.Group("/v1/appointments", auth, allStaff)
	appointments.GET("", bookingHandler.List)
	appointments.POST("", bookingHandler.Create)
	appointments.PATCH("/:id/status", bookingHandler.UpdateStatus)

	// --- Reports (admin sees the salon, professionals their own slice) ---
	reports := e.Group("/v1/reports", auth, reportRoles)
	reports.GET("/summary", reportHandler.Summary)
	reports.GET("/professionals", reportHandler.Earnings)

	// --- Backup (admin-only) ---
	backup := e.Group("/v1/backup", auth, adminOnly)
	backup.GET("", backupHandler.Export)
	backup.POST("", backupHandler.Import)

	return e
}
