package handler

import (
	"net/http"

	"erp-service/prometheus"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler serves liveness and metrics endpoints.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates the health handler with its dependencies
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck handles the health check endpoint. It reports degraded when
// the database pool is unreachable.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	status := "healthy"
	code := http.StatusOK

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(c.Request().Context()) != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, echo.Map{
		"status":  status,
		"service": "erp-service",
	})
}

// MetricsHandler exposes prometheus metrics
func (h *HealthHandler) MetricsHandler(c echo.Context) error {
	handler := prometheus.GetPrometheusHandler()
	handler.ServeHTTP(c.Response(), c.Request())
	return nil
}
