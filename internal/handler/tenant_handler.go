package handler

import (
	"net/http"
	"strconv"
	"time"

	"erp-service/internal/authz"
	"erp-service/internal/middleware"
	"erp-service/internal/store"
	"erp-service/pkg/logger"
	"erp-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TenantHandler serves the super-admin tenant view and self-reads.
type TenantHandler struct {
	tenants store.TenantStore
}

// NewTenantHandler creates the tenant handler with its dependencies
func NewTenantHandler(tenants store.TenantStore) *TenantHandler {
	return &TenantHandler{tenants: tenants}
}

// SubscriptionRequest carries a plan and/or status change.
type SubscriptionRequest struct {
	Plan   string `json:"plan"`
	Status string `json:"status" validate:"omitempty,oneof=trial active suspended"`
}

// ListTenants returns all tenants regardless of scope. Super-admin only.
func (h *TenantHandler) ListTenants(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordTenantOperation("list")

	session := middleware.SessionFromContext(c)
	if !authz.CanAccess(session, authz.ResourceTenant, authz.ActionList) {
		log.Warn("Tenant list denied")
		prometheus.RecordAuthError("access_denied")
		return c.JSON(http.StatusForbidden, echo.Map{"error": "access denied"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	tenants, err := h.tenants.List(c.Request().Context())
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, tenants)
}

// GetTenant returns a single tenant: its own admin or the super-admin.
func (h *TenantHandler) GetTenant(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordTenantOperation("read")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid tenant ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tenant ID"})
	}

	session := middleware.SessionFromContext(c)
	if !authz.CanReadTenant(session, uint(id)) {
		log.Warn("Cross-tenant read denied", zap.Uint64("tenant_id", id))
		prometheus.RecordAuthError("access_denied")
		return c.JSON(http.StatusForbidden, echo.Map{"error": "access denied"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	tenant, err := h.tenants.Get(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, tenant)
}

// UpdateSubscription changes a tenant's plan or moves its status along
// trial -> active -> suspended. Super-admin only.
func (h *TenantHandler) UpdateSubscription(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordTenantOperation("update_subscription")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid tenant ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tenant ID"})
	}

	session := middleware.SessionFromContext(c)
	if !authz.CanAccess(session, authz.ResourceTenant, authz.ActionUpdate) {
		log.Warn("Tenant subscription update denied", zap.Uint64("tenant_id", id))
		prometheus.RecordAuthError("access_denied")
		return c.JSON(http.StatusForbidden, echo.Map{"error": "access denied"})
	}

	var req SubscriptionRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse subscription request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, log, err)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	tenant, err := h.tenants.UpdateSubscription(c.Request().Context(), uint(id), req.Plan, req.Status)
	if err != nil {
		return respondError(c, log, err)
	}

	log.Info("Tenant subscription updated",
		zap.Uint("tenant_id", tenant.ID),
		zap.String("plan", tenant.Plan),
		zap.String("status", tenant.Status))

	return c.JSON(http.StatusOK, tenant)
}
