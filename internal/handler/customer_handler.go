package handler

import (
	"net/http"
	"strconv"
	"time"

	"erp-service/internal/authz"
	"erp-service/internal/model"
	"erp-service/internal/store"
	"erp-service/pkg/logger"
	"erp-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CustomerHandler serves tenant-scoped customer CRUD.
type CustomerHandler struct {
	customers store.CustomerStore
}

// NewCustomerHandler creates the customer handler with its dependencies
func NewCustomerHandler(customers store.CustomerStore) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// CustomerRequest is the payload for creating or updating a customer.
type CustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// ListCustomers returns the caller tenant's customers, newest first.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("customer", "list")

	_, tenantID, err := tenantScope(c, authz.ResourceCustomer, authz.ActionList)
	if err != nil {
		return respondError(c, log, err)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	customers, err := h.customers.List(c.Request().Context(), tenantID)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, customers)
}

// CreateCustomer creates a customer under the caller's tenant.
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("customer", "create")

	_, tenantID, err := tenantScope(c, authz.ResourceCustomer, authz.ActionCreate)
	if err != nil {
		return respondError(c, log, err)
	}

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse customer request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, log, err)
	}

	customer := model.Customer{
		TenantID: tenantID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.customers.Create(c.Request().Context(), &customer); err != nil {
		return respondError(c, log, err)
	}

	log.Info("Customer created",
		zap.Uint("customer_id", customer.ID),
		zap.Uint("tenant_id", tenantID))

	return c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer updates a customer owned by the caller's tenant.
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("customer", "update")

	_, tenantID, err := tenantScope(c, authz.ResourceCustomer, authz.ActionUpdate)
	if err != nil {
		return respondError(c, log, err)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid customer ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer ID"})
	}

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse customer request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, log, err)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	updated, err := h.customers.Update(c.Request().Context(), tenantID, uint(id), &model.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteCustomer removes a customer owned by the caller's tenant.
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("customer", "delete")

	_, tenantID, err := tenantScope(c, authz.ResourceCustomer, authz.ActionDelete)
	if err != nil {
		return respondError(c, log, err)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid customer ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer ID"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.customers.Delete(c.Request().Context(), tenantID, uint(id)); err != nil {
		return respondError(c, log, err)
	}

	log.Info("Customer deleted",
		zap.Uint64("customer_id", id),
		zap.Uint("tenant_id", tenantID))

	return c.JSON(http.StatusOK, echo.Map{"message": "customer deleted"})
}
