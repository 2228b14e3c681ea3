package handler

import (
	"net/http"
	"strconv"
	"time"

	"erp-service/internal/authz"
	"erp-service/internal/model"
	"erp-service/internal/store"
	"erp-service/pkg/apperr"
	"erp-service/pkg/logger"
	"erp-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderHandler serves tenant-scoped sales order CRUD. Creation runs the
// stock-and-ledger cascade in the store layer.
type OrderHandler struct {
	orders store.OrderStore
}

// NewOrderHandler creates the sales order handler with its dependencies
func NewOrderHandler(orders store.OrderStore) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// OrderRequest is the payload for creating a sales order. ProductID and
// Quantity are optional; when ProductID is set the quantity must be positive.
type OrderRequest struct {
	CustomerName string  `json:"customer_name" validate:"required"`
	Amount       float64 `json:"amount" validate:"gt=0"`
	ProductID    *uint   `json:"product_id"`
	Quantity     int     `json:"quantity" validate:"gte=0"`
}

// OrderUpdateRequest is the payload for updating an existing sales order.
type OrderUpdateRequest struct {
	CustomerName string  `json:"customer_name" validate:"required"`
	Amount       float64 `json:"amount" validate:"gt=0"`
	Status       string  `json:"status" validate:"required"`
}

// ListOrders returns the caller tenant's sales orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("sales_order", "list")

	_, tenantID, err := tenantScope(c, authz.ResourceSalesOrder, authz.ActionList)
	if err != nil {
		return respondError(c, log, err)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	orders, err := h.orders.List(c.Request().Context(), tenantID)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// CreateOrder creates a sales order under the caller's tenant. When the order
// references a product, the product's stock is decremented and a credit
// ledger entry is written atomically with the order.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("sales_order", "create")

	_, tenantID, err := tenantScope(c, authz.ResourceSalesOrder, authz.ActionCreate)
	if err != nil {
		return respondError(c, log, err)
	}

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse order request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, log, err)
	}
	if req.ProductID != nil && req.Quantity <= 0 {
		return respondError(c, log, apperr.Validation("quantity must be greater than 0 when product_id is set"))
	}

	order := model.SalesOrder{
		TenantID:     tenantID,
		CustomerName: req.CustomerName,
		Amount:       req.Amount,
		Status:       model.OrderStatusPending,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.orders.Create(c.Request().Context(), &order); err != nil {
		prometheus.RecordOrderCascade("rolled_back")
		return respondError(c, log, err)
	}
	prometheus.RecordOrderCascade("committed")

	log.Info("Sales order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("tenant_id", tenantID),
		zap.Float64("amount", order.Amount))

	return c.JSON(http.StatusCreated, order)
}

// UpdateOrder updates a sales order owned by the caller's tenant. Updates do
// not re-run the stock cascade.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("sales_order", "update")

	_, tenantID, err := tenantScope(c, authz.ResourceSalesOrder, authz.ActionUpdate)
	if err != nil {
		return respondError(c, log, err)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid order ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order ID"})
	}

	var req OrderUpdateRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse order request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, log, err)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	updated, err := h.orders.Update(c.Request().Context(), tenantID, uint(id), &model.SalesOrder{
		CustomerName: req.CustomerName,
		Amount:       req.Amount,
		Status:       req.Status,
	})
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteOrder removes a sales order owned by the caller's tenant. Stock and
// ledger entries written at creation time are left as they are.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("sales_order", "delete")

	_, tenantID, err := tenantScope(c, authz.ResourceSalesOrder, authz.ActionDelete)
	if err != nil {
		return respondError(c, log, err)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid order ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order ID"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.orders.Delete(c.Request().Context(), tenantID, uint(id)); err != nil {
		return respondError(c, log, err)
	}

	log.Info("Sales order deleted",
		zap.Uint64("order_id", id),
		zap.Uint("tenant_id", tenantID))

	return c.JSON(http.StatusOK, echo.Map{"message": "sales order deleted"})
}
