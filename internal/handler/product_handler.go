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

// ProductHandler serves tenant-scoped product CRUD.
type ProductHandler struct {
	products store.ProductStore
}

// NewProductHandler creates the product handler with its dependencies
func NewProductHandler(products store.ProductStore) *ProductHandler {
	return &ProductHandler{products: products}
}

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// ListProducts returns the caller tenant's products, newest first.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "list")

	_, tenantID, err := tenantScope(c, authz.ResourceProduct, authz.ActionList)
	if err != nil {
		return respondError(c, log, err)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	products, err := h.products.List(c.Request().Context(), tenantID)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, products)
}

// CreateProduct creates a product under the caller's tenant.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "create")

	_, tenantID, err := tenantScope(c, authz.ResourceProduct, authz.ActionCreate)
	if err != nil {
		return respondError(c, log, err)
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse product request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, log, err)
	}

	product := model.Product{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.products.Create(c.Request().Context(), &product); err != nil {
		return respondError(c, log, err)
	}

	log.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.Uint("tenant_id", tenantID),
		zap.String("name", product.Name))

	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct updates a product owned by the caller's tenant.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "update")

	_, tenantID, err := tenantScope(c, authz.ResourceProduct, authz.ActionUpdate)
	if err != nil {
		return respondError(c, log, err)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid product ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product ID"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse product request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, log, err)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	updated, err := h.products.Update(c.Request().Context(), tenantID, uint(id), &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteProduct removes a product owned by the caller's tenant.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "delete")

	_, tenantID, err := tenantScope(c, authz.ResourceProduct, authz.ActionDelete)
	if err != nil {
		return respondError(c, log, err)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid product ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product ID"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.products.Delete(c.Request().Context(), tenantID, uint(id)); err != nil {
		return respondError(c, log, err)
	}

	log.Info("Product deleted",
		zap.Uint64("product_id", id),
		zap.Uint("tenant_id", tenantID))

	return c.JSON(http.StatusOK, echo.Map{"message": "product deleted"})
}
