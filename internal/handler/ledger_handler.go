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

// LedgerHandler serves tenant-scoped ledger entry CRUD. Entries written by
// the order cascade flow through the same store and show up in the same list.
type LedgerHandler struct {
	ledger store.LedgerStore
}

// NewLedgerHandler creates the ledger handler with its dependencies
func NewLedgerHandler(ledger store.LedgerStore) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// LedgerRequest is the payload for creating or updating a ledger entry.
type LedgerRequest struct {
	Description string  `json:"description" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=debit credit"`
	Amount      float64 `json:"amount" validate:"gt=0"`
}

// ListLedgerEntries returns the caller tenant's ledger entries, newest first.
func (h *LedgerHandler) ListLedgerEntries(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("ledger_entry", "list")

	_, tenantID, err := tenantScope(c, authz.ResourceLedger, authz.ActionList)
	if err != nil {
		return respondError(c, log, err)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	entries, err := h.ledger.List(c.Request().Context(), tenantID)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, entries)
}

// CreateLedgerEntry creates a ledger entry under the caller's tenant.
func (h *LedgerHandler) CreateLedgerEntry(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("ledger_entry", "create")

	_, tenantID, err := tenantScope(c, authz.ResourceLedger, authz.ActionCreate)
	if err != nil {
		return respondError(c, log, err)
	}

	var req LedgerRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse ledger request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, log, err)
	}

	entry := model.LedgerEntry{
		TenantID:    tenantID,
		Description: req.Description,
		Type:        req.Type,
		Amount:      req.Amount,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.ledger.Create(c.Request().Context(), &entry); err != nil {
		return respondError(c, log, err)
	}

	log.Info("Ledger entry created",
		zap.Uint("entry_id", entry.ID),
		zap.Uint("tenant_id", tenantID),
		zap.String("type", entry.Type))

	return c.JSON(http.StatusCreated, entry)
}

// UpdateLedgerEntry updates a ledger entry owned by the caller's tenant.
func (h *LedgerHandler) UpdateLedgerEntry(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("ledger_entry", "update")

	_, tenantID, err := tenantScope(c, authz.ResourceLedger, authz.ActionUpdate)
	if err != nil {
		return respondError(c, log, err)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid ledger entry ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ledger entry ID"})
	}

	var req LedgerRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse ledger request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, log, err)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	updated, err := h.ledger.Update(c.Request().Context(), tenantID, uint(id), &model.LedgerEntry{
		Description: req.Description,
		Type:        req.Type,
		Amount:      req.Amount,
	})
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteLedgerEntry removes a ledger entry owned by the caller's tenant.
func (h *LedgerHandler) DeleteLedgerEntry(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("ledger_entry", "delete")

	_, tenantID, err := tenantScope(c, authz.ResourceLedger, authz.ActionDelete)
	if err != nil {
		return respondError(c, log, err)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid ledger entry ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ledger entry ID"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.ledger.Delete(c.Request().Context(), tenantID, uint(id)); err != nil {
		return respondError(c, log, err)
	}

	log.Info("Ledger entry deleted",
		zap.Uint64("entry_id", id),
		zap.Uint("tenant_id", tenantID))

	return c.JSON(http.StatusOK, echo.Map{"message": "ledger entry deleted"})
}
