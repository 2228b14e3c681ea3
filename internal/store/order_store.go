package store

import (
	"context"
	"errors"
	"fmt"

	"erp-service/internal/model"
	"erp-service/pkg/apperr"

	"gorm.io/gorm"
)

// OrderStore is the tenant-scoped access layer for sales orders. Order
// creation cascades into a stock decrement and a ledger entry inside one
// transaction: all three writes commit or none do.
type OrderStore interface {
	List(ctx context.Context, tenantID uint) ([]model.SalesOrder, error)
	Create(ctx context.Context, order *model.SalesOrder) error
	Update(ctx context.Context, tenantID, id uint, order *model.SalesOrder) (*model.SalesOrder, error)
	Delete(ctx context.Context, tenantID, id uint) error
}

type orderStore struct {
	*baseStore
}

func (s *orderStore) List(ctx context.Context, tenantID uint) ([]model.SalesOrder, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var orders []model.SalesOrder
	res := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&orders)
	if res.Error != nil {
		return nil, storeErr("listing sales orders", res.Error)
	}
	return orders, nil
}

func (s *orderStore) Create(ctx context.Context, order *model.SalesOrder) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		if order.ProductID != nil {
			// Conditional decrement: matches only when the product belongs to
			// the tenant and has enough stock.
			res := tx.Model(&model.Product{}).
				Where("id = ? AND tenant_id = ? AND stock >= ?", *order.ProductID, order.TenantID, order.Quantity).
				Update("stock", gorm.Expr("stock - ?", order.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.Validation("unknown product or insufficient stock")
			}
		}

		entry := model.LedgerEntry{
			TenantID:    order.TenantID,
			Description: fmt.Sprintf("Sale: %s", order.CustomerName),
			Type:        model.LedgerTypeCredit,
			Amount:      order.Amount,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return err
		}
		return storeErr("creating sales order", err)
	}
	return nil
}

func (s *orderStore) Update(ctx context.Context, tenantID, id uint, order *model.SalesOrder) (*model.SalesOrder, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).Model(&model.SalesOrder{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Updates(map[string]interface{}{
			"customer_name": order.CustomerName,
			"amount":        order.Amount,
			"status":        order.Status,
		})
	if res.Error != nil {
		return nil, storeErr("updating sales order", res.Error)
	}
	if isEmptyResult(res) {
		return nil, apperr.NotFound("sales order not found")
	}

	var updated model.SalesOrder
	if err := s.db.WithContext(ctx).Where("id = ? AND tenant_id = ?", id, tenantID).First(&updated).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("sales order not found")
		}
		return nil, storeErr("reloading sales order", err)
	}
	return &updated, nil
}

func (s *orderStore) Delete(ctx context.Context, tenantID, id uint) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.SalesOrder{})
	if res.Error != nil {
		return storeErr("deleting sales order", res.Error)
	}
	if isEmptyResult(res) {
		return apperr.NotFound("sales order not found")
	}
	return nil
}
