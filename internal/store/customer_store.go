package store

import (
	"context"
	"errors"

	"erp-service/internal/model"
	"erp-service/pkg/apperr"

	"gorm.io/gorm"
)

// CustomerStore is the tenant-scoped access layer for customers. Every read
// and write is bound to the caller's tenant ID; a write that matches no row
// reports NotFound whether the row is missing or owned by another tenant.
type CustomerStore interface {
	List(ctx context.Context, tenantID uint) ([]model.Customer, error)
	Create(ctx context.Context, customer *model.Customer) error
	Update(ctx context.Context, tenantID, id uint, customer *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, tenantID, id uint) error
}

type customerStore struct {
	*baseStore
}

func (s *customerStore) List(ctx context.Context, tenantID uint) ([]model.Customer, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var customers []model.Customer
	res := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&customers)
	if res.Error != nil {
		return nil, storeErr("listing customers", res.Error)
	}
	return customers, nil
}

func (s *customerStore) Create(ctx context.Context, customer *model.Customer) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(customer).Error; err != nil {
		return storeErr("creating customer", err)
	}
	return nil
}

func (s *customerStore) Update(ctx context.Context, tenantID, id uint, customer *model.Customer) (*model.Customer, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).Model(&model.Customer{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Updates(map[string]interface{}{
			"name":  customer.Name,
			"email": customer.Email,
			"phone": customer.Phone,
		})
	if res.Error != nil {
		return nil, storeErr("updating customer", res.Error)
	}
	if isEmptyResult(res) {
		return nil, apperr.NotFound("customer not found")
	}

	var updated model.Customer
	if err := s.db.WithContext(ctx).Where("id = ? AND tenant_id = ?", id, tenantID).First(&updated).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("customer not found")
		}
		return nil, storeErr("reloading customer", err)
	}
	return &updated, nil
}

func (s *customerStore) Delete(ctx context.Context, tenantID, id uint) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.Customer{})
	if res.Error != nil {
		return storeErr("deleting customer", res.Error)
	}
	if isEmptyResult(res) {
		return apperr.NotFound("customer not found")
	}
	return nil
}
