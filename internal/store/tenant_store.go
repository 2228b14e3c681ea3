package store

import (
	"context"
	"errors"

	"erp-service/internal/model"
	"erp-service/pkg/apperr"

	"gorm.io/gorm"
)

// TenantStore provides the super-admin view over tenants and subscription
// management. Tenants are never hard-deleted.
type TenantStore interface {
	List(ctx context.Context) ([]model.Tenant, error)
	Get(ctx context.Context, id uint) (*model.Tenant, error)
	// UpdateSubscription applies a plan and/or status change. Status changes
	// follow trial -> active -> suspended; illegal transitions are rejected.
	UpdateSubscription(ctx context.Context, id uint, plan, status string) (*model.Tenant, error)
}

type tenantStore struct {
	*baseStore
}

func (s *tenantStore) List(ctx context.Context) ([]model.Tenant, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var tenants []model.Tenant
	res := s.db.WithContext(ctx).Order("created_at DESC").Find(&tenants)
	if res.Error != nil {
		return nil, storeErr("listing tenants", res.Error)
	}
	return tenants, nil
}

func (s *tenantStore) Get(ctx context.Context, id uint) (*model.Tenant, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var tenant model.Tenant
	res := s.db.WithContext(ctx).First(&tenant, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("tenant not found")
		}
		return nil, storeErr("finding tenant", res.Error)
	}
	return &tenant, nil
}

func (s *tenantStore) UpdateSubscription(ctx context.Context, id uint, plan, status string) (*model.Tenant, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var tenant model.Tenant
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&tenant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("tenant not found")
			}
			return err
		}

		updates := map[string]interface{}{}
		if plan != "" {
			updates["plan"] = plan
		}
		if status != "" {
			if !model.ValidStatusTransition(tenant.Status, status) {
				return apperr.Validation("invalid status transition")
			}
			updates["status"] = status
		}
		if len(updates) == 0 {
			return apperr.Validation("plan or status is required")
		}

		return tx.Model(&tenant).Updates(updates).Error
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, storeErr("updating tenant subscription", err)
	}
	return &tenant, nil
}
