package store

import (
	"context"
	"errors"

	"erp-service/internal/model"
	"erp-service/pkg/apperr"

	"gorm.io/gorm"
)

// ProductStore is the tenant-scoped access layer for products.
type ProductStore interface {
	List(ctx context.Context, tenantID uint) ([]model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, tenantID, id uint, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, tenantID, id uint) error
}

type productStore struct {
	*baseStore
}

func (s *productStore) List(ctx context.Context, tenantID uint) ([]model.Product, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var products []model.Product
	res := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&products)
	if res.Error != nil {
		return nil, storeErr("listing products", res.Error)
	}
	return products, nil
}

func (s *productStore) Create(ctx context.Context, product *model.Product) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return storeErr("creating product", err)
	}
	return nil
}

func (s *productStore) Update(ctx context.Context, tenantID, id uint, product *model.Product) (*model.Product, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"stock":       product.Stock,
		})
	if res.Error != nil {
		return nil, storeErr("updating product", res.Error)
	}
	if isEmptyResult(res) {
		return nil, apperr.NotFound("product not found")
	}

	var updated model.Product
	if err := s.db.WithContext(ctx).Where("id = ? AND tenant_id = ?", id, tenantID).First(&updated).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, storeErr("reloading product", err)
	}
	return &updated, nil
}

func (s *productStore) Delete(ctx context.Context, tenantID, id uint) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.Product{})
	if res.Error != nil {
		return storeErr("deleting product", res.Error)
	}
	if isEmptyResult(res) {
		return apperr.NotFound("product not found")
	}
	return nil
}
