package store

import (
	"context"
	"errors"

	"erp-service/internal/model"
	"erp-service/pkg/apperr"

	"gorm.io/gorm"
)

// LedgerStore is the tenant-scoped access layer for ledger entries.
type LedgerStore interface {
	List(ctx context.Context, tenantID uint) ([]model.LedgerEntry, error)
	Create(ctx context.Context, entry *model.LedgerEntry) error
	Update(ctx context.Context, tenantID, id uint, entry *model.LedgerEntry) (*model.LedgerEntry, error)
	Delete(ctx context.Context, tenantID, id uint) error
}

type ledgerStore struct {
	*baseStore
}

func (s *ledgerStore) List(ctx context.Context, tenantID uint) ([]model.LedgerEntry, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var entries []model.LedgerEntry
	res := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&entries)
	if res.Error != nil {
		return nil, storeErr("listing ledger entries", res.Error)
	}
	return entries, nil
}

func (s *ledgerStore) Create(ctx context.Context, entry *model.LedgerEntry) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return storeErr("creating ledger entry", err)
	}
	return nil
}

func (s *ledgerStore) Update(ctx context.Context, tenantID, id uint, entry *model.LedgerEntry) (*model.LedgerEntry, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).Model(&model.LedgerEntry{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Updates(map[string]interface{}{
			"description": entry.Description,
			"type":        entry.Type,
			"amount":      entry.Amount,
		})
	if res.Error != nil {
		return nil, storeErr("updating ledger entry", res.Error)
	}
	if isEmptyResult(res) {
		return nil, apperr.NotFound("ledger entry not found")
	}

	var updated model.LedgerEntry
	if err := s.db.WithContext(ctx).Where("id = ? AND tenant_id = ?", id, tenantID).First(&updated).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("ledger entry not found")
		}
		return nil, storeErr("reloading ledger entry", err)
	}
	return &updated, nil
}

func (s *ledgerStore) Delete(ctx context.Context, tenantID, id uint) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.LedgerEntry{})
	if res.Error != nil {
		return storeErr("deleting ledger entry", res.Error)
	}
	if isEmptyResult(res) {
		return apperr.NotFound("ledger entry not found")
	}
	return nil
}
