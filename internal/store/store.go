package store

import (
	"context"
	"errors"
	"time"

	"erp-service/pkg/apperr"

	"gorm.io/gorm"
)

// Store bundles the per-entity stores over a shared database handle. It is
// constructed once at startup and passed to the handlers.
type Store struct {
	Users     UserStore
	Tenants   TenantStore
	Customers CustomerStore
	Products  ProductStore
	Orders    OrderStore
	Ledger    LedgerStore
}

// New creates the store. acquireTimeout bounds how long any single operation
// may wait on the connection pool; exhaustion surfaces as Unavailable rather
// than queueing forever.
func New(db *gorm.DB, acquireTimeout time.Duration) *Store {
	base := &baseStore{db: db, acquireTimeout: acquireTimeout}
	return &Store{
		Users:     &userStore{base},
		Tenants:   &tenantStore{base},
		Customers: &customerStore{base},
		Products:  &productStore{base},
		Orders:    &orderStore{base},
		Ledger:    &ledgerStore{base},
	}
}

type baseStore struct {
	db             *gorm.DB
	acquireTimeout time.Duration
}

// bound derives a context that expires once the acquire timeout elapses.
func (s *baseStore) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.acquireTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.acquireTimeout)
}

// storeErr maps driver failures to the domain error taxonomy. Callers handle
// record-not-found and duplicate-key themselves where the mapping depends on
// the operation.
func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Unavailable("database unavailable")
	}
	return apperr.Internal(op, err)
}

// isEmptyResult is true when a conditional write matched no rows: either the
// row does not exist or it belongs to another tenant. The two causes are
// deliberately indistinguishable.
func isEmptyResult(res *gorm.DB) bool {
	return res.Error == nil && res.RowsAffected == 0
}
