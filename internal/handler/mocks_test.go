package handler

import (
	"context"

	"erp-service/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockUserStore mocks store.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) RegisterTenant(ctx context.Context, companyName, email, passwordHash string) (*model.Tenant, *model.User, error) {
	args := m.Called(ctx, companyName, email, passwordHash)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Tenant), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockUserStore) SeedSuperAdmin(ctx context.Context, email, passwordHash string) error {
	args := m.Called(ctx, email, passwordHash)
	return args.Error(0)
}

// MockTenantStore mocks store.TenantStore
type MockTenantStore struct {
	mock.Mock
}

func (m *MockTenantStore) List(ctx context.Context) ([]model.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tenant), args.Error(1)
}

func (m *MockTenantStore) Get(ctx context.Context, id uint) (*model.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tenant), args.Error(1)
}

func (m *MockTenantStore) UpdateSubscription(ctx context.Context, id uint, plan, status string) (*model.Tenant, error) {
	args := m.Called(ctx, id, plan, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tenant), args.Error(1)
}

// MockCustomerStore mocks store.CustomerStore
type MockCustomerStore struct {
	mock.Mock
}

func (m *MockCustomerStore) List(ctx context.Context, tenantID uint) ([]model.Customer, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *MockCustomerStore) Create(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerStore) Update(ctx context.Context, tenantID, id uint, customer *model.Customer) (*model.Customer, error) {
	args := m.Called(ctx, tenantID, id, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerStore) Delete(ctx context.Context, tenantID, id uint) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// MockProductStore mocks store.ProductStore
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) List(ctx context.Context, tenantID uint) ([]model.Product, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductStore) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductStore) Update(ctx context.Context, tenantID, id uint, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, tenantID, id, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductStore) Delete(ctx context.Context, tenantID, id uint) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// MockOrderStore mocks store.OrderStore
type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) List(ctx context.Context, tenantID uint) ([]model.SalesOrder, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SalesOrder), args.Error(1)
}

func (m *MockOrderStore) Create(ctx context.Context, order *model.SalesOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderStore) Update(ctx context.Context, tenantID, id uint, order *model.SalesOrder) (*model.SalesOrder, error) {
	args := m.Called(ctx, tenantID, id, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SalesOrder), args.Error(1)
}

func (m *MockOrderStore) Delete(ctx context.Context, tenantID, id uint) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// MockLedgerStore mocks store.LedgerStore
type MockLedgerStore struct {
	mock.Mock
}

func (m *MockLedgerStore) List(ctx context.Context, tenantID uint) ([]model.LedgerEntry, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LedgerEntry), args.Error(1)
}

func (m *MockLedgerStore) Create(ctx context.Context, entry *model.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerStore) Update(ctx context.Context, tenantID, id uint, entry *model.LedgerEntry) (*model.LedgerEntry, error) {
	args := m.Called(ctx, tenantID, id, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LedgerEntry), args.Error(1)
}

func (m *MockLedgerStore) Delete(ctx context.Context, tenantID, id uint) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
