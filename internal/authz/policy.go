package authz

import "erp-service/internal/model"

// Session is the authenticated context derived from a validated token.
// TenantID is nil only for the super-admin account.
type Session struct {
	UserID   uint
	TenantID *uint
	Email    string
	Role     string
}

// Resource names accepted by CanAccess.
const (
	ResourceTenant     = "tenant"
	ResourceCustomer   = "customer"
	ResourceProduct    = "product"
	ResourceSalesOrder = "sales_order"
	ResourceLedger     = "ledger_entry"
)

// Actions accepted by CanAccess.
const (
	ActionList   = "list"
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// CanAccess is the single authorization policy, evaluated before dispatch.
//
// Domain entities (customer, product, sales order, ledger entry) require a
// tenant admin session; the session's tenant is the implicit scope and the
// super-admin has no cross-tenant access to them. The tenant resource is
// super-admin only. Reading a specific tenant needs the target ID and goes
// through CanReadTenant instead.
func CanAccess(s *Session, resource, action string) bool {
	if s == nil {
		return false
	}

	if resource == ResourceTenant {
		return s.Role == model.RoleSuperAdmin
	}

	return s.Role == model.RoleAdmin && s.TenantID != nil
}

// CanReadTenant is the target-aware read rule for the tenant resource:
// the super-admin, or the tenant reading itself.
func CanReadTenant(s *Session, tenantID uint) bool {
	if s == nil {
		return false
	}
	if s.Role == model.RoleSuperAdmin {
		return true
	}
	return s.TenantID != nil && *s.TenantID == tenantID
}
