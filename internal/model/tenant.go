package model

import (
	"time"

	"gorm.io/gorm"
)

// Tenant subscription states. Activation and suspension are super-admin
// operations; plan upgrades change Plan without a state transition.
const (
	TenantStatusTrial     = "trial"
	TenantStatusActive    = "active"
	TenantStatusSuspended = "suspended"
)

// Tenant represents an isolated customer organization. Every domain row
// carries the owning tenant's ID; tenants are never hard-deleted.
type Tenant struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	CompanyName string         `json:"company_name" gorm:"type:varchar(255);not null"`
	Email       string         `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Plan        string         `json:"plan" gorm:"type:varchar(50);not null;default:'trial'"`
	Status      string         `json:"status" gorm:"type:varchar(20);not null;default:'trial'"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// ValidStatusTransition reports whether a tenant may move from one
// subscription status to another: trial -> active -> suspended, with
// reactivation of a suspended tenant allowed.
func ValidStatusTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case TenantStatusTrial:
		return to == TenantStatusActive
	case TenantStatusActive:
		return to == TenantStatusSuspended
	case TenantStatusSuspended:
		return to == TenantStatusActive
	}
	return false
}
