package model

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Each tenant has exactly one admin user; the super-admin is a
// seeded account with no tenant binding.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// User represents the user model stored in the database
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	TenantID     *uint          `json:"tenant_id,omitempty" gorm:"index"`
	Email        string         `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"type:varchar(255);not null"`
	Role         string         `json:"role" gorm:"type:varchar(20);not null;default:'admin'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
