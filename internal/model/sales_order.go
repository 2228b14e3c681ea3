package model

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatusPending is the initial status of every sales order.
const OrderStatusPending = "pending"

// SalesOrder represents a tenant's sales order. When ProductID is set,
// creating the order decrements that product's stock and writes a credit
// ledger entry in the same transaction.
type SalesOrder struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	TenantID     uint           `json:"tenant_id" gorm:"index;not null"`
	CustomerName string         `json:"customer_name" gorm:"type:varchar(255);not null"`
	Amount       float64        `json:"amount" gorm:"not null"`
	Status       string         `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ProductID    *uint          `json:"product_id,omitempty" gorm:"index"`
	Quantity     int            `json:"quantity" gorm:"default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
