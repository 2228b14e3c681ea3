package model

import (
	"time"

	"gorm.io/gorm"
)

// Ledger entry types
const (
	LedgerTypeDebit  = "debit"
	LedgerTypeCredit = "credit"
)

// LedgerEntry represents a tenant's accounting ledger row
type LedgerEntry struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	TenantID    uint           `json:"tenant_id" gorm:"index;not null"`
	Description string         `json:"description" gorm:"type:varchar(255);not null"`
	Type        string         `json:"type" gorm:"type:varchar(10);not null"`
	Amount      float64        `json:"amount" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// ValidLedgerType reports whether t is one of the accepted entry types.
func ValidLedgerType(t string) bool {
	return t == LedgerTypeDebit || t == LedgerTypeCredit
}
