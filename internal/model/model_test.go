package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatusTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{TenantStatusTrial, TenantStatusActive, true},
		{TenantStatusActive, TenantStatusSuspended, true},
		{TenantStatusSuspended, TenantStatusActive, true},
		{TenantStatusTrial, TenantStatusSuspended, false},
		{TenantStatusSuspended, TenantStatusTrial, false},
		{TenantStatusActive, TenantStatusTrial, false},
		{TenantStatusTrial, TenantStatusTrial, true},
		{TenantStatusActive, TenantStatusActive, true},
		{"unknown", TenantStatusActive, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, ValidStatusTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidLedgerType(t *testing.T) {
	assert.True(t, ValidLedgerType(LedgerTypeDebit))
	assert.True(t, ValidLedgerType(LedgerTypeCredit))
	assert.False(t, ValidLedgerType("transfer"))
	assert.False(t, ValidLedgerType(""))
}
