package jwtutil

import (
	"testing"

	"erp-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUtil(hours int) *JWTUtil {
	return NewJWTUtil(&config.JWTConfig{
		SigningKey:      "test-signing-key",
		ExpirationHours: hours,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	j := newTestUtil(24)

	tenantID := uint(7)
	token, err := j.GenerateToken("admin@acme.com", 3, &tenantID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@acme.com", claims.Email)
	assert.Equal(t, uint(3), claims.UserID)
	require.NotNil(t, claims.TenantID)
	assert.Equal(t, uint(7), *claims.TenantID)
	assert.Equal(t, "admin", claims.Role)
}

func TestSuperAdminTokenHasNoTenant(t *testing.T) {
	j := newTestUtil(24)

	token, err := j.GenerateToken("superadmin@yourcompany.com", 1, nil, "superadmin")
	require.NoError(t, err)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.TenantID)
	assert.Equal(t, "superadmin", claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	j := newTestUtil(-1)

	token, err := j.GenerateToken("admin@acme.com", 3, nil, "admin")
	require.NoError(t, err)

	_, err = j.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenSignedWithDifferentKeyRejected(t *testing.T) {
	j := newTestUtil(24)
	other := NewJWTUtil(&config.JWTConfig{SigningKey: "other-key", ExpirationHours: 24})

	token, err := other.GenerateToken("admin@acme.com", 3, nil, "admin")
	require.NoError(t, err)

	_, err = j.ValidateToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	j := newTestUtil(24)
	_, err := j.ValidateToken("not-a-token")
	assert.Error(t, err)
}
