package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "erp_saas", cfg.DB.DBName)
	assert.Equal(t, 10, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5*time.Second, cfg.DB.AcquireTimeout)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 24, cfg.JWT.ExpirationHours)
	assert.NotEmpty(t, cfg.JWT.SigningKey)
	assert.NotEmpty(t, cfg.SuperAdmin.Email)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_ACQUIRE_TIMEOUT", "250ms")
	t.Setenv("JWT_SIGNING_KEY", "test-signing-key")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("SUPERADMIN_EMAIL", "root@erp.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, 250*time.Millisecond, cfg.DB.AcquireTimeout)
	assert.Equal(t, "test-signing-key", cfg.JWT.SigningKey)
	assert.Equal(t, 2, cfg.JWT.ExpirationHours)
	assert.Equal(t, "root@erp.example", cfg.SuperAdmin.Email)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("DB_ACQUIRE_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5*time.Second, cfg.DB.AcquireTimeout)
}

func TestGetDSN(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "secret",
		DBName:   "erp_saas",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=erp_saas sslmode=disable",
		cfg.GetDSN())
}
