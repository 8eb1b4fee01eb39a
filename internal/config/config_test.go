package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "realty.db", cfg.DatabaseURL)
	assert.Equal(t, "audit", cfg.AuditDir)
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/realty")
	t.Setenv("AUDIT_DIR", "/var/log/realty")
	t.Setenv("JWT_ACCESS_TTL", "15m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres://localhost/realty", cfg.DatabaseURL)
	assert.Equal(t, "/var/log/realty", cfg.AuditDir)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessTTL)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_NonPositiveTTL(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "-1h")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProdRequiresRealSecret(t *testing.T) {
	t.Setenv("APP_ENV", "prod")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "an-actual-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.AppEnv)
}
