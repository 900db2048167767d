package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Second, cfg.GeoTimeout)
	assert.Equal(t, time.Hour, cfg.RatesTTL)
	assert.Equal(t, "USD", cfg.RatesBase)
	assert.Equal(t, []string{"USD"}, cfg.PrefetchBases)
	assert.Empty(t, cfg.TrustedProxies)
	assert.False(t, cfg.Postgres.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LOCALE_GEO_TIMEOUT", "2s")
	t.Setenv("LOCALE_PREFETCH_BASES", "USD,EUR")
	t.Setenv("LOCALE_TRUSTED_PROXIES", "10.0.0.0/8,192.0.2.7")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.GeoTimeout)
	assert.Equal(t, []string{"USD", "EUR"}, cfg.PrefetchBases)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.7"}, cfg.TrustedProxies)
	assert.True(t, cfg.Postgres.Enabled())
	assert.Equal(t, 6543, cfg.Postgres.Port)
	assert.Contains(t, cfg.Postgres.DSN(), "db.internal:6543")
}

func TestLoad_RejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("LOCALE_RATES_TTL", "0s")

	_, err := Load()
	assert.Error(t, err)
}
