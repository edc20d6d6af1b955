package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Clear anything the surrounding environment might set.
	for _, key := range []string{"PORT", "ENV", "YAHOO_BASE_URL", "YAHOO_TIMEOUT",
		"SCRAPE_ENABLED", "SCREEN_CONCURRENCY", "CACHE_TTL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8087", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "https://query1.finance.yahoo.com", cfg.Yahoo.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Yahoo.Timeout)
	assert.True(t, cfg.Scrape.Enabled)
	assert.Equal(t, 1, cfg.Screening.Concurrency)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("SCREEN_CONCURRENCY", "3")
	t.Setenv("SCRAPE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 3, cfg.Screening.Concurrency)
	assert.False(t, cfg.Scrape.Enabled)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("ENV", "sandbox")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadCapsConcurrency(t *testing.T) {
	t.Setenv("SCREEN_CONCURRENCY", "10")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFloorsConcurrency(t *testing.T) {
	t.Setenv("SCREEN_CONCURRENCY", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Screening.Concurrency)
}

func TestEnvHelpersFallBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	t.Setenv("SOME_DURATION", "abc")
	t.Setenv("SOME_BOOL", "abc")

	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
	assert.Equal(t, 5*time.Second, getEnvAsDuration("SOME_DURATION", "5s"))
	assert.True(t, getEnvAsBool("SOME_BOOL", true))
}
