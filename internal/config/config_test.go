package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadDefaults(t *testing.T) {
	for key := range defaults {
		unsetEnv(t, key)
	}

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.SeedCatalog)
	assert.Equal(t, time.Hour, cfg.CatalogCacheTTL)
	assert.Equal(t, 8*time.Second, cfg.CatalogLookupTimeout)
	assert.Equal(t, 5.0, cfg.MapboxRatePerSecond)
	assert.Equal(t, 5, cfg.MapboxResultsPerCategory)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, "*", cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.PostgresURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SEED_CATALOG", "false")
	t.Setenv("CATALOG_CACHE_TTL", "15m")
	t.Setenv("MAPBOX_RATE_PER_SECOND", "2.5")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.SeedCatalog)
	assert.Equal(t, 15*time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, 2.5, cfg.MapboxRatePerSecond)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoadEnvFile(t *testing.T) {
	unsetEnv(t, "LOG_LEVEL")
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nPORT=1234\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	// The process environment wins over the file.
	assert.Equal(t, "7000", cfg.Port)
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"PORT":                   "eighty",
		"CATALOG_CACHE_TTL":      "-1s",
		"CATALOG_LOOKUP_TIMEOUT": "0s",
		"MAPBOX_RATE_PER_SECOND": "0",
		"LOG_FORMAT":             "xml",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
