package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_TypesenseConfig(t *testing.T) {
	t.Setenv("TYPESENSE_ENABLED", "true")
	t.Setenv("TYPESENSE_URL", "http://test-typesense:8108")
	t.Setenv("TYPESENSE_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Typesense.Enabled)
	assert.Equal(t, "http://test-typesense:8108", cfg.Typesense.URL)
	assert.Equal(t, "test-key", cfg.Typesense.APIKey)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "localhost:6379", cfg.Redis.RedisAddr())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10.0, cfg.Search.DefaultRadiusMiles)
	assert.Equal(t, 10*time.Second, cfg.Geolocation.Timeout)
	assert.Equal(t, 40.7128, cfg.Geolocation.DefaultLat)
	assert.Equal(t, -74.006, cfg.Geolocation.DefaultLng)
	assert.Equal(t, "hospital-locator", cfg.OTEL.ServiceName)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 300, cfg.Cache.HospitalsTTL)
	assert.Equal(t, 3600, cfg.Cache.GeocodingTTL)
	assert.Equal(t, 10000, cfg.Cache.MemoryMaxEntries)
}

func TestLoad_CacheOverrides(t *testing.T) {
	t.Setenv("CACHE_MEMORY_MAX_ENTRIES", "250")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Cache.MemoryMaxEntries)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestLoad_GeolocationOverrides(t *testing.T) {
	t.Setenv("GEOLOCATION_TIMEOUT_MS", "2500")
	t.Setenv("GEOLOCATION_DEFAULT_LAT", "51.5074")
	t.Setenv("GEOLOCATION_DEFAULT_LNG", "-0.1278")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2500*time.Millisecond, cfg.Geolocation.Timeout)
	assert.Equal(t, 51.5074, cfg.Geolocation.DefaultLat)
	assert.Equal(t, -0.1278, cfg.Geolocation.DefaultLng)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	t.Setenv("SEARCH_DEFAULT_RADIUS_MILES", "far")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10.0, cfg.Search.DefaultRadiusMiles)
}

func TestLoad_RejectsNonPositiveRadius(t *testing.T) {
	t.Setenv("SEARCH_DEFAULT_RADIUS_MILES", "-3")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_AllowedOrigins(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)

	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}
