package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Equal(t, 10000, cfg.ItineraryMaxEntries)
	assert.Equal(t, DemoKey, cfg.CurrencyAPIKey)
	assert.Equal(t, DemoKey, cfg.WeatherAPIKey)
	assert.Equal(t, 24*time.Hour, cfg.ItineraryTTL)
	assert.Equal(t, 10*time.Second, cfg.HTTPClientTimeout)
	assert.False(t, cfg.UsesLiveCurrency())
	assert.False(t, cfg.UsesLiveWeather())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WEATHER_API_KEY", "real-key")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("MAPBOX_ACCESS_TOKEN", "pk.test")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.4")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.UsesLiveWeather())
	assert.True(t, cfg.UsesLiveRoutes())
	assert.InDelta(t, 2.5, cfg.RateLimitRPS, 1e-9)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.4"}, cfg.TrustedProxies)
}

func TestLoad_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_BASE_URL=https://wanderlens.example\n"), 0o600))
	require.NoError(t, os.Unsetenv("APP_BASE_URL"))
	t.Cleanup(func() { _ = os.Unsetenv("APP_BASE_URL") })
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://wanderlens.example", cfg.AppBaseURL)
}

func TestLoad_DefaultSecretOutsideDebug(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("JWT_SECRET", DefaultJWTSecret)
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("LOG_LEVEL", "debug")
	_, err = Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("RATE_LIMIT_RPS", "0")
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)

	t.Setenv("RATE_LIMIT_RPS", "abc")
	_, err = Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)

	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("ITINERARY_MAX_ENTRIES", "0")
	_, err = Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.ErrorContains(t, err, "ITINERARY_MAX_ENTRIES")
}
