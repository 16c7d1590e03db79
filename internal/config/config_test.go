package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/registration-validator/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.False(t, cfg.Redis.Enabled())
	assert.True(t, cfg.RateLimit.Enabled)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, config.ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.False(t, cfg.Observability.NewRelic.Enabled())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("REGISTRATION_PRIMARY__ENV", "production")
	t.Setenv("REGISTRATION_SERVER__PORT", "9090")
	t.Setenv("REGISTRATION_SERVER__READ_TIMEOUT", "5")
	t.Setenv("REGISTRATION_REDIS__ADDRESS", "localhost:6379")
	t.Setenv("REGISTRATION_RATE_LIMIT__BURST", "5")
	t.Setenv("REGISTRATION_RATE_LIMIT__EXPIRES_IN", "1m")
	t.Setenv("REGISTRATION_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout, "unset values keep their defaults")
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, time.Minute, cfg.RateLimit.ExpiresIn)

	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("REGISTRATION_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestLoadConfig_InvalidRedisAddress(t *testing.T) {
	t.Setenv("REGISTRATION_REDIS__ADDRESS", "not an address")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_InvalidLogFormat(t *testing.T) {
	t.Setenv("REGISTRATION_OBSERVABILITY__LOGGING__FORMAT", "xml")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	cfg.Logging.Level = "error"
	assert.Equal(t, "error", cfg.GetLogLevel())

	cfg.Logging.Level = ""
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())
}

func TestHealthChecksConfig_HasCheck(t *testing.T) {
	hc := config.HealthChecksConfig{Enabled: true, Checks: []string{"redis"}}
	assert.True(t, hc.HasCheck("redis"))
	assert.False(t, hc.HasCheck("database"))

	hc.Enabled = false
	assert.False(t, hc.HasCheck("redis"))
}
