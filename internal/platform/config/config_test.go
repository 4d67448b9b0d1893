package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/attendance")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/attendance", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Location.String())
	assert.Equal(t, "0 18 * * *", cfg.AbsenceCron)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.EnableScheduler)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("ABSENCE_CRON", "30 17 * * 1-6")
	t.Setenv("JWT_EXPIRY_DURATION", "2h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, "30 17 * * 1-6", cfg.AbsenceCron)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidTimezone(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "APP_TIMEZONE")
}

func TestLoadConfig_InvalidCron(t *testing.T) {
	t.Setenv("ABSENCE_CRON", "every evening")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "ABSENCE_CRON")
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadConfig_PartialBootstrapAdminDisabled(t *testing.T) {
	t.Setenv("BOOTSTRAP_ADMIN_PHONE", "0900000000")
	t.Setenv("BOOTSTRAP_ADMIN_PASSWORD", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.BootstrapAdminPhone)
}
