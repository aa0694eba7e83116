package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsTimeDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "go syntax", value: "15s", want: 15 * time.Second},
		{name: "minutes", value: "2m", want: 2 * time.Minute},
		{name: "bare seconds", value: "30", want: 30 * time.Second},
		{name: "garbage falls back", value: "soon", want: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, getEnvAsTimeDuration("TEST_DURATION", time.Hour))
		})
	}
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TEST_SLICE", " a.com, ,b.com ,")
	assert.Equal(t, []string{"a.com", "b.com"}, getEnvAsSlice("TEST_SLICE", nil))

	assert.Equal(t, []string{"x"}, getEnvAsSlice("TEST_SLICE_MISSING", []string{"x"}))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DEBUG", "")
	t.Setenv("ADMIN_API_KEY", "")
	t.Setenv("CACHE_ENABLED", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("AUTH_ACCESS_TOKEN_SECRET", "")
	t.Setenv("ALLOWED_HOSTS", "")
	t.Setenv("DB_DRIVER", "")

	cfg := Load()
	require.NotNil(t, cfg)

	assert.False(t, cfg.Server.Debug)
	assert.Equal(t, []string{"localhost", "127.0.0.1"}, cfg.Server.AllowedHosts)
	assert.False(t, cfg.Cors.AllowAllOrigins)
	assert.Empty(t, cfg.Auth.AdminAPIKey)
	assert.Equal(t, cfg.Server.SecretKey, cfg.Auth.AccessTokenSecret)
	assert.False(t, cfg.RateLimit.Enabled, "rate limiting requires the cache")
	assert.Equal(t, "pg", cfg.Database.Driver)
}

func TestLoad_DebugRelaxesHostsAndCors(t *testing.T) {
	t.Setenv("DEBUG", "true")
	t.Setenv("ALLOWED_HOSTS", "api.favour-crochet.com")

	cfg := Load()

	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedHosts)
	assert.True(t, cfg.Cors.AllowAllOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("ADMIN_API_KEY", "admin-key")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("RATE_LIMIT_WRITE", "5")
	t.Setenv("RATE_LIMIT_WRITE_WINDOW", "10s")
	t.Setenv("DB_DRIVER", "pgx")

	cfg := Load()

	assert.Equal(t, "s3cret", cfg.Auth.AccessTokenSecret)
	assert.Equal(t, "admin-key", cfg.Auth.AdminAPIKey)
	assert.True(t, cfg.Cache.Enabled)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5, cfg.RateLimit.WriteLimit)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.WriteWindow)
	assert.Equal(t, "pgx", cfg.Database.Driver)
}
