package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ACCOUNT_API_URL", "http://accounts.local")
	t.Setenv("SESSION_SECRET", "segredo")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "cookie", cfg.SessionStore)
	assert.Equal(t, "__session", cfg.SessionCookieName)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 3*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitPeriod)
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("ACCOUNT_API_URL", "http://accounts.local")
	t.Setenv("SESSION_SECRET", "segredo")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("REMOTE_TIMEOUT_SEC", "1")
	t.Setenv("ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.SessionStore)
	assert.Equal(t, time.Second, cfg.RemoteTimeout)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("ACCOUNT_API_URL", "")
	t.Setenv("SESSION_SECRET", "segredo")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "ACCOUNT_API_URL")
}

func TestValidate_RejectsUnknownStore(t *testing.T) {
	cfg := &Config{AccountAPIURL: "http://x", SessionSecret: "s", SessionStore: "memcached", RemoteTimeout: time.Second}
	assert.Error(t, cfg.Validate())
}

func TestLoadDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := LoadDatabaseURL()
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://loja@localhost/gate?sslmode=disable")
	url, err := LoadDatabaseURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://loja@localhost/gate?sslmode=disable", url)
}
