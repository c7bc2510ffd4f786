package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
	t.Setenv("GOOGLE_CALLBACK_URL", "http://localhost:5000/auth/google/callback")
	t.Setenv("FRONTEND_URL", "http://localhost:3000")

	// optional vars must be absent, not empty, for envDefault to apply;
	// t.Setenv registers the restore before the unset
	for _, key := range []string{"PORT", "TOKEN_DELIVERY", "STATE_STORE", "REDIS_ADDR", "COOKIE_SECURE", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, DeliveryCookie, cfg.TokenDelivery)
	assert.Equal(t, StateStoreMemory, cfg.StateStore)
	assert.False(t, cfg.CookieSecure)
}

func TestLoadMissingSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadMissingProviderCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOOGLE_CLIENT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownDelivery(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOKEN_DELIVERY", "smoke-signals")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRedisStoreNeedsAddr(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STATE_STORE", "redis")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("REDIS_ADDR", "localhost:6379")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StateStoreRedis, cfg.StateStore)
}
