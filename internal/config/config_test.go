package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetAll(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENVIRONMENT",
		"SMARTY_AUTH_ID", "SMARTY_AUTH_TOKEN", "SMARTY_BASE_URL", "SMARTY_TIMEOUT",
		"TRACING_ENABLED", "TRACING_ENDPOINT",
	} {
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetAll(t)

	err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, AppConfig.Port)
	assert.Equal(t, "development", AppConfig.Environment)
	assert.Equal(t, "https://us-street.api.smarty.com/street-address", AppConfig.SmartyBaseURL)
	assert.Equal(t, 30*time.Second, AppConfig.SmartyTimeout)
	assert.False(t, AppConfig.TracingEnabled)
	assert.False(t, AppConfig.IsSmartyConfigured())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	unsetAll(t)
	os.Setenv("PORT", "9090")
	os.Setenv("ENVIRONMENT", "production")
	os.Setenv("SMARTY_AUTH_ID", "test-id")
	os.Setenv("SMARTY_AUTH_TOKEN", "test-token")
	os.Setenv("SMARTY_TIMEOUT", "5s")
	defer unsetAll(t)

	err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, AppConfig.Port)
	assert.Equal(t, "production", AppConfig.Environment)
	assert.Equal(t, 5*time.Second, AppConfig.SmartyTimeout)
	assert.True(t, AppConfig.IsSmartyConfigured())
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	unsetAll(t)
	os.Setenv("PORT", "not-a-port")
	defer unsetAll(t)

	err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	unsetAll(t)
	os.Setenv("SMARTY_TIMEOUT", "soon")
	defer unsetAll(t)

	err := LoadConfig()
	assert.Error(t, err)
}

func TestIsSmartyConfigured_PartialCredentials(t *testing.T) {
	unsetAll(t)
	os.Setenv("SMARTY_AUTH_ID", "test-id")
	defer unsetAll(t)

	err := LoadConfig()
	require.NoError(t, err)

	// A single credential is not enough
	assert.False(t, AppConfig.IsSmartyConfigured())
}

func TestIsSmartyConfigured_NilConfig(t *testing.T) {
	var cfg *Config
	assert.False(t, cfg.IsSmartyConfigured())
}
