package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// Smarty US Street Address API configuration
	SmartyAuthID    string        `json:"smarty_auth_id"`
	SmartyAuthToken string        `json:"smarty_auth_token"`
	SmartyBaseURL   string        `json:"smarty_base_url"`
	SmartyTimeout   time.Duration `json:"smarty_timeout"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	smartyTimeout, err := time.ParseDuration(getEnvOrDefault("SMARTY_TIMEOUT", "30s"))
	if err != nil {
		return fmt.Errorf("invalid SMARTY_TIMEOUT: %w", err)
	}

	tracingEnabled, err := strconv.ParseBool(getEnvOrDefault("TRACING_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("invalid TRACING_ENABLED: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// Smarty configuration. Credentials are optional at startup: the
		// provider reports itself unconfigured and requests fail fast.
		SmartyAuthID:    os.Getenv("SMARTY_AUTH_ID"),
		SmartyAuthToken: os.Getenv("SMARTY_AUTH_TOKEN"),
		SmartyBaseURL:   getEnvOrDefault("SMARTY_BASE_URL", "https://us-street.api.smarty.com/street-address"),
		SmartyTimeout:   smartyTimeout,

		// Tracing configuration
		TracingEnabled:  tracingEnabled,
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// IsSmartyConfigured reports whether both Smarty credentials are present
func (c *Config) IsSmartyConfigured() bool {
	return c != nil && c.SmartyAuthID != "" && c.SmartyAuthToken != ""
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
