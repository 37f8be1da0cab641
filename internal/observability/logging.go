package observability

import (
	"strings"

	"github.com/prefeitura-rio/app-address/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCredential masks an API credential for logging, keeping a short prefix
func MaskCredential(credential string) string {
	if len(credential) <= 4 {
		return strings.Repeat("*", 8)
	}
	return credential[:4] + strings.Repeat("*", 8)
}

// MaskSensitiveData masks credential fields in a map
func MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	sensitiveFields := []string{"auth-id", "auth-token"}
	masked := make(map[string]interface{})

	for k, v := range data {
		if contains(sensitiveFields, k) {
			masked[k] = "********"
		} else {
			masked[k] = v
		}
	}

	return masked
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
