package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-address/internal/services"
)

// HealthHandlers exposes the service health endpoints
type HealthHandlers struct {
	provider services.AddressValidationProvider
}

// NewHealthHandlers creates a new HealthHandlers instance
func NewHealthHandlers(provider services.AddressValidationProvider) *HealthHandlers {
	return &HealthHandlers{provider: provider}
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports overall service health and whether the validation provider is configured.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "app-address",
		"version":   "1.0.0",
		"provider": gin.H{
			"name":       h.provider.ProviderName(),
			"configured": h.provider.IsConfigured(),
		},
	})
}

// Readiness godoc
// @Summary Readiness probe
// @Description The service is ready as soon as it is serving; provider credentials are reported but not required.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandlers) Readiness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":              "ready",
		"provider_configured": h.provider.IsConfigured(),
	})
}

// Liveness godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *HealthHandlers) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
