package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthRouter(provider *stubProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHealthHandlers(provider)
	router.GET("/v1/health", h.HealthCheck)
	router.GET("/v1/health/ready", h.Readiness)
	router.GET("/v1/health/live", h.Liveness)
	return router
}

func TestHealthCheck(t *testing.T) {
	router := newHealthRouter(&stubProvider{configured: true})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "app-address", body["service"])
	assert.NotEmpty(t, body["timestamp"])

	provider, ok := body["provider"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "stub-provider", provider["name"])
	assert.Equal(t, true, provider["configured"])
}

func TestHealthCheck_UnconfiguredProviderStillHealthy(t *testing.T) {
	router := newHealthRouter(&stubProvider{configured: false})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	// Missing credentials degrade validation responses, not service health
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	provider, ok := body["provider"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, provider["configured"])
}

func TestReadiness(t *testing.T) {
	router := newHealthRouter(&stubProvider{configured: true})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health/ready", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, true, body["provider_configured"])
}

func TestLiveness(t *testing.T) {
	router := newHealthRouter(&stubProvider{configured: false})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"alive"`)
}
