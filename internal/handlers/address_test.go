package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-address/internal/logging"
	"github.com/prefeitura-rio/app-address/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider is a canned AddressValidationProvider for handler tests
type stubProvider struct {
	configured   bool
	response     *models.ValidationResponse
	lastRequest  *models.ValidationRequest
	lastCorrelID string
	callCount    int
}

func (s *stubProvider) ValidateAddress(ctx context.Context, req *models.ValidationRequest, correlationID string) *models.ValidationResponse {
	s.callCount++
	s.lastRequest = req
	s.lastCorrelID = correlationID
	return s.response
}

func (s *stubProvider) IsConfigured() bool {
	return s.configured
}

func (s *stubProvider) ProviderName() string {
	return "stub-provider"
}

func newTestRouter(provider *stubProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAddressHandlers(provider, logging.Logger)
	router.POST("/v1/addresses/validate", h.ValidateAddress)
	router.GET("/v1/addresses/validate", h.ValidateAddressQuery)
	return router
}

func successResponse(correlationID string) *models.ValidationResponse {
	return &models.ValidationResponse{
		Success:       true,
		CorrelationID: correlationID,
		Data: &models.ValidationResult{
			Validated:       true,
			Deliverable:     true,
			ValidationNotes: []string{"Address validated successfully"},
		},
	}
}

func TestValidateAddress_Success(t *testing.T) {
	provider := &stubProvider{configured: true, response: successResponse("req-123")}
	router := newTestRouter(provider)

	body := `{"correlationId":"req-123","street":"3901 SW 154th Ave","city":"Miramar","state":"FL"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/addresses/validate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, provider.callCount)
	assert.Equal(t, "req-123", provider.lastCorrelID)
	assert.Equal(t, "3901 SW 154th Ave", provider.lastRequest.Street)
	assert.Equal(t, "Miramar", provider.lastRequest.City)

	var resp models.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "req-123", resp.CorrelationID)
	assert.True(t, resp.Data.Validated)
	assert.True(t, resp.Data.Deliverable)
}

func TestValidateAddress_ProviderFailureReturns400(t *testing.T) {
	provider := &stubProvider{
		configured: true,
		response: &models.ValidationResponse{
			Success:       false,
			CorrelationID: "req-456",
			Error:         "Validation failed",
			Data: &models.ValidationResult{
				ValidationNotes: []string{"Street field exceeds maximum length of 100 characters"},
			},
		},
	}
	router := newTestRouter(provider)

	body := `{"correlationId":"req-456","street":"somewhere"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/addresses/validate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Error)
}

func TestValidateAddress_MissingCorrelationID(t *testing.T) {
	provider := &stubProvider{configured: true, response: successResponse("")}
	router := newTestRouter(provider)

	body := `{"street":"3901 SW 154th Ave"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/addresses/validate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, provider.callCount)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "invalid request body")
}

func TestValidateAddress_MalformedJSON(t *testing.T) {
	provider := &stubProvider{configured: true, response: successResponse("")}
	router := newTestRouter(provider)

	req := httptest.NewRequest(http.MethodPost, "/v1/addresses/validate", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, provider.callCount)
}

func TestValidateAddressQuery_Success(t *testing.T) {
	provider := &stubProvider{configured: true, response: successResponse("qry-1")}
	router := newTestRouter(provider)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/addresses/validate?correlationId=qry-1&street=3901+SW+154th+Ave&zipcode=33027&candidates=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "qry-1", provider.lastCorrelID)
	assert.Equal(t, "3901 SW 154th Ave", provider.lastRequest.Street)
	assert.Equal(t, "33027", provider.lastRequest.Zipcode)
	assert.Equal(t, 3, provider.lastRequest.Candidates)
}

func TestValidateAddressQuery_MissingCorrelationID(t *testing.T) {
	provider := &stubProvider{configured: true, response: successResponse("")}
	router := newTestRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/v1/addresses/validate?street=somewhere", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, provider.callCount)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "invalid query parameters")
}

func TestValidateAddress_NotValidatedStillSuccess(t *testing.T) {
	provider := &stubProvider{
		configured: true,
		response: &models.ValidationResponse{
			Success:       true,
			CorrelationID: "req-789",
			Data: &models.ValidationResult{
				Validated:       false,
				Deliverable:     false,
				ValidationNotes: []string{"No matching addresses found"},
			},
		},
	}
	router := newTestRouter(provider)

	body := `{"correlationId":"req-789","street":"123 Nowhere Ln"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/addresses/validate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// An unvalidated address is still a successful lookup
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Data.Validated)
}
