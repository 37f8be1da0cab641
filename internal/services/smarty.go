package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/prefeitura-rio/app-address/internal/config"
	"github.com/prefeitura-rio/app-address/internal/logging"
	"github.com/prefeitura-rio/app-address/internal/models"
	"github.com/prefeitura-rio/app-address/internal/observability"
	"github.com/prefeitura-rio/app-address/internal/utils"
	"github.com/prefeitura-rio/app-address/internal/utils/httpclient"
	"go.uber.org/zap"
)

// AddressValidationProvider abstracts a postal-verification backend. The
// interface is kept narrow so a second provider can be registered without
// touching the validator or the interpreter.
type AddressValidationProvider interface {
	ValidateAddress(ctx context.Context, req *models.ValidationRequest, correlationID string) *models.ValidationResponse
	IsConfigured() bool
	ProviderName() string
}

const smartyUserAgent = "AddressService/1.0.0"

// SmartyProvider validates addresses against the Smarty US Street Address API
type SmartyProvider struct {
	cfg    *config.Config
	pool   *httpclient.Pool
	logger *logging.SafeLogger
}

// NewSmartyProvider creates a new Smarty provider instance
func NewSmartyProvider(cfg *config.Config, logger *logging.SafeLogger) *SmartyProvider {
	return &SmartyProvider{
		cfg:    cfg,
		pool:   httpclient.NewPool(10, cfg.SmartyTimeout),
		logger: logger,
	}
}

// ProviderName returns the provider identifier used for logging and metrics
func (p *SmartyProvider) ProviderName() string {
	return "smarty-us-street-api"
}

// IsConfigured reports whether both Smarty credentials are present
func (p *SmartyProvider) IsConfigured() bool {
	return p.cfg.IsSmartyConfigured()
}

// Close releases the provider's HTTP client pool
func (p *SmartyProvider) Close() {
	p.pool.Close()
}

// ValidateAddress runs the full validation flow: credential check, input
// validation, a single provider call and response interpretation. It always
// returns a structured response, never an error.
func (p *SmartyProvider) ValidateAddress(ctx context.Context, req *models.ValidationRequest, correlationID string) *models.ValidationResponse {
	if correlationID == "" {
		correlationID = req.CorrelationID
	}

	logger := p.logger.With(
		zap.String("correlation_id", correlationID),
		zap.String("provider", p.ProviderName()),
	)

	// Credentials are checked before any network attempt
	if !p.IsConfigured() {
		logger.Warn("smarty credentials not configured")
		return &models.ValidationResponse{
			Success:       false,
			CorrelationID: correlationID,
			Error:         models.ErrCredentialsNotConfigured.Error(),
			Data: &models.ValidationResult{
				Validated:   false,
				Deliverable: false,
			},
		}
	}

	ctx, validationSpan := utils.TraceInputValidation(ctx, "address_fields", "request")
	validationErrors := ValidateAddressInput(req)
	validationSpan.End()

	if len(validationErrors) > 0 {
		logger.Info("address validation request rejected",
			zap.Int("error_count", len(validationErrors)))
		observability.ValidationRequests.WithLabelValues("rejected").Inc()
		return &models.ValidationResponse{
			Success:       false,
			CorrelationID: correlationID,
			Error:         models.ErrValidationFailed.Error(),
			Data: &models.ValidationResult{
				Validated:       false,
				Deliverable:     false,
				ValidationNotes: validationErrors,
			},
		}
	}

	query := p.buildQuery(req)

	logger.Debug("calling Smarty API",
		zap.String("base_url", p.cfg.SmartyBaseURL),
		zap.String("auth_id", observability.MaskCredential(p.cfg.SmartyAuthID)),
		zap.Int("param_count", len(query)))

	candidates, err := p.fetch(ctx, query, correlationID)
	if err != nil {
		logger.Error("Smarty API call failed", zap.Error(err))
		observability.ProviderAPICalls.WithLabelValues(p.ProviderName(), "error").Inc()
		observability.ValidationRequests.WithLabelValues("error").Inc()
		return &models.ValidationResponse{
			Success:       false,
			CorrelationID: correlationID,
			Error:         err.Error(),
			Data: &models.ValidationResult{
				Validated:       false,
				Deliverable:     false,
				ValidationNotes: []string{"API call failed"},
			},
		}
	}
	observability.ProviderAPICalls.WithLabelValues(p.ProviderName(), "success").Inc()

	_, interpretSpan := utils.TraceBusinessLogic(ctx, "interpret_candidates")
	result := InterpretCandidates(candidates)
	interpretSpan.End()

	outcome := "not_validated"
	if result.Validated {
		outcome = "validated"
	}
	observability.ValidationRequests.WithLabelValues(outcome).Inc()

	logger.Info("address validation completed",
		zap.Int("candidates", len(candidates)),
		zap.Bool("validated", result.Validated),
		zap.Bool("deliverable", result.Deliverable))

	return &models.ValidationResponse{
		Success:       true,
		CorrelationID: correlationID,
		Data:          result,
	}
}

// buildQuery copies present request fields verbatim into the provider's flat
// parameter set and injects the credential parameters. This is the only place
// request data crosses into the provider's vocabulary.
func (p *SmartyProvider) buildQuery(req *models.ValidationRequest) url.Values {
	query := url.Values{}
	query.Set("auth-id", p.cfg.SmartyAuthID)
	query.Set("auth-token", p.cfg.SmartyAuthToken)

	if req.Street != "" {
		query.Set("street", req.Street)
	}
	if req.Street2 != "" {
		query.Set("street2", req.Street2)
	}
	if req.City != "" {
		query.Set("city", req.City)
	}
	if req.State != "" {
		query.Set("state", req.State)
	}
	if req.Zipcode != "" {
		query.Set("zipcode", req.Zipcode)
	}
	if req.Addressee != "" {
		query.Set("addressee", req.Addressee)
	}
	if req.Candidates != 0 {
		query.Set("candidates", strconv.Itoa(req.Candidates))
	}
	if req.Match != "" {
		query.Set("match", req.Match)
	}
	if req.Format != "" {
		query.Set("format", req.Format)
	}

	return query
}

// fetch performs the single outbound GET to the Smarty endpoint. No retry is
// attempted: any failure is surfaced to the caller immediately.
func (p *SmartyProvider) fetch(ctx context.Context, query url.Values, correlationID string) ([]models.SmartyCandidate, error) {
	ctx, span := utils.TraceExternalService(ctx, p.ProviderName(), "street-address")
	defer span.End()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.SmartyBaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", smartyUserAgent)
	httpReq.Header.Set("X-Correlation-ID", correlationID)

	client := p.pool.Get()
	defer p.pool.Put(client)

	resp, err := client.Do(httpReq)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{
			"provider": p.ProviderName(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Smarty response: %w", err)
	}

	utils.AddSpanAttribute(span, "http.status_code", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("Smarty API error: %d %s - %s",
			resp.StatusCode, http.StatusText(resp.StatusCode), strings.TrimSpace(string(body)))
	}

	return decodeCandidates(body)
}

// decodeCandidates accepts both payload shapes Smarty is known to return: a
// bare candidate array, or an object wrapping it in an "addresses" field.
func decodeCandidates(body []byte) ([]models.SmartyCandidate, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var candidates []models.SmartyCandidate
		if err := json.Unmarshal(body, &candidates); err != nil {
			return nil, fmt.Errorf("failed to decode Smarty response: %w", err)
		}
		return candidates, nil
	}

	var envelope struct {
		Addresses []models.SmartyCandidate `json:"addresses"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode Smarty response: %w", err)
	}
	return envelope.Addresses, nil
}
