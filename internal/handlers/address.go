package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-address/internal/logging"
	"github.com/prefeitura-rio/app-address/internal/middleware"
	"github.com/prefeitura-rio/app-address/internal/models"
	"github.com/prefeitura-rio/app-address/internal/services"
	"github.com/prefeitura-rio/app-address/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// AddressHandlers exposes the address validation endpoints
type AddressHandlers struct {
	provider services.AddressValidationProvider
	logger   *logging.SafeLogger
}

// NewAddressHandlers creates a new AddressHandlers instance
func NewAddressHandlers(provider services.AddressValidationProvider, logger *logging.SafeLogger) *AddressHandlers {
	return &AddressHandlers{
		provider: provider,
		logger:   logger,
	}
}

// ValidateAddress godoc
// @Summary Validate an address
// @Description Validates a US street address against the configured postal-verification provider and returns a normalized verdict with human-readable notes.
// @Tags addresses
// @Accept json
// @Produce json
// @Param data body models.ValidationRequest true "Address to validate"
// @Success 200 {object} models.ValidationResponse
// @Failure 400 {object} models.ValidationResponse "Validation or provider failure"
// @Router /addresses/validate [post]
func (h *AddressHandlers) ValidateAddress(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateAddress")
	defer span.End()

	var req models.ValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	h.handleValidation(ctx, c, &req, span)
}

// ValidateAddressQuery godoc
// @Summary Validate an address via query parameters
// @Description Same as the POST variant, with the request carried in the query string.
// @Tags addresses
// @Produce json
// @Param correlationId query string true "Correlation identifier"
// @Param street query string false "Street line"
// @Param street2 query string false "Secondary line (apartment/suite)"
// @Param city query string false "City"
// @Param state query string false "State"
// @Param zipcode query string false "Zipcode"
// @Param addressee query string false "Intended recipient"
// @Param candidates query int false "Desired number of candidates (1-10)"
// @Param match query string false "Match mode: strict, range or invalid"
// @Param format query string false "Output formatting hint"
// @Success 200 {object} models.ValidationResponse
// @Failure 400 {object} models.ValidationResponse "Validation or provider failure"
// @Router /addresses/validate [get]
func (h *AddressHandlers) ValidateAddressQuery(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateAddressQuery")
	defer span.End()

	var req models.ValidationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid query parameters: " + err.Error()})
		return
	}

	h.handleValidation(ctx, c, &req, span)
}

func (h *AddressHandlers) handleValidation(ctx context.Context, c *gin.Context, req *models.ValidationRequest, span trace.Span) {
	correlationID := req.CorrelationID
	if correlationID == "" {
		correlationID = c.GetString(middleware.CorrelationIDKey)
	}

	span.SetAttributes(
		attribute.String("correlation_id", correlationID),
		attribute.String("operation", "validate_address"),
		attribute.String("provider", h.provider.ProviderName()),
	)

	logger := h.logger.With(zap.String("correlation_id", correlationID))
	logger.Info("address validation request",
		zap.Bool("has_street", req.Street != ""),
		zap.Bool("has_city", req.City != ""),
		zap.Bool("has_state", req.State != ""),
		zap.Bool("has_zipcode", req.Zipcode != ""))

	result := h.provider.ValidateAddress(ctx, req, correlationID)

	logger.Info("address validation completed",
		zap.Bool("success", result.Success),
		zap.Bool("validated", result.Data != nil && result.Data.Validated),
		zap.Bool("deliverable", result.Data != nil && result.Data.Deliverable),
		zap.Bool("has_suggestions", result.Data != nil && len(result.Data.Suggestions) > 0))

	_, serializeSpan := utils.TraceResponseSerialization(ctx, "validation_response")
	if result.Success {
		c.JSON(http.StatusOK, result)
	} else {
		c.JSON(http.StatusBadRequest, result)
	}
	serializeSpan.End()
}
