package utils

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TraceEndpointStep traces one step of an endpoint's processing
func TraceEndpointStep(ctx context.Context, step string, attributes map[string]interface{}) (context.Context, trace.Span) {
	otelAttrs := make([]attribute.KeyValue, 0, len(attributes))
	for k, v := range attributes {
		otelAttrs = append(otelAttrs, toAttribute(k, v))
	}

	return otel.Tracer("app-address").Start(ctx, step, trace.WithAttributes(otelAttrs...))
}

// TraceInputValidation traces input validation operations
func TraceInputValidation(ctx context.Context, validationType, field string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "input_validation", map[string]interface{}{
		"validation.type":  validationType,
		"validation.field": field,
	})
}

// TraceBusinessLogic traces business logic operations
func TraceBusinessLogic(ctx context.Context, logicType string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "business_logic", map[string]interface{}{
		"logic.type": logicType,
	})
}

// TraceExternalService traces external service calls
func TraceExternalService(ctx context.Context, serviceName, operation string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "external_service", map[string]interface{}{
		"service.name":      serviceName,
		"service.operation": operation,
	})
}

// TraceResponseSerialization traces response serialization operations
func TraceResponseSerialization(ctx context.Context, responseType string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "serialize_response", map[string]interface{}{
		"response.type": responseType,
	})
}

// RecordErrorInSpan records an error in a span with additional context
func RecordErrorInSpan(span trace.Span, err error, context map[string]interface{}) {
	span.RecordError(err)

	for k, v := range context {
		span.SetAttributes(toAttribute(k, v))
	}
}

// AddSpanAttribute adds a single attribute to a span
func AddSpanAttribute(span trace.Span, key string, value interface{}) {
	span.SetAttributes(toAttribute(key, value))
}

func toAttribute(key string, value interface{}) attribute.KeyValue {
	switch val := value.(type) {
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case bool:
		return attribute.Bool(key, val)
	case float64:
		return attribute.Float64(key, val)
	default:
		return attribute.String(key, "unknown_type")
	}
}
