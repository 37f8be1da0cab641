package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_address_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// ProviderAPICalls tracks outbound calls to address validation providers
	ProviderAPICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_address_provider_api_calls_total",
			Help: "Number of outbound provider API calls",
		},
		[]string{"provider", "status"},
	)

	// ValidationRequests tracks validation verdicts by outcome
	ValidationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_address_validation_requests_total",
			Help: "Number of address validation requests",
		},
		[]string{"result"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_address_active_connections",
			Help: "Number of active connections",
		},
	)
)
