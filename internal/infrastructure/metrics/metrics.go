package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// SEMrush MCP metrics - using explicit registration
var (
	// Request counters
	RequestsTotal *prometheus.CounterVec

	// Report fetch counters, one increment per tool invocation
	ReportFetchesTotal *prometheus.CounterVec

	// Report fetch duration histogram
	ReportFetchDuration *prometheus.HistogramVec

	// Upstream report API status counter
	RemoteRequestsTotal *prometheus.CounterVec

	// Upstream report API latency
	RemoteLatency *prometheus.HistogramVec

	// Credential store lookup counter
	CredentialLookupsTotal *prometheus.CounterVec
)

// init creates and registers all metrics with the default registry
func init() {
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "semrush",
			Subsystem: "mcp",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)

	ReportFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "semrush",
			Subsystem: "mcp",
			Name:      "report_fetches_total",
			Help:      "Total report tool invocations",
		},
		[]string{"report", "endpoint", "status"},
	)

	ReportFetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "semrush",
			Subsystem: "mcp",
			Name:      "report_fetch_duration_seconds",
			Help:      "Report execution duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"report", "endpoint"},
	)

	RemoteRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "semrush",
			Subsystem: "mcp",
			Name:      "remote_requests_total",
			Help:      "Total requests to the report API by HTTP status",
		},
		[]string{"endpoint", "status"},
	)

	RemoteLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "semrush",
			Subsystem: "mcp",
			Name:      "remote_latency_seconds",
			Help:      "Report API response time in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	CredentialLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "semrush",
			Subsystem: "mcp",
			Name:      "credential_lookups_total",
			Help:      "Total credential store lookups",
		},
		[]string{"store", "status"},
	)

	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(ReportFetchesTotal)
	prometheus.MustRegister(ReportFetchDuration)
	prometheus.MustRegister(RemoteRequestsTotal)
	prometheus.MustRegister(RemoteLatency)
	prometheus.MustRegister(CredentialLookupsTotal)
	log.Info().Msg("SEMrush MCP metrics registered with Prometheus")
}

// RecordRequest records an HTTP request
func RecordRequest(method, status string) {
	RequestsTotal.WithLabelValues(method, status).Inc()
}

// RecordReportFetch records a report tool invocation
func RecordReportFetch(report, endpoint, status string, durationSec float64) {
	if status == "" {
		status = "unknown"
	}
	ReportFetchesTotal.WithLabelValues(report, endpoint, status).Inc()
	ReportFetchDuration.WithLabelValues(report, endpoint).Observe(durationSec)
}

// RecordRemoteRequest records one exchange with the report API
func RecordRemoteRequest(endpoint, status string, durationSec float64) {
	if status == "" {
		status = "unknown"
	}
	RemoteRequestsTotal.WithLabelValues(endpoint, status).Inc()
	RemoteLatency.WithLabelValues(endpoint).Observe(durationSec)
}

// RecordCredentialLookup records a credential store lookup
func RecordCredentialLookup(store, status string) {
	CredentialLookupsTotal.WithLabelValues(store, status).Inc()
}
