package metrics

import "github.com/prometheus/client_golang/prometheus"

// Advisor and generator Prometheus metrics.
var (
	AdvisorRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "indexgen",
			Name:      "advisor_requests_total",
			Help:      "Total number of advisory completion requests",
		},
		[]string{"provider", "model", "status"},
	)

	AdvisorRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "indexgen",
			Name:      "advisor_request_duration_seconds",
			Help:      "Advisory completion request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "model"},
	)

	AdvisorFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "indexgen",
			Name:      "advisor_fallbacks_total",
			Help:      "Analyses answered with the placeholder suggestion",
		},
	)

	ArtifactRendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "indexgen",
			Name:      "artifact_renders_total",
			Help:      "Total number of artifact renders",
		},
		[]string{"artifact"},
	)
)

var appMetricsRegistered bool

// RegisterAppMetrics registers advisor and artifact metrics. Must be called once from main.
func RegisterAppMetrics() {
	if appMetricsRegistered {
		return
	}
	prometheus.MustRegister(AdvisorRequestsTotal)
	prometheus.MustRegister(AdvisorRequestDuration)
	prometheus.MustRegister(AdvisorFallbacksTotal)
	prometheus.MustRegister(ArtifactRendersTotal)
	appMetricsRegistered = true
}
