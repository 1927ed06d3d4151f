// Package metrics holds the Prometheus collectors of the search pipeline
// and the HTTP middleware.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Pipeline and completion Prometheus metrics.
var (
	PipelineStageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchapi",
			Name:      "pipeline_stage_duration_seconds",
			Help:      "Pipeline stage duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"stage", "status"},
	)

	ParseFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "searchapi",
			Name:      "parse_fallbacks_total",
			Help:      "Queries answered with the degraded fallback filter",
		},
	)

	AdvisoryFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "searchapi",
			Name:      "advisory_fallbacks_total",
			Help:      "Advisory messages served from the deterministic templates",
		},
	)

	SearchResultsTotal = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "searchapi",
			Name:      "search_results_total",
			Help:      "Distribution of unpaginated match counts per query",
			Buckets:   []float64{0, 1, 3, 10, 25, 50, 100, 250, 1000},
		},
	)

	CompletionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchapi",
			Name:      "completion_requests_total",
			Help:      "Total number of completion requests",
		},
		[]string{"model", "status"},
	)

	CompletionRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchapi",
			Name:      "completion_request_duration_seconds",
			Help:      "Completion request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"model"},
	)

	CompletionTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchapi",
			Name:      "completion_tokens_total",
			Help:      "Total completion tokens consumed",
		},
		[]string{"model", "type"},
	)
)

var pipelineMetricsRegistered bool

// RegisterPipelineMetrics registers the pipeline metrics. Must be called
// once from main.
func RegisterPipelineMetrics() {
	if pipelineMetricsRegistered {
		return
	}
	prometheus.MustRegister(PipelineStageDuration)
	prometheus.MustRegister(ParseFallbacksTotal)
	prometheus.MustRegister(AdvisoryFallbacksTotal)
	prometheus.MustRegister(SearchResultsTotal)
	prometheus.MustRegister(CompletionRequestsTotal)
	prometheus.MustRegister(CompletionRequestDuration)
	prometheus.MustRegister(CompletionTokensTotal)
	pipelineMetricsRegistered = true
}
