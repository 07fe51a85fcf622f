package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brevify_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// SummarizeDuration tracks inference latency per provider.
	SummarizeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "brevify_summarize_duration_seconds",
		Help:    "Time spent generating a summary.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"provider"})

	// InputChars tracks the distribution of input text lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "brevify_input_chars",
		Help:    "Number of characters in summarize input text.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})

	// ProviderAvailable tracks whether each provider is reachable.
	ProviderAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "brevify_provider_available",
		Help: "Whether an LLM provider is available (1) or not (0).",
	}, []string{"provider"})
)
