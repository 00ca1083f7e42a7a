package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Reasons for failed requests, used as label values.
const (
	reasonBadJSON  = "bad_json"
	reasonTooLarge = "too_large"
)

type metrics struct {
	registry *prometheus.Registry
	merges   prometheus.Counter
	errors   *prometheus.CounterVec
	duration prometheus.Histogram
}

// newMetrics registers the service metrics with a registry of its own, thus
// several servers may live in one process (as in tests).
func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		merges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "twmerge",
			Name:      "merges_total",
			Help:      "Number of merged class lists.",
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "twmerge",
			Name:      "request_errors_total",
			Help:      "Number of rejected merge requests.",
		}, []string{"reason"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "twmerge",
			Name:      "merge_duration_seconds",
			Help:      "Time spent merging a request.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}),
	}
	m.registry.MustRegister(m.merges, m.errors, m.duration)
	m.registry.MustRegister(collectors.NewGoCollector())
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
