package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexanderramin/gardener/internal/responder"
)

// Metrics provides observability for question resolution and the HTTP API.
type Metrics struct {
	registry *prometheus.Registry

	// Resolutions by source (knowledge, synonym, fallback) and verdict
	Resolutions *prometheus.CounterVec

	// Synonym triggers seen, by trigger phrase
	SynonymTriggers *prometheus.CounterVec

	ResolveLatency prometheus.Histogram

	// Rejected questions (empty input) by surface
	Rejected *prometheus.CounterVec
}

// New creates a Metrics instance registered on its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		Resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gardener_resolutions_total",
			Help: "Total resolved questions by source and verdict",
		}, []string{"source", "verdict"}),

		SynonymTriggers: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gardener_synonym_triggers_total",
			Help: "Questions that contained a synonym trigger, by trigger",
		}, []string{"trigger"}),

		ResolveLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gardener_resolve_duration_seconds",
			Help:    "Duration of a single question resolution",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),

		Rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gardener_rejected_questions_total",
			Help: "Questions rejected before resolution, by surface",
		}, []string{"surface"}),
	}
}

// ObserveResolution implements responder.Observer.
func (m *Metrics) ObserveResolution(_ context.Context, event responder.ResolutionEvent) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(string(event.Source), string(event.Verdict)).Inc()
	if event.Trigger != "" {
		m.SynonymTriggers.WithLabelValues(event.Trigger).Inc()
	}
	m.ResolveLatency.Observe(event.Duration.Seconds())
}

// IncrementRejected records an input refused by the empty-question guard.
func (m *Metrics) IncrementRejected(surface string) {
	if m != nil {
		m.Rejected.WithLabelValues(surface).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
