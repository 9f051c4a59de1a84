package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "designfolio"

// Metrics owns the process collectors. Nil receivers are valid and record
// nothing, so packages can run without metrics in tests.
type Metrics struct {
	registry  *prometheus.Registry
	mutations *prometheus.CounterVec
	uploads   *prometheus.CounterVec
	contact   *prometheus.CounterVec
	pageCache *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_mutations_total",
			Help:      "Content mutations by section, operation and outcome.",
		}, []string{"section", "operation", "outcome"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_operations_total",
			Help:      "Object storage uploads and deletes by outcome.",
		}, []string{"operation", "outcome"}),
		contact: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_messages_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"outcome"}),
		pageCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_cache_lookups_total",
			Help:      "Public page cache lookups by result.",
		}, []string{"result"}),
	}
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.mutations,
		m.uploads,
		m.contact,
		m.pageCache,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Mutation counts a content mutation.
func (m *Metrics) Mutation(section, operation string, ok bool) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(section, operation, outcome(ok)).Inc()
}

// Storage counts an upload or delete.
func (m *Metrics) Storage(operation string, ok bool) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(operation, outcome(ok)).Inc()
}

// Contact counts a contact submission. Outcome is free-form, e.g. "sent",
// "invalid", "limited" or "failed".
func (m *Metrics) Contact(result string) {
	if m == nil {
		return
	}
	m.contact.WithLabelValues(result).Inc()
}

// PageCache counts a cache lookup.
func (m *Metrics) PageCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.pageCache.WithLabelValues(result).Inc()
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
