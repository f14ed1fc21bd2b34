package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	registry *prometheus.Registry
	actions  *prometheus.CounterVec
}

// newMetrics builds a dedicated registry so tests can construct servers
// without colliding on the default global one.
func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "summarizer_actions_total",
		Help: "Summarization actions by input kind and outcome.",
	}, []string{"kind", "outcome"})
	registry.MustRegister(actions)

	return &metrics{
		registry: registry,
		actions:  actions,
	}
}

func (m *metrics) observe(kind, outcome string) {
	m.actions.WithLabelValues(kind, outcome).Inc()
}
