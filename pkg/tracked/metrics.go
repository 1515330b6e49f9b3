package tracked

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts memo outcomes, labelled by memo name.
type Metrics struct {
	hits       *prometheus.CounterVec
	recomputes *prometheus.CounterVec
	errors     *prometheus.CounterVec
}

// NewMetrics creates the memo counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "versiontag",
			Subsystem: "memo",
			Name:      "hits_total",
			Help:      "Memo reads served from the cached value.",
		}, []string{"memo"}),
		recomputes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "versiontag",
			Subsystem: "memo",
			Name:      "recomputes_total",
			Help:      "Memo reads that found a changed dependency and recomputed.",
		}, []string{"memo"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "versiontag",
			Subsystem: "memo",
			Name:      "errors_total",
			Help:      "Memo recomputations that returned an error.",
		}, []string{"memo"}),
	}

	for _, c := range []prometheus.Collector{m.hits, m.recomputes, m.errors} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register memo metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) hit(name string) {
	if m != nil {
		m.hits.WithLabelValues(name).Inc()
	}
}

func (m *Metrics) recomputed(name string) {
	if m != nil {
		m.recomputes.WithLabelValues(name).Inc()
	}
}

func (m *Metrics) failed(name string) {
	if m != nil {
		m.errors.WithLabelValues(name).Inc()
	}
}
