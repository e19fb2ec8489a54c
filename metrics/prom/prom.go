// Package prom exports index cache activity of a wheelist as Prometheus metrics.
package prom

import (
	"github.com/djdv/go-wheelist"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements wheelist.Metrics and exports Prometheus counters/gauges.
// Safe for concurrent use; one adapter may serve many lists.
type Adapter struct {
	hits          prometheus.Counter
	misses        prometheus.Counter
	invalidations prometheus.Counter
	entries       prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "index_cache_hits_total",
			Help:        "Lookups served from the index cache",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "index_cache_misses_total",
			Help:        "Lookups that walked the list",
			ConstLabels: constLabels,
		}),
		invalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "index_cache_invalidations_total",
			Help:        "Index cache purges caused by structural changes",
			ConstLabels: constLabels,
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "index_cache_entries",
			Help:        "Memoized lookups of the most recently reporting list",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.invalidations, a.entries)
	return a
}

// Hit increments the hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the miss counter.
func (a *Adapter) Miss() { a.misses.Inc() }

// Invalidate increments the invalidation counter.
func (a *Adapter) Invalidate() { a.invalidations.Inc() }

// Size updates the cached entry gauge.
func (a *Adapter) Size(entries int) { a.entries.Set(float64(entries)) }

var _ wheelist.Metrics = (*Adapter)(nil)
