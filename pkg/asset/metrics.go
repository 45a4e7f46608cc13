package asset

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics mirrors Stats into prometheus. A nil *metrics records nothing.
type metrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
	failures  prometheus.Counter
	live      prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer, namespace, store string) *metrics {
	labels := prometheus.Labels{"store": store}
	counter := func(name, help string) prometheus.Counter {
		return register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "asset",
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		}))
	}
	return &metrics{
		hits:      counter("hits_total", "Lookups served from the cache."),
		misses:    counter("misses_total", "Lookups that materialized a new asset."),
		evictions: counter("evictions_total", "Assets disposed by CleanUnused."),
		failures:  counter("failures_total", "Materializations that returned an error."),
		live: register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "asset",
			Name:        "live",
			Help:        "Assets currently cached.",
			ConstLabels: labels,
		})),
	}
}

// register adds c to reg, reusing an identical collector that is already
// registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}

func (m *metrics) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *metrics) miss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *metrics) failure() {
	if m != nil {
		m.failures.Inc()
	}
}

func (m *metrics) evict(n int) {
	if m != nil {
		m.evictions.Add(float64(n))
	}
}

func (m *metrics) setLive(n int) {
	if m != nil {
		m.live.Set(float64(n))
	}
}
