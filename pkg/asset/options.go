package asset

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes metric names.
const DefaultNamespace = "stockyard"

type config struct {
	name       string
	logger     *slog.Logger
	registerer prometheus.Registerer
	namespace  string
}

func newConfig(opts []Option) config {
	cfg := config{name: "assets", namespace: DefaultNamespace}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a Store.
type Option func(*config)

// WithName sets the name the store reports in logs and metrics.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger sets the logger. Cache misses and evictions are logged at
// debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetrics registers the store's counters with reg, labeled with the
// store name.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *config) { c.registerer = reg }
}

// WithNamespace overrides DefaultNamespace for metric names.
func WithNamespace(ns string) Option {
	return func(c *config) {
		if ns != "" {
			c.namespace = ns
		}
	}
}
