// Package asset caches host assets materialized from renderable
// descriptions. A Store maps a content key (a shape or material value) to a
// reference-counted Handle; equal keys share one asset. Assets whose handles
// have all been released stay cached until CleanUnused evicts them, which a
// host typically calls once per frame or after swapping scenes.
package asset

import (
	"fmt"
	"log/slog"

	"github.com/chazu/stockyard/internal/logging"
)

// Materializer creates host assets from keys and disposes of them when they
// are evicted.
type Materializer[K comparable, A any] interface {
	Materialize(key K) (A, error)
	Dispose(asset A)
}

// Funcs adapts a pair of functions to the Materializer interface. A nil
// Destroy disposes of nothing.
type Funcs[K comparable, A any] struct {
	Create  func(K) (A, error)
	Destroy func(A)
}

func (f Funcs[K, A]) Materialize(key K) (A, error) { return f.Create(key) }

func (f Funcs[K, A]) Dispose(asset A) {
	if f.Destroy != nil {
		f.Destroy(asset)
	}
}

// Handle is a counted reference to a cached asset. Every handle returned by
// a Store has been retained once on behalf of the caller, who must Release
// it when done.
type Handle[A any] struct {
	asset   A
	refs    int
	evicted bool
}

// Asset returns the cached asset.
func (h *Handle[A]) Asset() A { return h.asset }

// Retain adds a reference and returns h.
func (h *Handle[A]) Retain() *Handle[A] {
	h.refs++
	return h
}

// Release drops a reference. Releasing more often than retaining panics.
func (h *Handle[A]) Release() {
	if h.refs <= 0 {
		panic("asset: handle released more times than retained")
	}
	h.refs--
}

// Refs returns the number of outstanding references.
func (h *Handle[A]) Refs() int { return h.refs }

// Live reports whether the asset is still cached. An evicted asset has been
// disposed and must not be used.
func (h *Handle[A]) Live() bool { return !h.evicted }

// Stats summarizes the activity of a Store.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Failures  uint64
	Live      int
}

// Store caches assets by key. It is not safe for concurrent use.
type Store[K comparable, A any] struct {
	materializer Materializer[K, A]
	entries      map[K]*Handle[A]
	name         string
	logger       *slog.Logger
	metrics      *metrics
	stats        Stats
}

// New returns an empty Store backed by m.
func New[K comparable, A any](m Materializer[K, A], opts ...Option) *Store[K, A] {
	cfg := newConfig(opts)
	s := &Store[K, A]{
		materializer: m,
		entries:      make(map[K]*Handle[A]),
		name:         cfg.name,
		logger:       logging.OrNop(cfg.logger).With("store", cfg.name),
	}
	if cfg.registerer != nil {
		s.metrics = newMetrics(cfg.registerer, cfg.namespace, cfg.name)
	}
	return s
}

// GetOrCreate returns the handle for key, materializing the asset on first
// use. The handle is retained for the caller.
func (s *Store[K, A]) GetOrCreate(key K) (*Handle[A], error) {
	if h, ok := s.entries[key]; ok {
		s.stats.Hits++
		s.metrics.hit()
		return h.Retain(), nil
	}
	s.stats.Misses++
	s.metrics.miss()

	a, err := s.materializer.Materialize(key)
	if err != nil {
		s.stats.Failures++
		s.metrics.failure()
		return nil, fmt.Errorf("asset: %s: materialize %v: %w", s.name, key, err)
	}
	s.logger.Debug("asset materialized", "key", key)
	return s.store(key, a), nil
}

// Insert caches a for key. When key is already cached the existing handle
// wins and a is disposed. The returned handle is retained for the caller.
func (s *Store[K, A]) Insert(key K, a A) *Handle[A] {
	if h, ok := s.entries[key]; ok {
		s.materializer.Dispose(a)
		return h.Retain()
	}
	return s.store(key, a)
}

func (s *Store[K, A]) store(key K, a A) *Handle[A] {
	h := &Handle[A]{asset: a, refs: 1}
	s.entries[key] = h
	s.metrics.setLive(len(s.entries))
	return h
}

// Get returns the cached handle for key without retaining it.
func (s *Store[K, A]) Get(key K) (*Handle[A], bool) {
	h, ok := s.entries[key]
	return h, ok
}

// CleanUnused evicts and disposes every asset with no outstanding
// references. It returns the number of evicted assets.
func (s *Store[K, A]) CleanUnused() int {
	n := 0
	for key, h := range s.entries {
		if h.refs > 0 {
			continue
		}
		delete(s.entries, key)
		h.evicted = true
		s.materializer.Dispose(h.asset)
		n++
		s.logger.Debug("asset evicted", "key", key)
	}
	if n > 0 {
		s.stats.Evictions += uint64(n)
		s.metrics.evict(n)
		s.metrics.setLive(len(s.entries))
	}
	return n
}

// Len returns the number of cached assets.
func (s *Store[K, A]) Len() int { return len(s.entries) }

func (s *Store[K, A]) Stats() Stats {
	st := s.stats
	st.Live = len(s.entries)
	return st
}

// Name returns the name the store reports in logs and metrics.
func (s *Store[K, A]) Name() string { return s.name }
