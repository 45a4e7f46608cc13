package asset

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counting materializes "asset:<key>" strings and records disposals.
type counting struct {
	created  int
	disposed []string
	fail     map[string]bool
}

func (c *counting) Materialize(key string) (string, error) {
	if c.fail[key] {
		return "", errors.New("no such thing")
	}
	c.created++
	return "asset:" + key, nil
}

func (c *counting) Dispose(a string) { c.disposed = append(c.disposed, a) }

func TestGetOrCreateSharesHandles(t *testing.T) {
	m := &counting{}
	s := New[string, string](m)

	a, err := s.GetOrCreate("oak")
	require.NoError(t, err)
	b, err := s.GetOrCreate("oak")
	require.NoError(t, err)
	c, err := s.GetOrCreate("pine")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, "asset:oak", a.Asset())
	assert.Equal(t, 2, a.Refs())
	assert.Equal(t, 2, m.created)
	assert.Equal(t, Stats{Hits: 1, Misses: 2, Live: 2}, s.Stats())
}

func TestCleanUnused(t *testing.T) {
	m := &counting{}
	s := New[string, string](m)

	a, err := s.GetOrCreate("oak")
	require.NoError(t, err)
	b, err := s.GetOrCreate("pine")
	require.NoError(t, err)

	assert.Equal(t, 0, s.CleanUnused(), "everything is referenced")

	b.Release()
	assert.True(t, b.Live(), "released assets stay cached until swept")
	assert.Equal(t, 1, s.CleanUnused())
	assert.False(t, b.Live())
	assert.Equal(t, []string{"asset:pine"}, m.disposed)
	assert.Equal(t, 1, s.Len())

	_, ok := s.Get("pine")
	assert.False(t, ok)
	got, ok := s.Get("oak")
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.Equal(t, 1, a.Refs(), "Get does not retain")

	again, err := s.GetOrCreate("pine")
	require.NoError(t, err)
	assert.NotSame(t, b, again)
	assert.Equal(t, 3, m.created)
	assert.Equal(t, uint64(1), s.Stats().Evictions)
}

func TestReleaseTooOftenPanics(t *testing.T) {
	s := New[string, string](&counting{})
	h, err := s.GetOrCreate("oak")
	require.NoError(t, err)
	h.Retain()
	h.Release()
	h.Release()
	assert.Panics(t, h.Release)
}

func TestInsertKeepsExisting(t *testing.T) {
	m := &counting{}
	s := New[string, string](m)

	first := s.Insert("oak", "prebuilt")
	second := s.Insert("oak", "duplicate")
	assert.Same(t, first, second)
	assert.Equal(t, "prebuilt", second.Asset())
	assert.Equal(t, 2, first.Refs())
	assert.Equal(t, []string{"duplicate"}, m.disposed)
	assert.Equal(t, 0, m.created)
}

func TestMaterializeFailure(t *testing.T) {
	m := &counting{fail: map[string]bool{"unobtainium": true}}
	s := New[string, string](m)

	_, err := s.GetOrCreate("unobtainium")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such thing")
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, uint64(1), s.Stats().Failures)
}

func TestFuncs(t *testing.T) {
	var disposed []int
	s := New[int, int](Funcs[int, int]{
		Create:  func(k int) (int, error) { return k * k, nil },
		Destroy: func(a int) { disposed = append(disposed, a) },
	})
	h, err := s.GetOrCreate(7)
	require.NoError(t, err)
	assert.Equal(t, 49, h.Asset())
	h.Release()
	s.CleanUnused()
	assert.Equal(t, []int{49}, disposed)

	Funcs[int, int]{}.Dispose(1)
}

func metricValue(t *testing.T, reg *prometheus.Registry, name, store string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "store" && lp.GetValue() == store {
					if m.GetCounter() != nil {
						return m.GetCounter().GetValue()
					}
					return m.GetGauge().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric %s{store=%q} not found", name, store)
	return 0
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := New[string, string](&counting{}, WithMetrics(reg), WithName("woods"))

	for i := 0; i < 3; i++ {
		h, err := s.GetOrCreate(fmt.Sprintf("board-%d", i%2))
		require.NoError(t, err)
		h.Release()
	}
	assert.Equal(t, 1.0, metricValue(t, reg, "stockyard_asset_hits_total", "woods"))
	assert.Equal(t, 2.0, metricValue(t, reg, "stockyard_asset_misses_total", "woods"))
	assert.Equal(t, 2.0, metricValue(t, reg, "stockyard_asset_live", "woods"))

	s.CleanUnused()
	assert.Equal(t, 2.0, metricValue(t, reg, "stockyard_asset_evictions_total", "woods"))
	assert.Equal(t, 0.0, metricValue(t, reg, "stockyard_asset_live", "woods"))

	// A second store with the same name shares the registered collectors.
	again := New[string, string](&counting{}, WithMetrics(reg), WithName("woods"), WithNamespace(""))
	_, err := again.GetOrCreate("x")
	require.NoError(t, err)
	assert.Equal(t, 3.0, metricValue(t, reg, "stockyard_asset_misses_total", "woods"))
}
