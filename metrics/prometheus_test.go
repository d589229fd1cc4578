package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusProvider_Instruments(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheusProvider(reg, "")

	c := p.Counter(ItemsCompleted, WithDescription("Items transformed successfully."))
	c.Add(3)
	c.Add(-1) // ignored
	p.Counter(ItemsCompleted).Add(2)

	g := p.UpDownCounter(ItemsInflight)
	g.Add(4)
	g.Add(-3)

	h := p.Histogram(ItemDuration)
	h.Record(0.2)
	h.Record(0.4)

	require.Equal(t, 5.0, testutil.ToFloat64(p.counters[ItemsCompleted]))
	require.Equal(t, 1.0, testutil.ToFloat64(p.gauges[ItemsInflight]))

	expected := `
# HELP pmap_items_completed_total Items transformed successfully.
# TYPE pmap_items_completed_total counter
pmap_items_completed_total 5
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "pmap_items_completed_total"))

	n, err := testutil.GatherAndCount(reg, "pmap_item_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestPrometheusProvider_SharedRegistryReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := NewPrometheusProvider(reg, "squares")
	b := NewPrometheusProvider(reg, "squares")

	a.Counter(ItemsDispatched).Add(1)
	b.Counter(ItemsDispatched).Add(1)

	require.Equal(t, 2.0, testutil.ToFloat64(a.counters[ItemsDispatched]))
	require.Same(t, a.counters[ItemsDispatched], b.counters[ItemsDispatched])
}

func TestPrometheusProvider_ConstLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheusProvider(reg, "pmap")
	p.Counter(ItemsFailed, WithAttributes(map[string]string{"app": "squares"})).Add(1)

	expected := `
# HELP pmap_items_failed_total items_failed_total
# TYPE pmap_items_failed_total counter
pmap_items_failed_total{app="squares"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "pmap_items_failed_total"))
}

func TestPrometheusProvider_ConflictingRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pmap",
		Name:      ItemsCompleted,
		Help:      "registered elsewhere with another help string",
	}))

	p := NewPrometheusProvider(reg, "pmap")
	require.Panics(t, func() { p.Counter(ItemsCompleted) })
	require.Empty(t, p.counters)
}
