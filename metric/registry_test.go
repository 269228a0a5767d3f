package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TTa77/PheKnowLator/errors"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r.Build)

	r.Build.OntologiesLoaded.Inc()
	r.Build.TriplesMerged.Add(100)
	r.Build.BuildDuration.Observe(1.5)

	families, err := r.PrometheusRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["kg_ontologies_loaded_total"])
	assert.True(t, names["kg_triples_merged_total"])
	assert.True(t, names["kg_self_loops_removed_total"])
	assert.True(t, names["kg_annotation_triples_total"])
	assert.True(t, names["kg_build_duration_seconds"])
}

func TestRegisterCounter(t *testing.T) {
	r := NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "loader_files_total",
		Help: "Files loaded",
	})

	require.NoError(t, r.RegisterCounter("loader", "loader_files_total", counter))
	counter.Add(3)

	families, err := r.PrometheusRegistry().Gather()
	require.NoError(t, err)
	found := false
	for _, f := range families {
		if f.GetName() == "loader_files_total" {
			found = true
			assert.Equal(t, 3.0, f.GetMetric()[0].GetCounter().GetValue())
		}
	}
	assert.True(t, found)
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "dup_total", Help: "x"})

	require.NoError(t, r.RegisterCounter("c", "dup_total", counter))
	err := r.RegisterCounter("c", "dup_total", counter)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestRegisterPrometheusConflict(t *testing.T) {
	r := NewRegistry()
	a := prometheus.NewCounter(prometheus.CounterOpts{Name: "conflict_total", Help: "x"})
	b := prometheus.NewGauge(prometheus.GaugeOpts{Name: "conflict_total", Help: "x"})

	require.NoError(t, r.RegisterCounter("one", "conflict_total", a))
	err := r.RegisterGauge("two", "conflict_total", b)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestRegisterKinds(t *testing.T) {
	r := NewRegistry()

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "g_nodes", Help: "x"})
	assert.NoError(t, r.RegisterGauge("g", "g_nodes", gauge))

	hist := prometheus.NewHistogram(prometheus.HistogramOpts{Name: "h_seconds", Help: "x"})
	assert.NoError(t, r.RegisterHistogram("h", "h_seconds", hist))

	vec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "hv_seconds", Help: "x"}, []string{"stage"})
	assert.NoError(t, r.RegisterHistogramVec("hv", "hv_seconds", vec))
}

func TestUnregister(t *testing.T) {
	r := NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "tmp_total", Help: "x"})
	require.NoError(t, r.RegisterCounter("c", "tmp_total", counter))

	assert.True(t, r.Unregister("c", "tmp_total"))
	assert.False(t, r.Unregister("c", "tmp_total"), "second unregister reports absence")

	// The name is free for reuse after unregistering.
	again := prometheus.NewCounter(prometheus.CounterOpts{Name: "tmp_total", Help: "x"})
	assert.NoError(t, r.RegisterCounter("c", "tmp_total", again))
}
