// Package metric manages prometheus metrics for knowledge graph build runs.
package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/TTa77/PheKnowLator/errors"
)

// Registrar is the interface build components use to register their
// metrics without coupling to the registry implementation.
type Registrar interface {
	RegisterCounter(component, name string, counter prometheus.Counter) error
	RegisterGauge(component, name string, gauge prometheus.Gauge) error
	RegisterHistogram(component, name string, histogram prometheus.Histogram) error
	RegisterHistogramVec(component, name string, vec *prometheus.HistogramVec) error
	Unregister(component, name string) bool
}

// Registry manages the registration and lifecycle of build metrics.
type Registry struct {
	prom       *prometheus.Registry
	Build      *BuildMetrics
	registered map[string]prometheus.Collector
	mu         sync.RWMutex
}

// NewRegistry creates a registry with the core build metrics installed.
func NewRegistry() *Registry {
	r := &Registry{
		prom:       prometheus.NewRegistry(),
		registered: make(map[string]prometheus.Collector),
	}
	r.Build = newBuildMetrics()
	r.prom.MustRegister(
		r.Build.OntologiesLoaded,
		r.Build.TriplesMerged,
		r.Build.SelfLoopsRemoved,
		r.Build.AnnotationTriples,
		r.Build.BuildDuration,
	)
	return r
}

// PrometheusRegistry returns the underlying prometheus registry, e.g. for
// gathering in tests or exposition by a caller-owned handler.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prom
}

func (r *Registry) register(component, name string, c prometheus.Collector, op string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", component, name)
	if _, exists := r.registered[key]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("metric %s already registered for %s", name, component),
			"metric", op, "duplicate metric registration")
	}
	if err := r.prom.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if stderrors.As(err, &already) {
			return errors.WrapInvalid(err, "metric", op,
				fmt.Sprintf("prometheus conflict for metric %s", name))
		}
		return errors.WrapIO(err, "metric", op, "register collector with prometheus")
	}
	r.registered[key] = c
	return nil
}

// RegisterCounter registers a counter metric for a component.
func (r *Registry) RegisterCounter(component, name string, counter prometheus.Counter) error {
	return r.register(component, name, counter, "RegisterCounter")
}

// RegisterGauge registers a gauge metric for a component.
func (r *Registry) RegisterGauge(component, name string, gauge prometheus.Gauge) error {
	return r.register(component, name, gauge, "RegisterGauge")
}

// RegisterHistogram registers a histogram metric for a component.
func (r *Registry) RegisterHistogram(component, name string, histogram prometheus.Histogram) error {
	return r.register(component, name, histogram, "RegisterHistogram")
}

// RegisterHistogramVec registers a histogram vector for a component.
func (r *Registry) RegisterHistogramVec(component, name string, vec *prometheus.HistogramVec) error {
	return r.register(component, name, vec, "RegisterHistogramVec")
}

// Unregister removes a component metric. Returns true if it was present.
func (r *Registry) Unregister(component, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", component, name)
	c, exists := r.registered[key]
	if !exists {
		return false
	}
	delete(r.registered, key)
	return r.prom.Unregister(c)
}

// BuildMetrics are the core metrics every build run updates.
type BuildMetrics struct {
	OntologiesLoaded  prometheus.Counter
	TriplesMerged     prometheus.Counter
	SelfLoopsRemoved  prometheus.Counter
	AnnotationTriples prometheus.Counter
	BuildDuration     prometheus.Histogram
}

func newBuildMetrics() *BuildMetrics {
	return &BuildMetrics{
		OntologiesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kg_ontologies_loaded_total",
			Help: "Total source ontology files parsed",
		}),
		TriplesMerged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kg_triples_merged_total",
			Help: "Total triples merged into the working graph",
		}),
		SelfLoopsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kg_self_loops_removed_total",
			Help: "Total self-loop triples removed during normalization",
		}),
		AnnotationTriples: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kg_annotation_triples_total",
			Help: "Total triples routed to the annotation subgraph",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "kg_build_duration_seconds",
			Help:    "End-to-end build run duration",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900},
		}),
	}
}
