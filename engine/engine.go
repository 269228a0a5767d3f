// Package engine orchestrates a knowledge graph build run: loading source
// ontologies, merging and normalizing the working graph, deriving the
// adjacency multigraph and its analyses, and writing the persisted
// artifacts.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/TTa77/PheKnowLator/analysis"
	"github.com/TTa77/PheKnowLator/config"
	"github.com/TTa77/PheKnowLator/errors"
	"github.com/TTa77/PheKnowLator/intmap"
	"github.com/TTa77/PheKnowLator/metric"
	"github.com/TTa77/PheKnowLator/multigraph"
	"github.com/TTa77/PheKnowLator/normalize"
	"github.com/TTa77/PheKnowLator/owltool"
	"github.com/TTa77/PheKnowLator/pkg/worker"
	"github.com/TTa77/PheKnowLator/rdf"
	"github.com/TTa77/PheKnowLator/stats"
)

// loadTimeout bounds how long the loader pool may take to drain after all
// paths are submitted.
const loadTimeout = 30 * time.Minute

// Builder runs the construction pipeline. A Builder owns its working graph
// exclusively for the duration of Run; the graph algorithms themselves are
// single-threaded, only file parsing fans out.
type Builder struct {
	cfg       *config.Config
	formatter owltool.Formatter
	metrics   *metric.Registry
	logger    *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithFormatter supplies the external merge/format tool. When present, the
// source ontologies are merged by the tool (with import closure) instead of
// in memory.
func WithFormatter(f owltool.Formatter) Option {
	return func(b *Builder) {
		b.formatter = f
	}
}

// WithMetrics supplies the metrics registry updated during the run.
func WithMetrics(m *metric.Registry) Option {
	return func(b *Builder) {
		b.metrics = m
	}
}

// WithLogger supplies the structured logger. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// NewBuilder validates the configuration and creates a Builder.
func NewBuilder(cfg *config.Config, opts ...Option) (*Builder, error) {
	if cfg == nil {
		return nil, errors.WrapInvalid(
			errors.ErrMissingConfig, "engine", "NewBuilder", "check configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Builder{cfg: cfg, logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Result collects everything a build run produces.
type Result struct {
	// Graph is the merged, de-duplicated working graph after self-loop
	// removal.
	Graph *rdf.Graph

	// Structural and Annotation are the disjoint split of Graph.
	Structural *rdf.Graph
	Annotation *rdf.Graph

	// Multigraph is the adjacency form derived from Structural.
	Multigraph *multigraph.Graph

	// Components is the weakly-connected partition of Multigraph.
	Components [][]rdf.Term

	// SelfLoops holds the triples removed during normalization.
	SelfLoops []rdf.Triple

	// Statistics is the formatted summary over the working graph.
	Statistics string

	// IdentifierMap is the node-identifier to integer bijection.
	IdentifierMap map[string]int
}

// Run executes the pipeline: load -> merge -> normalize -> split -> derive
// multigraph -> analyze -> map identifiers -> persist artifacts.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	b.logger.Info("starting knowledge graph build",
		"ontologies", len(b.cfg.Ontologies),
		"write_location", b.cfg.WriteLocation)

	graph, err := b.loadAndMerge(ctx)
	if err != nil {
		return nil, err
	}
	b.logger.Info("merged source ontologies", "triples", graph.Len())
	if b.metrics != nil {
		b.metrics.Build.TriplesMerged.Add(float64(graph.Len()))
	}

	loops := normalize.RemoveSelfLoops(graph)
	if len(loops) > 0 {
		b.logger.Warn("removed self-loops", "count", len(loops))
	}
	if b.metrics != nil {
		b.metrics.Build.SelfLoopsRemoved.Add(float64(len(loops)))
	}

	structural, annotation := normalize.Split(graph)
	b.logger.Info("split knowledge graph",
		"structural_triples", structural.Len(),
		"annotation_triples", annotation.Len())
	if b.metrics != nil {
		b.metrics.Build.AnnotationTriples.Add(float64(annotation.Len()))
	}

	mg := multigraph.Build(structural)
	components := analysis.ConnectedComponents(mg)
	summary := stats.Derive(stats.GraphSource{G: graph})
	b.logger.Info("derived graph statistics",
		"summary", summary,
		"components", len(components))

	ids, err := intmap.MapNodeIDs(graph, b.cfg.WriteLocation,
		artifactName(b.cfg.MergedName, "_Triples_Integers.txt"),
		artifactName(b.cfg.MergedName, "_Triples_Integer_Identifier_Map.json"),
		intmapOptions(b.cfg)...)
	if err != nil {
		return nil, err
	}

	snapshotPath := b.cfg.WriteLocation + "/" + artifactName(b.cfg.MergedName, "_MultiDiGraph.json")
	if err := multigraph.Save(mg, snapshotPath); err != nil {
		return nil, err
	}

	if b.metrics != nil {
		b.metrics.Build.BuildDuration.Observe(time.Since(start).Seconds())
	}
	b.logger.Info("build complete",
		"duration", time.Since(start),
		"nodes_mapped", len(ids))

	return &Result{
		Graph:         graph,
		Structural:    structural,
		Annotation:    annotation,
		Multigraph:    mg,
		Components:    components,
		SelfLoops:     loops,
		Statistics:    summary,
		IdentifierMap: ids,
	}, nil
}

// loadAndMerge produces the merged working graph, via the external tool
// when one is configured, otherwise by concurrent parsing and in-memory
// union.
func (b *Builder) loadAndMerge(ctx context.Context) (*rdf.Graph, error) {
	if b.formatter != nil {
		merged, err := owltool.MergeAndLoad(ctx, b.formatter,
			b.cfg.Ontologies, b.cfg.WriteLocation, b.cfg.MergedName)
		if err != nil {
			return nil, err
		}
		if b.metrics != nil {
			b.metrics.Build.OntologiesLoaded.Add(float64(len(b.cfg.Ontologies)))
		}
		return merged, nil
	}

	var (
		mu       sync.Mutex
		graphs   []*rdf.Graph
		firstErr error
	)
	pool := worker.NewPool(b.cfg.LoaderWorkers, len(b.cfg.Ontologies),
		func(_ context.Context, path string) error {
			g, err := rdf.LoadGraph(path)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return err
			}
			graphs = append(graphs, g)
			if b.metrics != nil {
				b.metrics.Build.OntologiesLoaded.Inc()
			}
			b.logger.Debug("loaded ontology", "path", path, "triples", g.Len())
			return nil
		})

	if err := pool.Start(ctx); err != nil {
		return nil, errors.Wrap(err, "engine", "loadAndMerge", "start loader pool")
	}
	for _, path := range b.cfg.Ontologies {
		if err := pool.Submit(path); err != nil {
			pool.Stop(loadTimeout)
			return nil, errors.Wrap(err, "engine", "loadAndMerge", "submit "+path)
		}
	}
	if err := pool.Stop(loadTimeout); err != nil {
		return nil, errors.Wrap(err, "engine", "loadAndMerge", "drain loader pool")
	}

	if firstErr != nil {
		return nil, firstErr
	}

	merged := rdf.NewGraph()
	normalize.Merge(merged, graphs...)
	if merged.Len() == 0 {
		return nil, errors.WrapInvalid(
			errors.ErrEmptyGraph, "engine", "loadAndMerge", "validate merged graph")
	}
	return merged, nil
}

// artifactName derives an artifact filename from the merged ontology name.
func artifactName(mergedName, suffix string) string {
	base := mergedName
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			base = base[:i]
			break
		}
	}
	return fmt.Sprintf("%s%s", base, suffix)
}

func intmapOptions(cfg *config.Config) []intmap.Option {
	if cfg.MapPredicates {
		return nil
	}
	return []intmap.Option{intmap.WithRawPredicates()}
}
