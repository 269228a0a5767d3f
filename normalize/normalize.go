// Package normalize implements the graph normalization steps: merging
// source graphs with deduplication, self-loop removal, the structural vs
// annotation split, bulk edge mutation, and incremental N-Triples append.
package normalize

import (
	"os"

	"github.com/TTa77/PheKnowLator/errors"
	"github.com/TTa77/PheKnowLator/rdf"
	"github.com/TTa77/PheKnowLator/vocabulary"
)

// Merge unions the triples of every source graph into dst with
// exact-duplicate elimination. Near-duplicates that differ only in
// blank-node identity are NOT collapsed; blank nodes are graph-local and
// carry no cross-graph lineage.
func Merge(dst *rdf.Graph, srcs ...*rdf.Graph) {
	for _, src := range srcs {
		if src == nil {
			continue
		}
		for t := range src.Triples() {
			dst.Add(t)
		}
	}
}

// RemoveSelfLoops removes every triple whose subject equals its object and
// returns the removed triples in deterministic order. A graph with no
// self-loops returns an empty slice.
func RemoveSelfLoops(g *rdf.Graph) []rdf.Triple {
	loops := []rdf.Triple{}
	for _, t := range g.SortedTriples() {
		if t.IsSelfLoop() {
			loops = append(loops, t)
		}
	}
	g.Remove(loops...)
	return loops
}

// Split partitions a graph into a structural subgraph usable for graph
// algorithms and an annotation subgraph of metadata-only triples (labels,
// comments, synonyms, provenance). Membership is decided by the vocabulary
// registry: triples with a registered annotation predicate land in the
// annotation subgraph, everything else in the structural one.
//
// The two subgraphs' triple sets are disjoint and their union equals the
// input graph's triple set.
func Split(g *rdf.Graph) (structural, annotation *rdf.Graph) {
	structural = rdf.NewGraph()
	annotation = rdf.NewGraph()
	for t := range g.Triples() {
		p, ok := t.Predicate.(rdf.IRI)
		if ok && vocabulary.IsAnnotation(p) {
			annotation.Add(t)
			continue
		}
		structural.Add(t)
	}
	return structural, annotation
}

// AddEdges bulk-inserts triples into the graph. Insertion is idempotent;
// pre-existing triples are no-ops. The graph is returned for chaining.
func AddEdges(g *rdf.Graph, edges []rdf.Triple) *rdf.Graph {
	g.Add(edges...)
	return g
}

// RemoveEdges bulk-deletes triples from the graph. Removing absent triples
// is a no-op.
func RemoveEdges(g *rdf.Graph, edges []rdf.Triple) *rdf.Graph {
	g.Remove(edges...)
	return g
}

// UpdateGraphNamespace asserts the source OBO namespace of a class,
// recording namespace provenance when ontologies are merged.
func UpdateGraphNamespace(namespace string, g *rdf.Graph, class rdf.IRI) *rdf.Graph {
	g.Add(rdf.Triple{
		Subject:   class,
		Predicate: vocabulary.OboHasOBONamespace,
		Object:    rdf.NewLiteral(namespace),
	})
	return g
}

// AppendToFile serializes one triple in canonical N-Triples form and
// appends it to an existing file without reparsing the file. This is the
// one legitimate incremental-write path in the engine; every other artifact
// is written temp-then-rename.
func AppendToFile(edge rdf.Triple, filepath, delimiter string) error {
	f, err := os.OpenFile(filepath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.WrapNotFound(
				errors.ErrFileNotFound, "normalize", "AppendToFile", "open "+filepath)
		}
		return errors.WrapIO(err, "normalize", "AppendToFile", "open "+filepath)
	}
	defer f.Close()

	line := rdf.SerializeTriple(edge, delimiter) + "\n"
	if _, err := f.WriteString(line); err != nil {
		return errors.WrapIO(err, "normalize", "AppendToFile", "append statement")
	}
	return nil
}
