// Package multigraph converts a triple store into a directed multigraph
// keyed by (subject, object) with per-predicate edge metadata. This
// structure is the substrate for ancestor resolution, component analysis,
// and the adjacency-graph snapshot artifact.
package multigraph

import (
	"crypto/md5" //nolint:gosec // key derivation fixed by the snapshot format, not a security boundary
	"encoding/hex"
	"sort"

	"github.com/TTa77/PheKnowLator/rdf"
)

// EdgeRecord carries the metadata of one directed edge. Parallel predicates
// between the same (subject, object) pair are retained as separate records,
// never collapsed.
type EdgeRecord struct {
	Predicate    rdf.Term `json:"-"`
	PredicateKey string   `json:"predicate_key"`
	Weight       float64  `json:"weight"`
}

// Graph is a directed multigraph over RDF terms.
type Graph struct {
	adj   map[rdf.Term]map[rdf.Term][]EdgeRecord
	nodes map[rdf.Term]struct{}
	preds map[rdf.Term]struct{}
	edges int
}

// New creates an empty multigraph.
func New() *Graph {
	return &Graph{
		adj:   make(map[rdf.Term]map[rdf.Term][]EdgeRecord),
		nodes: make(map[rdf.Term]struct{}),
		preds: make(map[rdf.Term]struct{}),
	}
}

// Build converts a triple store into a directed multigraph: for every triple
// (s,p,o) an edge s->o keyed by p, carrying the md5-derived predicate key
// and a default weight of 0.0. Runs in O(number of triples) and never
// mutates the source graph.
func Build(src *rdf.Graph) *Graph {
	g := New()
	for t := range src.Triples() {
		g.AddEdge(t.Subject, t.Predicate, t.Object)
	}
	return g
}

// PredicateKey returns the stable hash identifying a predicate in edge
// metadata: the md5 hex digest of the raw predicate IRI.
func PredicateKey(predicate rdf.Term) string {
	sum := md5.Sum([]byte(predicate.Value())) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// AddEdge inserts a directed edge subject->object for the given predicate.
// The same predicate between the same pair is recorded once.
func (g *Graph) AddEdge(subject, predicate, object rdf.Term) {
	g.nodes[subject] = struct{}{}
	g.nodes[object] = struct{}{}
	g.preds[predicate] = struct{}{}

	out, ok := g.adj[subject]
	if !ok {
		out = make(map[rdf.Term][]EdgeRecord)
		g.adj[subject] = out
	}
	for _, rec := range out[object] {
		if rec.Predicate == predicate {
			return
		}
	}
	out[object] = append(out[object], EdgeRecord{
		Predicate:    predicate,
		PredicateKey: PredicateKey(predicate),
		Weight:       0.0,
	})
	g.edges++
}

// Edges returns the parallel edge records between subject and object, in
// insertion order. The result is nil when no edge exists.
func (g *Graph) Edges(subject, object rdf.Term) []EdgeRecord {
	return g.adj[subject][object]
}

// Out returns the distinct successor nodes of subject, sorted by serialized
// form for deterministic traversal.
func (g *Graph) Out(subject rdf.Term) []rdf.Term {
	out := g.adj[subject]
	if len(out) == 0 {
		return nil
	}
	nodes := make([]rdf.Term, 0, len(out))
	for o := range out {
		nodes = append(nodes, o)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return rdf.SerializeTerm(nodes[i]) < rdf.SerializeTerm(nodes[j])
	})
	return nodes
}

// OutVia returns the successors of subject reachable through the given
// predicate, sorted for deterministic traversal.
func (g *Graph) OutVia(subject, predicate rdf.Term) []rdf.Term {
	out := g.adj[subject]
	if len(out) == 0 {
		return nil
	}
	var nodes []rdf.Term
	for o, recs := range out {
		for _, rec := range recs {
			if rec.Predicate == predicate {
				nodes = append(nodes, o)
				break
			}
		}
	}
	sort.Slice(nodes, func(i, j int) bool {
		return rdf.SerializeTerm(nodes[i]) < rdf.SerializeTerm(nodes[j])
	})
	return nodes
}

// Nodes returns every node in the multigraph, sorted by serialized form.
func (g *Graph) Nodes() []rdf.Term {
	nodes := make([]rdf.Term, 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return rdf.SerializeTerm(nodes[i]) < rdf.SerializeTerm(nodes[j])
	})
	return nodes
}

// HasNode reports whether the term appears as a node in the multigraph.
func (g *Graph) HasNode(n rdf.Term) bool {
	_, ok := g.nodes[n]
	return ok
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of directed edges counting parallel
// predicates separately.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Predicates returns every distinct predicate term, sorted.
func (g *Graph) Predicates() []rdf.Term {
	preds := make([]rdf.Term, 0, len(g.preds))
	for p := range g.preds {
		preds = append(preds, p)
	}
	sort.Slice(preds, func(i, j int) bool {
		return rdf.SerializeTerm(preds[i]) < rdf.SerializeTerm(preds[j])
	})
	return preds
}

// visitEdges calls fn for every edge in deterministic order.
func (g *Graph) visitEdges(fn func(subject, object rdf.Term, rec EdgeRecord)) {
	subjects := make([]rdf.Term, 0, len(g.adj))
	for s := range g.adj {
		subjects = append(subjects, s)
	}
	sort.Slice(subjects, func(i, j int) bool {
		return rdf.SerializeTerm(subjects[i]) < rdf.SerializeTerm(subjects[j])
	})
	for _, s := range subjects {
		for _, o := range g.Out(s) {
			for _, rec := range g.adj[s][o] {
				fn(s, o, rec)
			}
		}
	}
}
