package rdf

import (
	"iter"
	"sort"
)

// Graph is an in-memory set of triples. Insertion order is irrelevant for
// correctness; callers needing reproducible output iterate with
// SortedTriples, which fixes a deterministic order.
//
// A Graph is owned exclusively by its caller: no engine component retains a
// reference to one after returning, and no operation here is safe for
// concurrent mutation without external synchronization.
type Graph struct {
	triples map[Triple]struct{}
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{triples: make(map[Triple]struct{})}
}

// Add inserts triples into the graph. Adding a triple that is already
// present is a no-op, so Add is idempotent.
func (g *Graph) Add(triples ...Triple) {
	for _, t := range triples {
		g.triples[t] = struct{}{}
	}
}

// Remove deletes triples from the graph. Removing an absent triple is a
// no-op, so Remove is idempotent.
func (g *Graph) Remove(triples ...Triple) {
	for _, t := range triples {
		delete(g.triples, t)
	}
}

// Has reports whether the graph contains the given triple.
func (g *Graph) Has(t Triple) bool {
	_, ok := g.triples[t]
	return ok
}

// ContainsNode reports whether the term appears as the subject or object of
// any triple in the graph. Predicate-only appearances do not count: the
// predicate is an edge label, not a node.
func (g *Graph) ContainsNode(term Term) bool {
	for t := range g.triples {
		if t.Subject == term || t.Object == term {
			return true
		}
	}
	return false
}

// Len returns the number of distinct triples in the graph.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns a lazy, restartable sequence over the current contents.
// Order is unspecified; use SortedTriples when determinism matters.
func (g *Graph) Triples() iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for t := range g.triples {
			if !yield(t) {
				return
			}
		}
	}
}

// SortedTriples returns the graph's triples ordered lexicographically by
// their canonical N-Triples form. This is the fixed ordering used for
// serialization and for the deterministic first-seen walk of the integer
// mapper.
func (g *Graph) SortedTriples() []Triple {
	out := make([]Triple, 0, len(g.triples))
	for t := range g.triples {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// Nodes returns every distinct term appearing in a subject or object
// position, ordered by serialized form for determinism.
func (g *Graph) Nodes() []Term {
	seen := make(map[Term]struct{})
	for t := range g.triples {
		seen[t.Subject] = struct{}{}
		seen[t.Object] = struct{}{}
	}
	out := make([]Term, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return SerializeTerm(out[i]) < SerializeTerm(out[j])
	})
	return out
}

// Predicates returns every distinct predicate IRI in the graph, sorted.
func (g *Graph) Predicates() []IRI {
	seen := make(map[IRI]struct{})
	for t := range g.triples {
		if p, ok := t.Predicate.(IRI); ok {
			seen[p] = struct{}{}
		}
	}
	out := make([]IRI, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Subjects returns the distinct subjects of triples matching the given
// predicate and object. A nil predicate or object matches anything.
func (g *Graph) Subjects(predicate, object Term) []Term {
	seen := make(map[Term]struct{})
	for t := range g.triples {
		if predicate != nil && t.Predicate != predicate {
			continue
		}
		if object != nil && t.Object != object {
			continue
		}
		seen[t.Subject] = struct{}{}
	}
	out := make([]Term, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return SerializeTerm(out[i]) < SerializeTerm(out[j])
	})
	return out
}

// Objects returns the distinct objects of triples matching the given subject
// and predicate. A nil subject or predicate matches anything.
func (g *Graph) Objects(subject, predicate Term) []Term {
	seen := make(map[Term]struct{})
	for t := range g.triples {
		if subject != nil && t.Subject != subject {
			continue
		}
		if predicate != nil && t.Predicate != predicate {
			continue
		}
		seen[t.Object] = struct{}{}
	}
	out := make([]Term, 0, len(seen))
	for o := range seen {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		return SerializeTerm(out[i]) < SerializeTerm(out[j])
	})
	return out
}

// Clone returns an independent copy of the graph.
func (g *Graph) Clone() *Graph {
	out := &Graph{triples: make(map[Triple]struct{}, len(g.triples))}
	for t := range g.triples {
		out.triples[t] = struct{}{}
	}
	return out
}
