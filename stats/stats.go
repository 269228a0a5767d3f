// Package stats computes aggregate structural statistics over either the
// triple store or the derived multigraph, behind one counting capability.
package stats

import (
	"fmt"

	"github.com/TTa77/PheKnowLator/multigraph"
	"github.com/TTa77/PheKnowLator/rdf"
	"github.com/TTa77/PheKnowLator/vocabulary"
)

// Source is the counting capability the reporter needs. Both the raw triple
// store and the derived multigraph satisfy it through the adapters below,
// so Derive works uniformly over either form.
type Source interface {
	TripleCount() int
	NodeCount() int
	PredicateCount() int
	ClassCount() int
	IndividualCount() int
	ObjectPropertyCount() int
	AnnotationPropertyCount() int
}

// Derive computes the aggregate counts over a source and returns the
// formatted summary string.
func Derive(src Source) string {
	return fmt.Sprintf(
		"Graph Stats: %d triples, %d nodes, %d predicates, %d classes, %d individuals, "+
			"%d object properties, %d annotation properties",
		src.TripleCount(), src.NodeCount(), src.PredicateCount(), src.ClassCount(),
		src.IndividualCount(), src.ObjectPropertyCount(), src.AnnotationPropertyCount())
}

// GraphSource adapts a triple store to the counting capability.
type GraphSource struct {
	G *rdf.Graph
}

// TripleCount implements Source.
func (s GraphSource) TripleCount() int { return s.G.Len() }

// NodeCount implements Source.
func (s GraphSource) NodeCount() int { return len(s.G.Nodes()) }

// PredicateCount implements Source.
func (s GraphSource) PredicateCount() int { return len(s.G.Predicates()) }

// ClassCount implements Source.
func (s GraphSource) ClassCount() int {
	return len(s.G.Subjects(vocabulary.RdfType, vocabulary.OwlClass))
}

// IndividualCount implements Source.
func (s GraphSource) IndividualCount() int {
	return len(s.G.Subjects(vocabulary.RdfType, vocabulary.OwlNamedIndividual))
}

// ObjectPropertyCount implements Source.
func (s GraphSource) ObjectPropertyCount() int {
	return len(s.G.Subjects(vocabulary.RdfType, vocabulary.OwlObjectProperty))
}

// AnnotationPropertyCount implements Source.
func (s GraphSource) AnnotationPropertyCount() int {
	return len(s.G.Subjects(vocabulary.RdfType, vocabulary.OwlAnnotationProperty))
}

// MultigraphSource adapts a directed multigraph to the counting capability.
type MultigraphSource struct {
	G *multigraph.Graph
}

// TripleCount implements Source; for a multigraph this is the edge count
// with parallel predicates counted separately.
func (s MultigraphSource) TripleCount() int { return s.G.EdgeCount() }

// NodeCount implements Source.
func (s MultigraphSource) NodeCount() int { return s.G.NodeCount() }

// PredicateCount implements Source.
func (s MultigraphSource) PredicateCount() int { return len(s.G.Predicates()) }

// ClassCount implements Source.
func (s MultigraphSource) ClassCount() int {
	return s.countTyped(vocabulary.OwlClass)
}

// IndividualCount implements Source.
func (s MultigraphSource) IndividualCount() int {
	return s.countTyped(vocabulary.OwlNamedIndividual)
}

// ObjectPropertyCount implements Source.
func (s MultigraphSource) ObjectPropertyCount() int {
	return s.countTyped(vocabulary.OwlObjectProperty)
}

// AnnotationPropertyCount implements Source.
func (s MultigraphSource) AnnotationPropertyCount() int {
	return s.countTyped(vocabulary.OwlAnnotationProperty)
}

// countTyped counts nodes with an rdf:type edge to the given type term.
func (s MultigraphSource) countTyped(typeTerm rdf.IRI) int {
	count := 0
	for _, n := range s.G.Nodes() {
		for _, o := range s.G.OutVia(n, rdf.Term(vocabulary.RdfType)) {
			if o == rdf.Term(typeTerm) {
				count++
				break
			}
		}
	}
	return count
}
