package rdf

import (
	"fmt"

	"github.com/TTa77/PheKnowLator/errors"
)

// Triple is an ordered (subject, predicate, object) statement, the atomic
// unit of the knowledge graph.
//
// Position constraints follow RDF semantics:
//   - Subject: IRI or BlankNode
//   - Predicate: IRI
//   - Object: any term kind, including Literal
//
// Triples are comparable value objects; a Graph deduplicates them by
// structural equality.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// NewTriple builds a triple after validating position constraints. Use this
// at trust boundaries (parsers, external edge lists); internal code that
// already holds valid terms may construct Triple values directly.
func NewTriple(subject, predicate, object Term) (Triple, error) {
	if subject == nil || predicate == nil || object == nil {
		return Triple{}, errors.WrapInvalid(
			fmt.Errorf("nil term"), "rdf", "NewTriple", "triple positions must be non-nil")
	}
	if subject.Kind() == KindLiteral {
		return Triple{}, errors.WrapInvalid(
			fmt.Errorf("literal subject %q", subject.Value()),
			"rdf", "NewTriple", "subject must be an IRI or blank node")
	}
	if predicate.Kind() != KindIRI {
		return Triple{}, errors.WrapInvalid(
			fmt.Errorf("%s predicate %q", predicate.Kind(), predicate.Value()),
			"rdf", "NewTriple", "predicate must be an IRI")
	}
	return Triple{Subject: subject, Predicate: predicate, Object: object}, nil
}

// IsSelfLoop reports whether the subject and object are the same node.
func (t Triple) IsSelfLoop() bool {
	return t.Subject == t.Object
}

// String returns the canonical N-Triples rendering of the triple.
func (t Triple) String() string {
	return SerializeTriple(t, " ")
}
