package stats

import (
	"github.com/TTa77/PheKnowLator/errors"
	"github.com/TTa77/PheKnowLator/rdf"
	"github.com/TTa77/PheKnowLator/vocabulary"
)

// Classes returns the set of IRI-identified ontology classes declared in
// the graph. Blank-node class expressions (restrictions, anonymous unions)
// are excluded. A graph declaring no classes fails with an invalid-input
// error rather than returning an empty set.
func Classes(g *rdf.Graph) (map[rdf.IRI]struct{}, error) {
	out := make(map[rdf.IRI]struct{})
	for _, s := range g.Subjects(vocabulary.RdfType, vocabulary.OwlClass) {
		if iri, ok := s.(rdf.IRI); ok {
			out[iri] = struct{}{}
		}
	}
	if len(out) == 0 {
		return nil, errors.WrapInvalid(
			errors.ErrNoClasses, "stats", "Classes", "collect class declarations")
	}
	return out, nil
}

// DeprecatedClasses returns the classes marked obsolete with
// owl:deprecated true. An ontology with no deprecations returns an empty
// set; absence of deprecations is not an error.
func DeprecatedClasses(g *rdf.Graph) map[rdf.IRI]struct{} {
	out := make(map[rdf.IRI]struct{})
	deprecated := rdf.NewTypedLiteral("true", vocabulary.XsdBoolean)
	plain := rdf.NewLiteral("true")
	for _, obj := range []rdf.Term{deprecated, plain} {
		for _, s := range g.Subjects(vocabulary.OwlDeprecated, obj) {
			if iri, ok := s.(rdf.IRI); ok {
				out[iri] = struct{}{}
			}
		}
	}
	return out
}

// ObjectProperties returns the declared object properties. A graph with
// none fails with an invalid-input error.
func ObjectProperties(g *rdf.Graph) (map[rdf.IRI]struct{}, error) {
	out := make(map[rdf.IRI]struct{})
	for _, s := range g.Subjects(vocabulary.RdfType, vocabulary.OwlObjectProperty) {
		if iri, ok := s.(rdf.IRI); ok {
			out[iri] = struct{}{}
		}
	}
	if len(out) == 0 {
		return nil, errors.WrapInvalid(
			errors.ErrNoProperties, "stats", "ObjectProperties", "collect object properties")
	}
	return out, nil
}

// AnnotationProperties returns the declared annotation properties.
func AnnotationProperties(g *rdf.Graph) map[rdf.IRI]struct{} {
	out := make(map[rdf.IRI]struct{})
	for _, s := range g.Subjects(vocabulary.RdfType, vocabulary.OwlAnnotationProperty) {
		if iri, ok := s.(rdf.IRI); ok {
			out[iri] = struct{}{}
		}
	}
	return out
}

// synonymPredicates are the oboInOwl synonym relations, broadest first.
var synonymPredicates = []rdf.IRI{
	vocabulary.OboHasExactSynonym,
	vocabulary.OboHasRelatedSynonym,
	vocabulary.OboHasNarrowSynonym,
	vocabulary.OboHasBroadSynonym,
}

// ClassSynonyms collects the synonym literals of every class. It returns
// two maps keyed by synonym value: the class carrying the synonym, and the
// synonym predicate that asserted it.
func ClassSynonyms(g *rdf.Graph) (map[string]rdf.IRI, map[string]rdf.IRI) {
	synonyms := make(map[string]rdf.IRI)
	kinds := make(map[string]rdf.IRI)
	for t := range g.Triples() {
		p, ok := t.Predicate.(rdf.IRI)
		if !ok || !isSynonymPredicate(p) {
			continue
		}
		subject, ok := t.Subject.(rdf.IRI)
		if !ok {
			continue
		}
		if lit, ok := t.Object.(rdf.Literal); ok {
			synonyms[lit.Val] = subject
			kinds[lit.Val] = p
		}
	}
	return synonyms, kinds
}

// ClassDbXrefs collects database cross-references of every class. It
// returns two maps keyed by xref value: the class carrying the xref, and
// the predicate that asserted it (always oboInOwl:hasDbXref today, kept
// parallel to ClassSynonyms).
func ClassDbXrefs(g *rdf.Graph) (map[string]rdf.IRI, map[string]rdf.IRI) {
	xrefs := make(map[string]rdf.IRI)
	kinds := make(map[string]rdf.IRI)
	for t := range g.Triples() {
		if t.Predicate != rdf.Term(vocabulary.OboHasDbXref) {
			continue
		}
		subject, ok := t.Subject.(rdf.IRI)
		if !ok {
			continue
		}
		if lit, ok := t.Object.(rdf.Literal); ok {
			xrefs[lit.Val] = subject
			kinds[lit.Val] = vocabulary.OboHasDbXref
		}
	}
	return xrefs, kinds
}

func isSynonymPredicate(p rdf.IRI) bool {
	for _, sp := range synonymPredicates {
		if p == sp {
			return true
		}
	}
	return false
}
