package vocabulary

import (
	"sync"

	"github.com/TTa77/PheKnowLator/rdf"
)

// PredicateMetadata describes a registered predicate.
type PredicateMetadata struct {
	IRI         rdf.IRI
	Description string

	// Annotation marks the predicate as pure metadata. Triples carried by
	// annotation predicates land in the annotation subgraph during a
	// split and are excluded from graph algorithms.
	Annotation bool
}

// Global predicate registry
var (
	registryMu        sync.RWMutex
	predicateRegistry = make(map[rdf.IRI]PredicateMetadata)
)

// Option is a functional option for configuring predicate registration.
type Option func(*PredicateMetadata)

// WithDescription sets the human-readable description of the predicate.
func WithDescription(desc string) Option {
	return func(m *PredicateMetadata) {
		m.Description = desc
	}
}

// AsAnnotation marks the predicate as an annotation property.
func AsAnnotation() Option {
	return func(m *PredicateMetadata) {
		m.Annotation = true
	}
}

// Register records a predicate in the global registry. Domain vocabularies
// call this during package initialization; registering an already-known
// predicate overwrites it, which lets applications override the defaults
// below.
func Register(iri rdf.IRI, opts ...Option) {
	meta := PredicateMetadata{IRI: iri}
	for _, opt := range opts {
		opt(&meta)
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	predicateRegistry[iri] = meta
}

// Lookup retrieves metadata for a predicate. Returns nil if the predicate is
// not registered. Safe for concurrent use.
func Lookup(iri rdf.IRI) *PredicateMetadata {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if meta, ok := predicateRegistry[iri]; ok {
		metaCopy := meta
		return &metaCopy
	}
	return nil
}

// IsAnnotation reports whether the predicate is registered as an annotation
// property. Unregistered predicates are treated as structural.
func IsAnnotation(iri rdf.IRI) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()

	meta, ok := predicateRegistry[iri]
	return ok && meta.Annotation
}

// AnnotationPredicates returns every predicate currently registered as an
// annotation property.
func AnnotationPredicates() []rdf.IRI {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]rdf.IRI, 0, len(predicateRegistry))
	for iri, meta := range predicateRegistry {
		if meta.Annotation {
			out = append(out, iri)
		}
	}
	return out
}

// ClearRegistry clears all registered predicates.
// This is primarily useful for testing.
func ClearRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	predicateRegistry = make(map[rdf.IRI]PredicateMetadata)
}

// RegisterDefaults installs the standard annotation vocabulary: labels,
// comments, synonyms, cross-references, and reified axiom annotations.
// Called from an init so the split step works without extra wiring.
func RegisterDefaults() {
	Register(RdfsLabel, WithDescription("human-readable name"), AsAnnotation())
	Register(RdfsComment, WithDescription("human-readable description"), AsAnnotation())
	Register(RdfsSeeAlso, WithDescription("related resource pointer"), AsAnnotation())
	Register(RdfsIsDefinedBy, WithDescription("defining resource"), AsAnnotation())
	Register(OwlDeprecated, WithDescription("obsolescence marker"), AsAnnotation())
	Register(OwlAnnotatedSource, WithDescription("reified axiom subject"), AsAnnotation())
	Register(OwlAnnotatedProperty, WithDescription("reified axiom predicate"), AsAnnotation())
	Register(OwlAnnotatedTarget, WithDescription("reified axiom object"), AsAnnotation())
	Register(OboHasOBONamespace, WithDescription("source OBO namespace"), AsAnnotation())
	Register(OboHasExactSynonym, WithDescription("exact synonym"), AsAnnotation())
	Register(OboHasRelatedSynonym, WithDescription("related synonym"), AsAnnotation())
	Register(OboHasNarrowSynonym, WithDescription("narrow synonym"), AsAnnotation())
	Register(OboHasBroadSynonym, WithDescription("broad synonym"), AsAnnotation())
	Register(OboHasDbXref, WithDescription("database cross-reference"), AsAnnotation())
	Register(OboID, WithDescription("compact OBO identifier"), AsAnnotation())

	Register(RdfsSubClassOf, WithDescription("is-subclass-of relation"))
	Register(RdfType, WithDescription("type declaration"))
}

func init() {
	RegisterDefaults()
}
