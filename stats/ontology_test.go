package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TTa77/PheKnowLator/errors"
	"github.com/TTa77/PheKnowLator/rdf"
	"github.com/TTa77/PheKnowLator/vocabulary"
)

func TestClasses(t *testing.T) {
	g := rdf.NewGraph()
	g.Add(
		rdf.Triple{Subject: rdf.IRI("http://x/A"), Predicate: vocabulary.RdfType, Object: vocabulary.OwlClass},
		rdf.Triple{Subject: rdf.IRI("http://x/B"), Predicate: vocabulary.RdfType, Object: vocabulary.OwlClass},
		// Blank-node class expressions are excluded.
		rdf.Triple{Subject: rdf.BlankNode("restriction1"), Predicate: vocabulary.RdfType, Object: vocabulary.OwlClass},
		rdf.Triple{Subject: rdf.IRI("http://x/i"), Predicate: vocabulary.RdfType, Object: vocabulary.OwlNamedIndividual},
	)

	classes, err := Classes(g)
	require.NoError(t, err)
	assert.Len(t, classes, 2)
	assert.Contains(t, classes, rdf.IRI("http://x/A"))
	assert.Contains(t, classes, rdf.IRI("http://x/B"))
}

func TestClassesNone(t *testing.T) {
	g := rdf.NewGraph()
	g.Add(rdf.Triple{Subject: rdf.IRI("http://x/i"), Predicate: vocabulary.RdfType, Object: vocabulary.OwlNamedIndividual})

	_, err := Classes(g)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
	assert.True(t, errors.Is(err, errors.ErrNoClasses))
}

func TestDeprecatedClasses(t *testing.T) {
	g := rdf.NewGraph()
	g.Add(
		rdf.Triple{
			Subject:   rdf.IRI("http://x/Old"),
			Predicate: vocabulary.OwlDeprecated,
			Object:    rdf.NewTypedLiteral("true", vocabulary.XsdBoolean),
		},
		rdf.Triple{
			Subject:   rdf.IRI("http://x/AlsoOld"),
			Predicate: vocabulary.OwlDeprecated,
			Object:    rdf.NewLiteral("true"),
		},
		rdf.Triple{
			Subject:   rdf.IRI("http://x/Current"),
			Predicate: vocabulary.OwlDeprecated,
			Object:    rdf.NewTypedLiteral("false", vocabulary.XsdBoolean),
		},
	)

	deprecated := DeprecatedClasses(g)
	assert.Len(t, deprecated, 2)
	assert.Contains(t, deprecated, rdf.IRI("http://x/Old"))
	assert.Contains(t, deprecated, rdf.IRI("http://x/AlsoOld"))

	assert.Empty(t, DeprecatedClasses(rdf.NewGraph()))
}

func TestObjectProperties(t *testing.T) {
	g := rdf.NewGraph()
	g.Add(rdf.Triple{Subject: rdf.IRI("http://x/partOf"), Predicate: vocabulary.RdfType, Object: vocabulary.OwlObjectProperty})

	props, err := ObjectProperties(g)
	require.NoError(t, err)
	assert.Len(t, props, 1)
	assert.Contains(t, props, rdf.IRI("http://x/partOf"))

	_, err = ObjectProperties(rdf.NewGraph())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNoProperties))
}

func TestAnnotationProperties(t *testing.T) {
	g := rdf.NewGraph()
	g.Add(rdf.Triple{Subject: rdf.IRI("http://x/note"), Predicate: vocabulary.RdfType, Object: vocabulary.OwlAnnotationProperty})

	props := AnnotationProperties(g)
	assert.Len(t, props, 1)

	// No declarations is not an error for annotation properties.
	assert.Empty(t, AnnotationProperties(rdf.NewGraph()))
}

func TestClassSynonyms(t *testing.T) {
	class := rdf.IRI("http://purl.obolibrary.org/obo/DOID_0001816")
	g := rdf.NewGraph()
	g.Add(
		rdf.Triple{Subject: class, Predicate: vocabulary.OboHasExactSynonym, Object: rdf.NewLiteral("hemangiosarcoma")},
		rdf.Triple{Subject: class, Predicate: vocabulary.OboHasRelatedSynonym, Object: rdf.NewLiteral("malignant hemangioendothelioma")},
		// Non-synonym predicates are ignored.
		rdf.Triple{Subject: class, Predicate: vocabulary.RdfsLabel, Object: rdf.NewLiteral("angiosarcoma")},
	)

	synonyms, kinds := ClassSynonyms(g)
	require.Len(t, synonyms, 2)
	assert.Equal(t, class, synonyms["hemangiosarcoma"])
	assert.Equal(t, vocabulary.OboHasExactSynonym, kinds["hemangiosarcoma"])
	assert.Equal(t, vocabulary.OboHasRelatedSynonym, kinds["malignant hemangioendothelioma"])
	assert.NotContains(t, synonyms, "angiosarcoma")
}

func TestClassDbXrefs(t *testing.T) {
	class := rdf.IRI("http://purl.obolibrary.org/obo/DOID_0001816")
	g := rdf.NewGraph()
	g.Add(
		rdf.Triple{Subject: class, Predicate: vocabulary.OboHasDbXref, Object: rdf.NewLiteral("MESH:D006394")},
		rdf.Triple{Subject: class, Predicate: vocabulary.OboHasExactSynonym, Object: rdf.NewLiteral("hemangiosarcoma")},
	)

	xrefs, kinds := ClassDbXrefs(g)
	require.Len(t, xrefs, 1)
	assert.Equal(t, class, xrefs["MESH:D006394"])
	assert.Equal(t, vocabulary.OboHasDbXref, kinds["MESH:D006394"])
}
