package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TTa77/PheKnowLator/errors"
	"github.com/TTa77/PheKnowLator/multigraph"
	"github.com/TTa77/PheKnowLator/rdf"
	"github.com/TTa77/PheKnowLator/vocabulary"
)

func subClassGraph(pairs ...[2]string) *multigraph.Graph {
	g := multigraph.New()
	for _, p := range pairs {
		g.AddEdge(rdf.IRI(p[0]), vocabulary.RdfsSubClassOf, rdf.IRI(p[1]))
	}
	return g
}

func TestClassAncestors(t *testing.T) {
	// angiosarcoma -> cell type cancer -> cancer -> disease
	g := subClassGraph(
		[2]string{"http://x/angiosarcoma", "http://x/cell_cancer"},
		[2]string{"http://x/cell_cancer", "http://x/cancer"},
		[2]string{"http://x/cancer", "http://x/disease"},
		[2]string{"http://x/benign_tumor", "http://x/disease"},
	)

	t.Run("transitive closure includes start", func(t *testing.T) {
		got, err := ClassAncestors(g, []rdf.Term{rdf.IRI("http://x/angiosarcoma")})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"http://x/angiosarcoma",
			"http://x/cancer",
			"http://x/cell_cancer",
			"http://x/disease",
		}, got)
	})

	t.Run("multiple starts deduplicate shared ancestors", func(t *testing.T) {
		got, err := ClassAncestors(g, []rdf.Term{
			rdf.IRI("http://x/cancer"),
			rdf.IRI("http://x/benign_tumor"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"http://x/benign_tumor",
			"http://x/cancer",
			"http://x/disease",
		}, got)
	})

	t.Run("root has only itself", func(t *testing.T) {
		got, err := ClassAncestors(g, []rdf.Term{rdf.IRI("http://x/disease")})
		require.NoError(t, err)
		assert.Equal(t, []string{"http://x/disease"}, got)
	})

	t.Run("unknown class yields only itself", func(t *testing.T) {
		got, err := ClassAncestors(g, []rdf.Term{rdf.IRI("http://x/unknown")})
		require.NoError(t, err)
		assert.Equal(t, []string{"http://x/unknown"}, got)
	})
}

func TestClassAncestorsIgnoresOtherPredicates(t *testing.T) {
	g := multigraph.New()
	g.AddEdge(rdf.IRI("http://x/a"), vocabulary.RdfsSubClassOf, rdf.IRI("http://x/b"))
	g.AddEdge(rdf.IRI("http://x/b"), rdf.IRI("http://x/partOf"), rdf.IRI("http://x/c"))

	got, err := ClassAncestors(g, []rdf.Term{rdf.IRI("http://x/a")})
	require.NoError(t, err)
	assert.Equal(t, []string{"http://x/a", "http://x/b"}, got)
}

func TestClassAncestorsCycle(t *testing.T) {
	g := subClassGraph(
		[2]string{"http://x/a", "http://x/b"},
		[2]string{"http://x/b", "http://x/c"},
		[2]string{"http://x/c", "http://x/a"},
	)

	got, err := ClassAncestors(g, []rdf.Term{rdf.IRI("http://x/a")})
	require.NoError(t, err)
	assert.Equal(t, []string{"http://x/a", "http://x/b", "http://x/c"}, got)
}

func TestClassAncestorsEdgeCases(t *testing.T) {
	t.Run("empty start set", func(t *testing.T) {
		got, err := ClassAncestors(multigraph.New(), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{}, got)
	})

	t.Run("empty graph", func(t *testing.T) {
		_, err := ClassAncestors(multigraph.New(), []rdf.Term{rdf.IRI("http://x/a")})
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
		assert.True(t, errors.Is(err, errors.ErrEmptyGraph))
	})

	t.Run("nil graph", func(t *testing.T) {
		_, err := ClassAncestors(nil, []rdf.Term{rdf.IRI("http://x/a")})
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
	})
}
