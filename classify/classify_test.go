package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TTa77/PheKnowLator/errors"
)

func TestFindNodeType(t *testing.T) {
	genePrefix := "https://www.ncbi.nlm.nih.gov/gene/"
	oboPrefix := "http://purl.obolibrary.org/obo/"

	t.Run("instance and class", func(t *testing.T) {
		nt, err := FindNodeType(EdgeInfo{
			Kinds:    []string{"subclass", "class"},
			Locals:   []string{"2", "DOID_0110035"},
			Prefixes: []string{genePrefix, oboPrefix},
		})
		require.NoError(t, err)

		require.NotNil(t, nt.Cls1)
		assert.Equal(t, oboPrefix+"DOID_0110035", *nt.Cls1)
		assert.Nil(t, nt.Cls2)

		require.NotNil(t, nt.Ent1)
		assert.Equal(t, genePrefix+"2", *nt.Ent1)
		assert.Nil(t, nt.Ent2)
	})

	t.Run("two classes", func(t *testing.T) {
		nt, err := FindNodeType(EdgeInfo{
			Kinds:    []string{"class", "class"},
			Locals:   []string{"DOID_162", "DOID_14566"},
			Prefixes: []string{oboPrefix, oboPrefix},
		})
		require.NoError(t, err)

		require.NotNil(t, nt.Cls1)
		require.NotNil(t, nt.Cls2)
		assert.Equal(t, oboPrefix+"DOID_162", *nt.Cls1)
		assert.Equal(t, oboPrefix+"DOID_14566", *nt.Cls2)
		assert.Nil(t, nt.Ent1)
		assert.Nil(t, nt.Ent2)
	})

	t.Run("two instances", func(t *testing.T) {
		nt, err := FindNodeType(EdgeInfo{
			Kinds:    []string{"instance", "instance"},
			Locals:   []string{"2", "5594"},
			Prefixes: []string{genePrefix, genePrefix},
		})
		require.NoError(t, err)

		assert.Nil(t, nt.Cls1)
		assert.Nil(t, nt.Cls2)
		require.NotNil(t, nt.Ent1)
		require.NotNil(t, nt.Ent2)
		assert.Equal(t, genePrefix+"2", *nt.Ent1)
		assert.Equal(t, genePrefix+"5594", *nt.Ent2)
	})

	t.Run("class second fills cls1", func(t *testing.T) {
		// The first class encountered fills Cls1 regardless of which
		// endpoint it is.
		nt, err := FindNodeType(EdgeInfo{
			Kinds:    []string{"instance", "class"},
			Locals:   []string{"5594", "GO_0008150"},
			Prefixes: []string{genePrefix, oboPrefix},
		})
		require.NoError(t, err)
		require.NotNil(t, nt.Cls1)
		assert.Equal(t, oboPrefix+"GO_0008150", *nt.Cls1)
		require.NotNil(t, nt.Ent1)
		assert.Equal(t, genePrefix+"5594", *nt.Ent1)
	})
}

func TestFindNodeTypeMalformed(t *testing.T) {
	tests := []struct {
		name string
		info EdgeInfo
	}{
		{"empty", EdgeInfo{}},
		{
			"one kind",
			EdgeInfo{Kinds: []string{"class"}, Locals: []string{"a", "b"}, Prefixes: []string{"x", "y"}},
		},
		{
			"one local",
			EdgeInfo{Kinds: []string{"class", "class"}, Locals: []string{"a"}, Prefixes: []string{"x", "y"}},
		},
		{
			"one prefix",
			EdgeInfo{Kinds: []string{"class", "class"}, Locals: []string{"a", "b"}, Prefixes: []string{"x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FindNodeType(tt.info)
			require.Error(t, err)
			assert.True(t, errors.IsInvalid(err))
			assert.True(t, errors.Is(err, errors.ErrMalformedInput))
		})
	}
}

func TestNodeTypesAccessors(t *testing.T) {
	a, b := "http://x/A", "http://x/B"
	nt := NodeTypes{Cls1: &a, Ent1: &b}

	assert.Equal(t, []string{a}, nt.Classes())
	assert.Equal(t, []string{b}, nt.Entities())
	assert.Empty(t, NodeTypes{}.Classes())
	assert.Empty(t, NodeTypes{}.Entities())
}
