package rdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TTa77/PheKnowLator/errors"
)

func TestLoadGraph(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadGraph(filepath.Join(dir, "absent.nt"))
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.nt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := LoadGraph(path)
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
		assert.True(t, errors.Is(err, errors.ErrEmptyOntology))
	})

	t.Run("ntriples by extension", func(t *testing.T) {
		path := filepath.Join(dir, "data.nt")
		content := "<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		g, err := LoadGraph(path)
		require.NoError(t, err)
		assert.Equal(t, 1, g.Len())
	})

	t.Run("rdfxml by extension", func(t *testing.T) {
		path := filepath.Join(dir, "onto.owl")
		require.NoError(t, os.WriteFile(path, []byte(ontologyFragment), 0o644))

		g, err := LoadGraph(path)
		require.NoError(t, err)
		assert.Equal(t, 4, g.Len())
	})

	t.Run("file with no statements", func(t *testing.T) {
		path := filepath.Join(dir, "comments.nt")
		require.NoError(t, os.WriteFile(path, []byte("# only a comment\n"), 0o644))

		_, err := LoadGraph(path)
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
	})
}
