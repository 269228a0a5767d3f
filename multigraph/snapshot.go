package multigraph

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TTa77/PheKnowLator/errors"
	"github.com/TTa77/PheKnowLator/rdf"
)

// snapshotEdge is one directed edge in the serialized snapshot. Terms are
// stored in their canonical N-Triples form so every node kind round-trips.
type snapshotEdge struct {
	Subject      string  `json:"subject"`
	Object       string  `json:"object"`
	Predicate    string  `json:"predicate"`
	PredicateKey string  `json:"predicate_key"`
	Weight       float64 `json:"weight"`
}

type snapshot struct {
	Edges []snapshotEdge `json:"edges"`
}

// Save writes the multigraph to path as a JSON snapshot that can be
// reloaded without re-deriving it from triples. The write goes through a
// temp file and rename so a partial write never leaves a truncated
// snapshot behind.
func Save(g *Graph, path string) error {
	snap := snapshot{Edges: make([]snapshotEdge, 0, g.EdgeCount())}
	g.visitEdges(func(subject, object rdf.Term, rec EdgeRecord) {
		snap.Edges = append(snap.Edges, snapshotEdge{
			Subject:      rdf.SerializeTerm(subject),
			Object:       rdf.SerializeTerm(object),
			Predicate:    rdf.SerializeTerm(rec.Predicate),
			PredicateKey: rec.PredicateKey,
			Weight:       rec.Weight,
		})
	})

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.WrapIO(err, "multigraph", "Save", "marshal snapshot")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return errors.WrapIO(err, "multigraph", "Save", "create temp file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.WrapIO(err, "multigraph", "Save", "write snapshot")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO(err, "multigraph", "Save", "close snapshot")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO(err, "multigraph", "Save", "rename snapshot into place")
	}
	return nil
}

// Load reads a snapshot previously written by Save.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapNotFound(
				fmt.Errorf("%w: %s", errors.ErrFileNotFound, path),
				"multigraph", "Load", "read snapshot")
		}
		return nil, errors.WrapIO(err, "multigraph", "Load", "read snapshot")
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.WrapInvalid(err, "multigraph", "Load", "parse snapshot")
	}

	g := New()
	for _, e := range snap.Edges {
		subject, err := rdf.ParseTerm(e.Subject)
		if err != nil {
			return nil, err
		}
		object, err := rdf.ParseTerm(e.Object)
		if err != nil {
			return nil, err
		}
		predicate, err := rdf.ParseTerm(e.Predicate)
		if err != nil {
			return nil, err
		}
		g.AddEdge(subject, predicate, object)
	}
	return g, nil
}
