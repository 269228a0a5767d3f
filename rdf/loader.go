package rdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TTa77/PheKnowLator/errors"
)

// LoadGraph parses an ontology source file into a graph, choosing the codec
// by file extension: .nt for N-Triples, anything else (.owl, .rdf, .xml) is
// read as RDF/XML.
//
// A missing file surfaces as a not-found error and an empty file as a
// content-validation error, never as a silently empty graph.
func LoadGraph(path string) (*Graph, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapNotFound(
				fmt.Errorf("%w: %s", errors.ErrFileNotFound, path),
				"rdf", "LoadGraph", "stat ontology file")
		}
		return nil, errors.WrapIO(err, "rdf", "LoadGraph", "stat ontology file")
	}
	if info.Size() == 0 {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %s", errors.ErrEmptyOntology, path),
			"rdf", "LoadGraph", "validate ontology content")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO(err, "rdf", "LoadGraph", "open ontology file")
	}
	defer f.Close()

	var g *Graph
	if strings.EqualFold(filepath.Ext(path), ".nt") {
		g, err = ParseNTriples(f)
	} else {
		g, err = ParseRDFXML(f)
	}
	if err != nil {
		return nil, err
	}
	if g.Len() == 0 {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %s", errors.ErrEmptyOntology, path),
			"rdf", "LoadGraph", "validate parsed triples")
	}
	return g, nil
}
