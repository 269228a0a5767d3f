// Package intmap assigns a stable, dense integer to every distinct node in
// a graph and emits integer-encoded triples alongside the identifier map.
package intmap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/TTa77/PheKnowLator/errors"
	"github.com/TTa77/PheKnowLator/rdf"
)

// Option configures a mapping run.
type Option func(*mapper)

// WithRawPredicates leaves the predicate position in its original IRI form
// instead of integer-encoding it. Subject and object are always mapped.
func WithRawPredicates() Option {
	return func(m *mapper) {
		m.rawPredicates = true
	}
}

// WithDelimiter overrides the column delimiter of the triples files.
// The default is a tab.
func WithDelimiter(delim string) Option {
	return func(m *mapper) {
		m.delimiter = delim
	}
}

type mapper struct {
	rawPredicates bool
	delimiter     string
}

// MapNodeIDs walks every triple of the graph in its fixed deterministic
// order, assigns the next unused integer (monotonically increasing from 0,
// first-seen order) to each term not yet mapped, and writes three paired
// artifacts under writeLocation:
//
//   - outputInts: delimiter-separated integer triples, one per line
//   - an identifiers file with the same row order holding the original
//     serialized terms (its name derives from outputInts, with "Integers"
//     replaced by "Identifiers")
//   - outputMap: a JSON object from serialized identifier to integer
//
// The returned map is a bijection restricted to the term set of the input
// graph, and re-running on an unchanged graph reproduces the same
// assignments. All files are written temp-then-rename so a partial failure
// never leaves an integer file inconsistent with its paired map.
func MapNodeIDs(g *rdf.Graph, writeLocation, outputInts, outputMap string, opts ...Option) (map[string]int, error) {
	if g == nil || g.Len() == 0 {
		return nil, errors.WrapInvalid(
			errors.ErrEmptyGraph, "intmap", "MapNodeIDs", "map node identifiers")
	}

	m := &mapper{delimiter: "\t"}
	for _, opt := range opts {
		opt(m)
	}

	ids := make(map[string]int)
	next := 0
	assign := func(t rdf.Term) int {
		key := rdf.SerializeTerm(t)
		if id, ok := ids[key]; ok {
			return id
		}
		ids[key] = next
		next++
		return ids[key]
	}

	var ints, idents strings.Builder
	for _, t := range g.SortedTriples() {
		s := assign(t.Subject)
		o := assign(t.Object)

		var p string
		if m.rawPredicates {
			p = t.Predicate.Value()
		} else {
			p = strconv.Itoa(assign(t.Predicate))
		}

		ints.WriteString(strconv.Itoa(s) + m.delimiter + p + m.delimiter + strconv.Itoa(o) + "\n")
		idents.WriteString(rdf.SerializeTerm(t.Subject) + m.delimiter +
			rdf.SerializeTerm(t.Predicate) + m.delimiter +
			rdf.SerializeTerm(t.Object) + "\n")
	}

	mapData, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return nil, errors.WrapIO(err, "intmap", "MapNodeIDs", "marshal identifier map")
	}

	// All three artifacts commit together or not at all.
	files := []struct {
		name    string
		content []byte
	}{
		{outputInts, []byte(ints.String())},
		{identifiersName(outputInts), []byte(idents.String())},
		{outputMap, mapData},
	}
	if err := writeAtomically(writeLocation, files); err != nil {
		return nil, err
	}
	return ids, nil
}

// identifiersName derives the human-readable identifiers filename from the
// integer-triples filename.
func identifiersName(outputInts string) string {
	if strings.Contains(outputInts, "Integers") {
		return strings.Replace(outputInts, "Integers", "Identifiers", 1)
	}
	ext := filepath.Ext(outputInts)
	return strings.TrimSuffix(outputInts, ext) + "_Identifiers" + ext
}

// writeAtomically stages every file in temp form first, then renames all of
// them into place, removing the staged set on any failure.
func writeAtomically(dir string, files []struct {
	name    string
	content []byte
}) error {
	staged := make([]string, 0, len(files))
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}

	for _, f := range files {
		tmp, err := os.CreateTemp(dir, ".intmap-*")
		if err != nil {
			cleanup()
			return errors.WrapIO(
				fmt.Errorf("%s: %w", dir, err),
				"intmap", "MapNodeIDs", "create temp artifact")
		}
		staged = append(staged, tmp.Name())
		if _, err := tmp.Write(f.content); err != nil {
			tmp.Close()
			cleanup()
			return errors.WrapIO(err, "intmap", "MapNodeIDs", "write artifact")
		}
		if err := tmp.Close(); err != nil {
			cleanup()
			return errors.WrapIO(err, "intmap", "MapNodeIDs", "close artifact")
		}
	}

	for i, f := range files {
		if err := os.Rename(staged[i], filepath.Join(dir, f.name)); err != nil {
			cleanup()
			return errors.WrapIO(err, "intmap", "MapNodeIDs", "rename artifact into place")
		}
	}
	return nil
}
