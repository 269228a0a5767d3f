// Package analysis implements the pure graph walks of the engine: transitive
// class-ancestor resolution and weakly-connected component partitioning.
// Both are CPU-bound, run to completion, and assume exclusive access to the
// multigraph for the duration of a call.
package analysis

import (
	"sort"

	"github.com/TTa77/PheKnowLator/errors"
	"github.com/TTa77/PheKnowLator/multigraph"
	"github.com/TTa77/PheKnowLator/rdf"
	"github.com/TTa77/PheKnowLator/vocabulary"
)

// ClassAncestors computes the transitive closure of the is-subclass-of
// relation for each class in the start set, including the starting classes
// themselves. A visited set guards against malformed cyclic subclass chains;
// cycles are tolerated, not errors.
//
// Identifiers that are not URI-shaped are processed by identity - no prefix
// is assumed, so callers normalize before calling. An empty start set
// returns an empty result immediately; a non-empty start set against a
// graph with no edges fails fast with an invalid-input error rather than
// silently returning nothing.
//
// The result is deduplicated and sorted lexicographically.
func ClassAncestors(g *multigraph.Graph, classes []rdf.Term) ([]string, error) {
	if len(classes) == 0 {
		return []string{}, nil
	}
	if g == nil || g.EdgeCount() == 0 {
		return nil, errors.WrapInvalid(
			errors.ErrEmptyGraph, "analysis", "ClassAncestors", "resolve ancestors")
	}

	subClassOf := rdf.Term(vocabulary.RdfsSubClassOf)
	visited := make(map[rdf.Term]struct{})

	var walk func(rdf.Term)
	walk = func(class rdf.Term) {
		if _, seen := visited[class]; seen {
			return
		}
		visited[class] = struct{}{}
		for _, parent := range g.OutVia(class, subClassOf) {
			walk(parent)
		}
	}
	for _, class := range classes {
		walk(class)
	}

	out := make([]string, 0, len(visited))
	for class := range visited {
		out = append(out, class.Value())
	}
	sort.Strings(out)
	return out, nil
}
