package analysis

import (
	"sort"

	"github.com/TTa77/PheKnowLator/multigraph"
	"github.com/TTa77/PheKnowLator/rdf"
)

// ConnectedComponents partitions the multigraph's nodes into
// weakly-connected components: edge direction is ignored, and two nodes
// share a component iff an undirected path joins them.
//
// The partition covers every node exactly once. Components are returned
// with their members sorted by serialized form, largest component first
// (ties broken by first member) so output is deterministic.
func ConnectedComponents(g *multigraph.Graph) [][]rdf.Term {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil
	}

	// Union-find over node indices.
	index := make(map[rdf.Term]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}
	parent := make([]int, len(nodes))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]] // path halving
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	for _, s := range nodes {
		for _, o := range g.Out(s) {
			union(index[s], index[o])
		}
	}

	groups := make(map[int][]rdf.Term)
	for i, n := range nodes {
		root := find(i)
		groups[root] = append(groups[root], n)
	}

	out := make([][]rdf.Term, 0, len(groups))
	for _, members := range groups {
		// Nodes() is already sorted, so members inherit that order.
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return rdf.SerializeTerm(out[i][0]) < rdf.SerializeTerm(out[j][0])
	})
	return out
}
