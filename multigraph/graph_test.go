package multigraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TTa77/PheKnowLator/rdf"
)

var (
	nodeA = rdf.IRI("http://example.org/a")
	nodeB = rdf.IRI("http://example.org/b")
	nodeC = rdf.IRI("http://example.org/c")
	predP = rdf.IRI("http://example.org/p")
	predQ = rdf.IRI("http://example.org/q")
)

func TestPredicateKey(t *testing.T) {
	// md5("a") has a fixed, well-known digest; the key must never drift
	// because persisted snapshots depend on it.
	assert.Equal(t, "0cc175b9c0f1b6a831c399e269772661", PredicateKey(rdf.IRI("a")))

	assert.Len(t, PredicateKey(predP), 32)
	assert.Equal(t, PredicateKey(predP), PredicateKey(predP))
	assert.NotEqual(t, PredicateKey(predP), PredicateKey(predQ))
}

func TestAddEdge(t *testing.T) {
	g := New()
	g.AddEdge(nodeA, predP, nodeB)

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasNode(nodeA))
	assert.True(t, g.HasNode(nodeB))
	assert.False(t, g.HasNode(nodeC))

	recs := g.Edges(nodeA, nodeB)
	require.Len(t, recs, 1)
	assert.Equal(t, rdf.Term(predP), recs[0].Predicate)
	assert.Equal(t, PredicateKey(predP), recs[0].PredicateKey)
	assert.Equal(t, 0.0, recs[0].Weight)

	// Same predicate between the same pair is recorded once.
	g.AddEdge(nodeA, predP, nodeB)
	assert.Equal(t, 1, g.EdgeCount())

	// A different predicate between the same pair is a parallel edge.
	g.AddEdge(nodeA, predQ, nodeB)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Len(t, g.Edges(nodeA, nodeB), 2)
}

func TestBuild(t *testing.T) {
	src := rdf.NewGraph()
	src.Add(
		rdf.Triple{Subject: nodeA, Predicate: predP, Object: nodeB},
		rdf.Triple{Subject: nodeB, Predicate: predP, Object: nodeC},
		rdf.Triple{Subject: nodeA, Predicate: predQ, Object: nodeB},
	)

	g := Build(src)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Len(t, g.Predicates(), 2)

	// The source graph is untouched.
	assert.Equal(t, 3, src.Len())
}

func TestBuildLiteralNodes(t *testing.T) {
	src := rdf.NewGraph()
	lit := rdf.NewLiteral("cancer")
	src.Add(rdf.Triple{Subject: nodeA, Predicate: predP, Object: lit})

	g := Build(src)
	assert.True(t, g.HasNode(lit), "literal objects become nodes")
	assert.Equal(t, 2, g.NodeCount())
}

func TestOut(t *testing.T) {
	g := New()
	g.AddEdge(nodeA, predP, nodeC)
	g.AddEdge(nodeA, predP, nodeB)
	g.AddEdge(nodeB, predP, nodeC)

	out := g.Out(nodeA)
	require.Len(t, out, 2)
	assert.Equal(t, rdf.Term(nodeB), out[0], "successors are sorted")
	assert.Equal(t, rdf.Term(nodeC), out[1])

	assert.Nil(t, g.Out(nodeC))
}

func TestOutVia(t *testing.T) {
	g := New()
	g.AddEdge(nodeA, predP, nodeB)
	g.AddEdge(nodeA, predQ, nodeC)

	viaP := g.OutVia(nodeA, predP)
	require.Len(t, viaP, 1)
	assert.Equal(t, rdf.Term(nodeB), viaP[0])

	viaQ := g.OutVia(nodeA, predQ)
	require.Len(t, viaQ, 1)
	assert.Equal(t, rdf.Term(nodeC), viaQ[0])

	assert.Empty(t, g.OutVia(nodeA, rdf.IRI("http://example.org/other")))
	assert.Empty(t, g.OutVia(nodeB, predP))
}

func TestNodesSorted(t *testing.T) {
	g := New()
	g.AddEdge(nodeC, predP, nodeA)
	g.AddEdge(nodeB, predP, nodeC)

	nodes := g.Nodes()
	require.Len(t, nodes, 3)
	for i := 1; i < len(nodes); i++ {
		assert.Less(t, rdf.SerializeTerm(nodes[i-1]), rdf.SerializeTerm(nodes[i]))
	}
}
