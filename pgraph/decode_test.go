package pgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticedb/planner/pgraph"
)

func TestDecodeBFSOrder(t *testing.T) {
	g := pgraph.NewGraph()
	a, _ := g.AddVertex("a", pgraph.KindThing)
	b, _ := g.AddVertex("b", pgraph.KindThing)
	c, _ := g.AddVertex("c", pgraph.KindThing)
	fwdAB, _, _ := g.AddEdge(a, b, "rel", nil)
	fwdBC, _, _ := g.AddEdge(b, c, "rel", nil)

	g.Vertex(a).ValueIsStartingVertex = true
	g.Edge(fwdAB).ValueIsSelected = true
	g.Edge(fwdBC).ValueIsSelected = true

	roots, order, selected := g.Decode()
	require.Equal(t, []pgraph.VertexIndex{a}, roots)
	require.Equal(t, []pgraph.VertexIndex{a, b, c}, order)
	require.ElementsMatch(t, []pgraph.EdgeIndex{fwdAB, fwdBC}, selected)
}

func TestDecodeDisconnectedSingletons(t *testing.T) {
	g := pgraph.NewGraph()
	x, _ := g.AddVertex("x", pgraph.KindThing)
	y, _ := g.AddVertex("y", pgraph.KindThing)
	g.Vertex(x).ValueIsStartingVertex = true
	g.Vertex(y).ValueIsStartingVertex = true

	roots, order, selected := g.Decode()
	require.ElementsMatch(t, []pgraph.VertexIndex{x, y}, roots)
	require.ElementsMatch(t, []pgraph.VertexIndex{x, y}, order)
	require.Empty(t, selected)
}
