package pgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticedb/planner/pgraph"
)

func TestComponentsSingleComponent(t *testing.T) {
	g := pgraph.NewGraph()
	a, _ := g.AddVertex("a", pgraph.KindThing)
	b, _ := g.AddVertex("b", pgraph.KindThing)
	c, _ := g.AddVertex("c", pgraph.KindThing)
	g.AddEdge(a, b, "rel", nil)
	g.AddEdge(b, c, "rel", nil)

	comps := g.Components()
	require.Len(t, comps, 1)
	require.ElementsMatch(t, []pgraph.VertexIndex{a, b, c}, comps[0])
}

func TestComponentsDisconnected(t *testing.T) {
	g := pgraph.NewGraph()
	x, _ := g.AddVertex("x", pgraph.KindThing)
	y, _ := g.AddVertex("y", pgraph.KindThing)

	comps := g.Components()
	require.Len(t, comps, 2)

	var flat []pgraph.VertexIndex
	for _, c := range comps {
		flat = append(flat, c...)
	}
	sort.Slice(flat, func(i, j int) bool { return flat[i] < flat[j] })
	require.Equal(t, []pgraph.VertexIndex{x, y}, flat)
}
