package patternbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticedb/planner/patternbuilder"
)

func TestChainWiresSequentialEdges(t *testing.T) {
	b := patternbuilder.New().
		Thing("a", patternbuilder.WithIID("0x1")).
		Thing("b").
		Thing("c").
		Chain("related", "a", "b", "c")

	g := b.Graph()
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 4, g.NumEdges()) // two pattern edges, forward+backward each
}

func TestStarWiresHubAndSpokes(t *testing.T) {
	b := patternbuilder.New().
		Thing("hub", patternbuilder.WithIID("0x1")).
		Thing("leaf1").
		Thing("leaf2").
		Star("hub", "related", "leaf1", "leaf2")

	g := b.Graph()
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 4, g.NumEdges())
}

func TestEdgeToUnknownVertexPanics(t *testing.T) {
	require.Panics(t, func() {
		patternbuilder.New().Thing("a").Edge("a", "missing", "related")
	})
}

func TestVertexIndexOfResolvesRegisteredName(t *testing.T) {
	b := patternbuilder.New().Thing("a", patternbuilder.WithIID("0x1"))
	idx, ok := b.VertexIndexOf("a")
	require.True(t, ok)
	require.Equal(t, "a", b.Graph().Vertex(idx).ID().String())

	_, ok = b.VertexIndexOf("missing")
	require.False(t, ok)
}
