package planner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticedb/planner/patternbuilder"
	"github.com/latticedb/planner/pgraph"
	"github.com/latticedb/planner/planner"
	"github.com/latticedb/planner/schema"
)

// assertPlanInvariants checks the quantified invariants every decoded
// vertex/edge of a pattern graph must satisfy.
func assertPlanInvariants(t *testing.T, g *pgraph.Graph) {
	t.Helper()

	for _, vi := range g.Vertices() {
		v := g.Vertex(vi)
		require.True(t, v.Decoded)

		start := 0
		if v.ValueIsStartingVertex {
			start = 1
		}
		hasIn := 0
		if v.ValueHasIncomingEdges {
			hasIn = 1
		}
		end := 0
		if v.ValueIsEndingVertex {
			end = 1
		}
		hasOut := 0
		if v.ValueHasOutgoingEdges {
			hasOut = 1
		}

		require.Equal(t, 1, start+hasIn, "entry constraint for %s", v.ID())
		require.Equal(t, 1, end+hasOut, "exit constraint for %s", v.ID())
		require.Equal(t, start+hasIn, end+hasOut, "flow conservation for %s", v.ID())

		if !v.HasIndex() {
			require.False(t, v.ValueIsStartingVertex, "non-indexed vertex %s must not start", v.ID())
		}
	}

	// Invariant #5: at most one direction per pattern edge is selected.
	seen := make(map[pgraph.EdgeIndex]bool)
	for _, ei := range g.Edges() {
		e := g.Edge(ei)
		if seen[ei] {
			continue
		}
		seen[e.Pair] = true
		pair := g.Edge(e.Pair)
		selectedCount := 0
		if e.ValueIsSelected {
			selectedCount++
		}
		if pair.ValueIsSelected {
			selectedCount++
		}
		require.LessOrEqual(t, selectedCount, 1, "edge direction exclusivity for %s", e.Label)
	}
}

func TestInvariantsHoldAcrossScenarios(t *testing.T) {
	cases := []struct {
		name  string
		build func() *pgraph.Graph
	}{
		{
			name: "single_indexed_thing",
			build: func() *pgraph.Graph {
				return patternbuilder.New().Thing("x", patternbuilder.WithIID("0xAB")).Graph()
			},
		},
		{
			name: "chain_one_indexed",
			build: func() *pgraph.Graph {
				return patternbuilder.New().
					Thing("x", patternbuilder.WithIID("0xAB")).
					Thing("y").
					Chain("related", "x", "y").
					Graph()
			},
		},
		{
			name: "star_hub_indexed",
			build: func() *pgraph.Graph {
				return patternbuilder.New().
					Thing("hub", patternbuilder.WithIID("0x1")).
					Thing("leaf1").
					Thing("leaf2").
					Star("hub", "related", "leaf1", "leaf2").
					Graph()
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := c.build()
			_, err := planner.Plan(context.Background(), g, schema.NewStatic(nil, 0, 0), schema.NewStaticGuard())
			require.NoError(t, err)
			assertPlanInvariants(t, g)
		})
	}
}
