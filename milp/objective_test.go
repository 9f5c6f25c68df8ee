package milp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticedb/planner/identifier"
	"github.com/latticedb/planner/milp"
	"github.com/latticedb/planner/pgraph"
	"github.com/latticedb/planner/properties"
	"github.com/latticedb/planner/schema"
	"github.com/latticedb/planner/solver"
)

// TestScenario1SingleIndexedThing reproduces end-to-end scenario #1: a
// single Thing vertex with an IID must be feasible, with the vertex forced
// to be both the start and the end of its own singleton tree.
func TestScenario1SingleIndexedThing(t *testing.T) {
	g := pgraph.NewGraph()
	x, err := g.AddVertex(identifier.ID("x"), pgraph.KindThing)
	require.NoError(t, err)
	require.NoError(t, g.SetThingProperties(x, properties.Thing{IID: "0xAB"}))

	backend := solver.NewBranchAndBound()
	m := milp.NewModel(g, backend)
	require.NoError(t, m.InitVariables())
	require.NoError(t, m.InitConstraints())
	require.NoError(t, m.PopulateObjective(schema.NewStatic(nil, 0, 0)))

	outcome, err := backend.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, solver.Optimal, outcome)

	startVar, ok := m.VarIsStartingVertex(x)
	require.True(t, ok)
	val, err := backend.SolutionValue(startVar)
	require.NoError(t, err)
	require.Equal(t, float64(1), val)
}

// TestScenario4TwoUnindexedThingsIsInfeasible reproduces end-to-end
// scenario #4: two unindexed Thing vertices joined by an edge have no
// eligible root anywhere, so the model must be infeasible.
func TestScenario4TwoUnindexedThingsIsInfeasible(t *testing.T) {
	g := pgraph.NewGraph()
	x, err := g.AddVertex(identifier.ID("x"), pgraph.KindThing)
	require.NoError(t, err)
	y, err := g.AddVertex(identifier.ID("y"), pgraph.KindThing)
	require.NoError(t, err)
	require.NoError(t, g.SetThingProperties(x, properties.Thing{}))
	require.NoError(t, g.SetThingProperties(y, properties.Thing{}))
	_, _, err = g.AddEdge(x, y, "related", nil)
	require.NoError(t, err)

	backend := solver.NewBranchAndBound()
	m := milp.NewModel(g, backend)
	require.NoError(t, m.InitVariables())
	require.NoError(t, m.InitConstraints())
	require.NoError(t, m.PopulateObjective(schema.NewStatic(nil, 0, 0)))

	outcome, err := backend.Solve(context.Background())
	require.ErrorIs(t, err, solver.ErrPlanInfeasible)
	require.Equal(t, solver.Infeasible, outcome)
}

// TestScenario5TypeLabelBeatsInstanceScan reproduces end-to-end scenario
// #5: a Type vertex with a concrete label (cost 1) beats a Thing vertex
// whose only route to an index is a full-scan instance count, so the
// solver roots the plan at the Type vertex.
func TestScenario5TypeLabelBeatsInstanceScan(t *testing.T) {
	g := pgraph.NewGraph()
	tv, err := g.AddVertex(identifier.ID("T"), pgraph.KindType)
	require.NoError(t, err)
	require.NoError(t, g.SetTypeProperties(tv, properties.Type{Label: "person"}))

	p, err := g.AddVertex(identifier.ID("p"), pgraph.KindThing)
	require.NoError(t, err)
	require.NoError(t, g.SetThingProperties(p, properties.Thing{Types: []string{"person"}}))

	_, _, err = g.AddEdge(p, tv, "isa", nil)
	require.NoError(t, err)

	backend := solver.NewBranchAndBound()
	m := milp.NewModel(g, backend)
	require.NoError(t, m.InitVariables())
	require.NoError(t, m.InitConstraints())
	require.NoError(t, m.PopulateObjective(schema.NewStatic(map[string]uint64{"person": 1000}, 5, 2)))

	outcome, err := backend.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, solver.Optimal, outcome)

	tStart, ok := m.VarIsStartingVertex(tv)
	require.True(t, ok)
	tVal, err := backend.SolutionValue(tStart)
	require.NoError(t, err)
	require.Equal(t, float64(1), tVal)

	pStart, ok := m.VarIsStartingVertex(p)
	require.True(t, ok)
	pVal, err := backend.SolutionValue(pStart)
	require.NoError(t, err)
	require.Equal(t, float64(0), pVal)
}
