package planner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticedb/planner/identifier"
	"github.com/latticedb/planner/pgraph"
	"github.com/latticedb/planner/planner"
	"github.com/latticedb/planner/properties"
	"github.com/latticedb/planner/schema"
)

func TestPlanRejectsUnheldGuard(t *testing.T) {
	g := pgraph.NewGraph()
	_, err := planner.Plan(context.Background(), g, schema.NewStatic(nil, 0, 0), nil)
	require.Error(t, err)
}

func TestPlanSingleIndexedThing(t *testing.T) {
	g := pgraph.NewGraph()
	x, err := g.AddVertex(identifier.ID("x"), pgraph.KindThing)
	require.NoError(t, err)
	require.NoError(t, g.SetThingProperties(x, properties.Thing{IID: "0xAB"}))

	plan, err := planner.Plan(context.Background(), g, schema.NewStatic(nil, 0, 0), schema.NewStaticGuard())
	require.NoError(t, err)
	require.Equal(t, []identifier.ID{identifier.ID("x")}, plan.Roots)
	require.Equal(t, []identifier.ID{identifier.ID("x")}, plan.Order)
	require.Empty(t, plan.EdgesSelected)
}

func TestPlanTwoThingsOneIndexed(t *testing.T) {
	g := pgraph.NewGraph()
	x, err := g.AddVertex(identifier.ID("x"), pgraph.KindThing)
	require.NoError(t, err)
	y, err := g.AddVertex(identifier.ID("y"), pgraph.KindThing)
	require.NoError(t, err)
	require.NoError(t, g.SetThingProperties(x, properties.Thing{IID: "0xAB"}))
	require.NoError(t, g.SetThingProperties(y, properties.Thing{}))
	_, _, err = g.AddEdge(x, y, "related", nil)
	require.NoError(t, err)

	plan, err := planner.Plan(context.Background(), g, schema.NewStatic(nil, 0, 0), schema.NewStaticGuard())
	require.NoError(t, err)
	require.Equal(t, []identifier.ID{identifier.ID("x")}, plan.Roots)
	require.Equal(t, []identifier.ID{identifier.ID("x"), identifier.ID("y")}, plan.Order)
	require.Equal(t, [][2]identifier.ID{{identifier.ID("x"), identifier.ID("y")}}, plan.EdgesSelected)
}

func TestPlanTwoUnindexedIsInfeasible(t *testing.T) {
	g := pgraph.NewGraph()
	x, err := g.AddVertex(identifier.ID("x"), pgraph.KindThing)
	require.NoError(t, err)
	y, err := g.AddVertex(identifier.ID("y"), pgraph.KindThing)
	require.NoError(t, err)
	require.NoError(t, g.SetThingProperties(x, properties.Thing{}))
	require.NoError(t, g.SetThingProperties(y, properties.Thing{}))
	_, _, err = g.AddEdge(x, y, "related", nil)
	require.NoError(t, err)

	_, err = planner.Plan(context.Background(), g, schema.NewStatic(nil, 0, 0), schema.NewStaticGuard())
	require.ErrorIs(t, err, planner.ErrPlanInfeasible)
}

func TestPlanTwoDisconnectedIndexedThings(t *testing.T) {
	g := pgraph.NewGraph()
	x, err := g.AddVertex(identifier.ID("x"), pgraph.KindThing)
	require.NoError(t, err)
	y, err := g.AddVertex(identifier.ID("y"), pgraph.KindThing)
	require.NoError(t, err)
	require.NoError(t, g.SetThingProperties(x, properties.Thing{IID: "0xAB"}))
	require.NoError(t, g.SetThingProperties(y, properties.Thing{IID: "0xCD"}))

	plan, err := planner.Plan(context.Background(), g, schema.NewStatic(nil, 0, 0), schema.NewStaticGuard())
	require.NoError(t, err)
	require.ElementsMatch(t, []identifier.ID{identifier.ID("x"), identifier.ID("y")}, plan.Roots)
	require.ElementsMatch(t, []identifier.ID{identifier.ID("x"), identifier.ID("y")}, plan.Order)
	require.Empty(t, plan.EdgesSelected)
}
