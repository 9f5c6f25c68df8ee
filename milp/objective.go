package milp

import (
	"fmt"
	"sort"

	"github.com/latticedb/planner/identifier"
	"github.com/latticedb/planner/pgraph"
	"github.com/latticedb/planner/schema"
)

// DefaultEdgeCost is the fallback coefficient for a directional edge whose
// cost cannot be derived from schema statistics. The exact edge cost
// formula is left to the caller via EdgeCostFunc; this module fixes a
// concrete default for everything else.
const DefaultEdgeCost = 10.0

// defaultTieBreakEpsilon nudges otherwise-tied varIsStartingVertex
// coefficients apart, smallest for the lexicographically smallest
// identifier. It is small enough that it cannot reorder any two vertices
// whose "real" coefficients already differ by any non-infinitesimal
// amount.
const defaultTieBreakEpsilon = 1e-9

// EdgeCostFunc computes a directional edge's objective coefficient from
// schema statistics. Returning ok == false falls back to the configured
// default edge cost.
type EdgeCostFunc func(schemaGraph schema.Graph, edge *pgraph.Edge) (cost float64, ok bool)

type objectiveConfig struct {
	defaultEdgeCost float64
	edgeCostFunc    EdgeCostFunc
	tieBreakEpsilon float64
}

// ObjectiveOption configures PopulateObjective.
type ObjectiveOption func(*objectiveConfig)

// WithDefaultEdgeCost overrides DefaultEdgeCost.
func WithDefaultEdgeCost(cost float64) ObjectiveOption {
	return func(c *objectiveConfig) { c.defaultEdgeCost = cost }
}

// WithEdgeCostFunc supplies a schema-statistics-backed edge costing
// function (e.g. a per-role average cardinality lookup), consulted before
// falling back to the default edge cost.
func WithEdgeCostFunc(fn EdgeCostFunc) ObjectiveOption {
	return func(c *objectiveConfig) { c.edgeCostFunc = fn }
}

// WithTieBreakEpsilon overrides the tie-break nudge magnitude.
func WithTieBreakEpsilon(eps float64) ObjectiveOption {
	return func(c *objectiveConfig) { c.tieBreakEpsilon = eps }
}

// PopulateObjective sets every vertex and edge objective coefficient from
// schemaGraph statistics. May be re-run after InitConstraints whenever the
// schema graph changes materially between plans; it does not touch
// variables or constraints.
func (m *Model) PopulateObjective(schemaGraph schema.Graph, opts ...ObjectiveOption) error {
	cfg := objectiveConfig{
		defaultEdgeCost: DefaultEdgeCost,
		tieBreakEpsilon: defaultTieBreakEpsilon,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	rank := rankByID(m.graph)

	for _, v := range m.graph.Vertices() {
		startVar, ok := m.varIsStartingVertex[v]
		if !ok {
			continue // hasIndex == false: no varIsStartingVertex to cost.
		}

		vertex := m.graph.Vertex(v)
		coeff, present, err := startingVertexCoefficient(vertex, schemaGraph)
		if err != nil {
			return fmt.Errorf("milp: PopulateObjective(%s): %w", vertex.ID(), err)
		}
		if !present {
			continue
		}

		coeff += cfg.tieBreakEpsilon * float64(rank[vertex.ID()])
		if err := m.backend.SetObjectiveCoefficient(startVar, coeff); err != nil {
			return fmt.Errorf("milp: PopulateObjective(%s): %w", vertex.ID(), err)
		}
	}

	for _, e := range m.graph.Edges() {
		edge := m.graph.Edge(e)
		sel := m.varIsSelected[e]

		cost := cfg.defaultEdgeCost
		if cfg.edgeCostFunc != nil {
			if c, ok := cfg.edgeCostFunc(schemaGraph, edge); ok {
				cost = c
			}
		}
		if err := m.backend.SetObjectiveCoefficient(sel, cost); err != nil {
			return fmt.Errorf("milp: PopulateObjective(edge %d): %w", e, err)
		}
	}

	return nil
}

// startingVertexCoefficient computes the Thing/Type objective coefficient
// formulae. present is false when the vertex contributes no coefficient at
// all (its variable still exists via hasIndex, e.g. a Thing with an empty
// type set can't happen since that implies hasIndex==false, but a Type
// vertex with none of label/isAbstract/valueType/regex set can).
func startingVertexCoefficient(vertex *pgraph.Vertex, schemaGraph schema.Graph) (coeff float64, present bool, err error) {
	switch vertex.Kind() {
	case pgraph.KindThing:
		thing, err := vertex.Thing()
		if err != nil {
			return 0, false, err
		}
		switch {
		case thing.HasIID():
			return 1, true, nil
		case thing.HasTypes() && thing.HasEqualityPredicate():
			return float64(len(thing.Types)), true, nil
		case thing.HasTypes():
			var sum float64
			for _, label := range thing.Types {
				handle, ok := schemaGraph.GetType(label)
				if !ok {
					continue
				}
				sum += float64(handle.InstanceCount())
			}
			return sum, true, nil
		default:
			return 0, false, nil
		}

	case pgraph.KindType:
		typ, err := vertex.Type()
		if err != nil {
			return 0, false, err
		}
		switch {
		case typ.HasLabel():
			return 1, true, nil
		case typ.IsAbstract:
			return float64(schemaGraph.TypeCount()), true, nil
		case typ.HasValueConstraint():
			return float64(schemaGraph.AttributeTypeCount()), true, nil
		default:
			return 0, false, nil
		}
	}

	return 0, false, nil
}

// rankByID assigns each vertex identifier a stable rank by lexicographic
// order, used to break zero-coefficient ties toward the smaller identifier.
func rankByID(graph *pgraph.Graph) map[identifier.ID]int {
	ids := make([]identifier.ID, 0, graph.NumVertices())
	for _, v := range graph.Vertices() {
		ids = append(ids, graph.Vertex(v).ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rank := make(map[identifier.ID]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	return rank
}
