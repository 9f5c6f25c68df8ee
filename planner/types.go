package planner

import "github.com/latticedb/planner/identifier"

// State is the planning lifecycle state machine:
// Building → VarsInit → ConstraintsInit → Solved → Decoded. Plan drives a
// pattern through every state in order; nothing in this package exposes a
// way to skip or repeat one.
type State int

const (
	// Building is the initial state: the caller's *pgraph.Graph has been
	// assembled but no MILP model exists yet.
	Building State = iota
	// VarsInit means milp.Model.InitVariables has completed.
	VarsInit
	// ConstraintsInit means milp.Model.InitConstraints has completed.
	ConstraintsInit
	// Solved means the objective has been populated and the backend has
	// returned Optimal or FeasibleWithinBudget.
	Solved
	// Decoded means pgraph.Graph.Decode has run and Plan's fields are final.
	Decoded
)

func (s State) String() string {
	switch s {
	case Building:
		return "building"
	case VarsInit:
		return "vars_init"
	case ConstraintsInit:
		return "constraints_init"
	case Solved:
		return "solved"
	case Decoded:
		return "decoded"
	default:
		return "unknown"
	}
}

// Plan is the decoded, rooted traversal plan consumed by the execution
// engine: `{ roots, order, edgesSelected }`.
type Plan struct {
	// Roots are the vertices with valueIsStartingVertex == 1. The model
	// does not limit a weakly connected component to a single root: when
	// starting at a vertex costs less than reaching it over a selected edge,
	// one component has several roots.
	Roots []identifier.ID
	// Order is a breadth-first visitation order from the roots along
	// selected edges.
	Order []identifier.ID
	// EdgesSelected are the directional edges with valueIsSelected == 1, as
	// (from, to) identifier pairs.
	EdgesSelected [][2]identifier.ID
}
