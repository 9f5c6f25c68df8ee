package milp

import (
	"fmt"

	"github.com/latticedb/planner/identifier"
	"github.com/latticedb/planner/pgraph"
	"github.com/latticedb/planner/solver"
)

// Model is the MILP model builder (component C): it creates decision
// variables over a pgraph.Graph and the linear constraints encoding plan
// validity, driving a solver.Backend.
//
// Model holds solver.Var/solver.Constraint handles in index-keyed tables,
// mirroring pgraph.Graph's own index-keyed vertex/edge tables: a Model's
// handles are only meaningful against the Backend that produced them.
type Model struct {
	graph   *pgraph.Graph
	backend solver.Backend

	varsInit        bool
	constraintsInit bool

	varIsStartingVertex   map[pgraph.VertexIndex]solver.Var
	varIsEndingVertex     map[pgraph.VertexIndex]solver.Var
	varHasIncomingEdges   map[pgraph.VertexIndex]solver.Var
	varHasOutgoingEdges   map[pgraph.VertexIndex]solver.Var
	varUnselectedIncoming map[pgraph.VertexIndex]solver.Var
	varUnselectedOutgoing map[pgraph.VertexIndex]solver.Var
	varIsSelected         map[pgraph.EdgeIndex]solver.Var
}

// NewModel returns an empty Model bound to graph and backend. graph must
// not be mutated after InitVariables is called.
func NewModel(graph *pgraph.Graph, backend solver.Backend) *Model {
	return &Model{
		graph:                 graph,
		backend:               backend,
		varIsStartingVertex:   make(map[pgraph.VertexIndex]solver.Var),
		varIsEndingVertex:     make(map[pgraph.VertexIndex]solver.Var),
		varHasIncomingEdges:   make(map[pgraph.VertexIndex]solver.Var),
		varHasOutgoingEdges:   make(map[pgraph.VertexIndex]solver.Var),
		varUnselectedIncoming: make(map[pgraph.VertexIndex]solver.Var),
		varUnselectedOutgoing: make(map[pgraph.VertexIndex]solver.Var),
		varIsSelected:         make(map[pgraph.EdgeIndex]solver.Var),
	}
}

// IsInitialisedVariables reports whether InitVariables has completed.
func (m *Model) IsInitialisedVariables() bool { return m.varsInit }

// IsInitialisedConstraints reports whether InitConstraints has completed.
func (m *Model) IsInitialisedConstraints() bool { return m.constraintsInit }

// VarIsStartingVertex returns v's varIsStartingVertex handle and whether it
// exists — the variable is omitted entirely (treated as the constant 0)
// for a vertex with hasIndex == false.
func (m *Model) VarIsStartingVertex(v pgraph.VertexIndex) (solver.Var, bool) {
	vv, ok := m.varIsStartingVertex[v]
	return vv, ok
}

// VarIsSelected returns e's varIsSelected handle.
func (m *Model) VarIsSelected(e pgraph.EdgeIndex) (solver.Var, bool) {
	vv, ok := m.varIsSelected[e]
	return vv, ok
}

// VarIsEndingVertex returns v's varIsEndingVertex handle.
func (m *Model) VarIsEndingVertex(v pgraph.VertexIndex) (solver.Var, bool) {
	vv, ok := m.varIsEndingVertex[v]
	return vv, ok
}

// VarHasIncomingEdges returns v's varHasIncomingEdges handle.
func (m *Model) VarHasIncomingEdges(v pgraph.VertexIndex) (solver.Var, bool) {
	vv, ok := m.varHasIncomingEdges[v]
	return vv, ok
}

// VarHasOutgoingEdges returns v's varHasOutgoingEdges handle.
func (m *Model) VarHasOutgoingEdges(v pgraph.VertexIndex) (solver.Var, bool) {
	vv, ok := m.varHasOutgoingEdges[v]
	return vv, ok
}

// VarUnselectedIncomingEdges returns v's varUnselectedIncomingEdges handle.
func (m *Model) VarUnselectedIncomingEdges(v pgraph.VertexIndex) (solver.Var, bool) {
	vv, ok := m.varUnselectedIncoming[v]
	return vv, ok
}

// VarUnselectedOutgoingEdges returns v's varUnselectedOutgoingEdges handle.
func (m *Model) VarUnselectedOutgoingEdges(v pgraph.VertexIndex) (solver.Var, bool) {
	vv, ok := m.varUnselectedOutgoing[v]
	return vv, ok
}

// InitVariables creates every vertex and edge decision variable.
// Idempotent: a second call is a no-op.
func (m *Model) InitVariables() error {
	if m.varsInit {
		return nil
	}

	for _, v := range m.graph.Vertices() {
		vertex := m.graph.Vertex(v)
		id := vertex.ID()

		if vertex.HasIndex() {
			startVar, err := m.backend.MakeIntVar(0, 1, namespaceVar(id, "isStartingVertex"))
			if err != nil {
				return fmt.Errorf("milp: InitVariables(%s): %w", id, err)
			}
			m.varIsStartingVertex[v] = startVar
		}

		endVar, err := m.backend.MakeIntVar(0, 1, namespaceVar(id, "isEndingVertex"))
		if err != nil {
			return fmt.Errorf("milp: InitVariables(%s): %w", id, err)
		}
		m.varIsEndingVertex[v] = endVar

		hasInVar, err := m.backend.MakeIntVar(0, 1, namespaceVar(id, "hasIncomingEdges"))
		if err != nil {
			return fmt.Errorf("milp: InitVariables(%s): %w", id, err)
		}
		m.varHasIncomingEdges[v] = hasInVar

		hasOutVar, err := m.backend.MakeIntVar(0, 1, namespaceVar(id, "hasOutgoingEdges"))
		if err != nil {
			return fmt.Errorf("milp: InitVariables(%s): %w", id, err)
		}
		m.varHasOutgoingEdges[v] = hasOutVar

		unselIn, err := m.backend.MakeIntVar(0, int64(vertex.InDegree()), namespaceVar(id, "unselectedIncomingEdges"))
		if err != nil {
			return fmt.Errorf("milp: InitVariables(%s): %w", id, err)
		}
		m.varUnselectedIncoming[v] = unselIn

		unselOut, err := m.backend.MakeIntVar(0, int64(vertex.OutDegree()), namespaceVar(id, "unselectedOutgoingEdges"))
		if err != nil {
			return fmt.Errorf("milp: InitVariables(%s): %w", id, err)
		}
		m.varUnselectedOutgoing[v] = unselOut
	}

	for _, e := range m.graph.Edges() {
		edge := m.graph.Edge(e)
		sel, err := m.backend.MakeIntVar(0, 1, namespaceEdgeVar(edge, "isSelected"))
		if err != nil {
			return fmt.Errorf("milp: InitVariables(edge %d): %w", e, err)
		}
		m.varIsSelected[e] = sel
	}

	m.varsInit = true
	return nil
}

// InitConstraints builds the five per-vertex constraint families plus the
// edge-direction-exclusivity constraint per pattern edge. Requires
// InitVariables to have completed. Idempotent: a second call is a no-op.
func (m *Model) InitConstraints() error {
	if m.constraintsInit {
		return nil
	}
	if !m.varsInit {
		return ErrConstraintInitBeforeVariableInit
	}

	for _, v := range m.graph.Vertices() {
		vertex := m.graph.Vertex(v)
		id := vertex.ID()

		if err := m.addIncomingAccounting(v, vertex, id); err != nil {
			return err
		}
		if err := m.addOutgoingAccounting(v, vertex, id); err != nil {
			return err
		}
		if err := m.addEntryConstraint(v, id); err != nil {
			return err
		}
		if err := m.addExitConstraint(v, id); err != nil {
			return err
		}
		if err := m.addFlowConstraint(v, id); err != nil {
			return err
		}
	}

	for _, e := range m.graph.Edges() {
		edge := m.graph.Edge(e)
		if edge.Dir != pgraph.Forward {
			continue // visit each reified pattern edge once, via its forward half
		}
		if err := m.addEdgeExclusivityConstraint(e, edge); err != nil {
			return err
		}
	}

	m.constraintsInit = true
	return nil
}

// addEdgeExclusivityConstraint enforces that at most one of a pattern
// edge's forward/backward directional edges may be selected. Without it,
// the per-vertex constraint families alone admit a 2-cycle between two
// unindexed vertices (each supplies the other's forced incoming edge),
// which breaks the decoded plan's forest property.
func (m *Model) addEdgeExclusivityConstraint(fwd pgraph.EdgeIndex, edge *pgraph.Edge) error {
	excl, err := m.backend.MakeConstraint(0, 1, identifier.ID(edge.Label).Namespaced("edge", "con", "directionExclusivity"))
	if err != nil {
		return fmt.Errorf("milp: InitConstraints(edge %s): %w", edge.Label, err)
	}
	if err := m.backend.SetCoefficient(excl, m.varIsSelected[fwd], 1); err != nil {
		return fmt.Errorf("milp: InitConstraints(edge %s): %w", edge.Label, err)
	}
	if err := m.backend.SetCoefficient(excl, m.varIsSelected[edge.Pair], 1); err != nil {
		return fmt.Errorf("milp: InitConstraints(edge %s): %w", edge.Label, err)
	}
	return nil
}

// addIncomingAccounting builds:
//
//	varUnselectedIncomingEdges(v) + Σ_{e∈ins(v)} varIsSelected(e) = d_in
//	varUnselectedIncomingEdges(v) + varHasIncomingEdges(v) ∈ [1, d_in]
//
// When d_in == 0 the second constraint's literal interval [1,0] is empty;
// a vertex with no incoming edges must instead be forced to
// hasIncomingEdges == 0 (it can only ever be a start, never reached), so
// the domain is [0,0] in that case.
func (m *Model) addIncomingAccounting(v pgraph.VertexIndex, vertex *pgraph.Vertex, id identifier.ID) error {
	dIn := vertex.InDegree()

	accounting, err := m.backend.MakeConstraint(float64(dIn), float64(dIn), namespaceCon(id, "incomingAccounting"))
	if err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	if err := m.backend.SetCoefficient(accounting, m.varUnselectedIncoming[v], 1); err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	for _, e := range vertex.Ins() {
		sel := m.varIsSelected[e]
		if err := m.backend.SetCoefficient(accounting, sel, 1); err != nil {
			return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
		}
	}

	lo, hi := 1.0, float64(dIn)
	if dIn == 0 {
		lo, hi = 0, 0
	}
	hasIncoming, err := m.backend.MakeConstraint(lo, hi, namespaceCon(id, "hasIncomingEdges"))
	if err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	if err := m.backend.SetCoefficient(hasIncoming, m.varUnselectedIncoming[v], 1); err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	if err := m.backend.SetCoefficient(hasIncoming, m.varHasIncomingEdges[v], 1); err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}

	return nil
}

// addOutgoingAccounting is the symmetric counterpart of
// addIncomingAccounting over outs(v) and d_out.
func (m *Model) addOutgoingAccounting(v pgraph.VertexIndex, vertex *pgraph.Vertex, id identifier.ID) error {
	dOut := vertex.OutDegree()

	accounting, err := m.backend.MakeConstraint(float64(dOut), float64(dOut), namespaceCon(id, "outgoingAccounting"))
	if err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	if err := m.backend.SetCoefficient(accounting, m.varUnselectedOutgoing[v], 1); err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	for _, e := range vertex.Outs() {
		sel := m.varIsSelected[e]
		if err := m.backend.SetCoefficient(accounting, sel, 1); err != nil {
			return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
		}
	}

	lo, hi := 1.0, float64(dOut)
	if dOut == 0 {
		lo, hi = 0, 0
	}
	hasOutgoing, err := m.backend.MakeConstraint(lo, hi, namespaceCon(id, "hasOutgoingEdges"))
	if err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	if err := m.backend.SetCoefficient(hasOutgoing, m.varUnselectedOutgoing[v], 1); err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	if err := m.backend.SetCoefficient(hasOutgoing, m.varHasOutgoingEdges[v], 1); err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}

	return nil
}

// addEntryConstraint builds:
//
//	varIsStartingVertex(v) + varHasIncomingEdges(v) = 1
//
// varIsStartingVertex is simply omitted from the sum when it does not
// exist (hasIndex == false), which forces varHasIncomingEdges(v) = 1.
func (m *Model) addEntryConstraint(v pgraph.VertexIndex, id identifier.ID) error {
	entry, err := m.backend.MakeConstraint(1, 1, namespaceCon(id, "entry"))
	if err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	if startVar, ok := m.varIsStartingVertex[v]; ok {
		if err := m.backend.SetCoefficient(entry, startVar, 1); err != nil {
			return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
		}
	}
	if err := m.backend.SetCoefficient(entry, m.varHasIncomingEdges[v], 1); err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	return nil
}

// addExitConstraint builds:
//
//	varIsEndingVertex(v) + varHasOutgoingEdges(v) = 1
func (m *Model) addExitConstraint(v pgraph.VertexIndex, id identifier.ID) error {
	exit, err := m.backend.MakeConstraint(1, 1, namespaceCon(id, "exit"))
	if err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	if err := m.backend.SetCoefficient(exit, m.varIsEndingVertex[v], 1); err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	if err := m.backend.SetCoefficient(exit, m.varHasOutgoingEdges[v], 1); err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	return nil
}

// addFlowConstraint builds:
//
//	varIsStartingVertex(v) + varHasIncomingEdges(v) − varIsEndingVertex(v) − varHasOutgoingEdges(v) = 0
func (m *Model) addFlowConstraint(v pgraph.VertexIndex, id identifier.ID) error {
	flow, err := m.backend.MakeConstraint(0, 0, namespaceCon(id, "flow"))
	if err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	if startVar, ok := m.varIsStartingVertex[v]; ok {
		if err := m.backend.SetCoefficient(flow, startVar, 1); err != nil {
			return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
		}
	}
	if err := m.backend.SetCoefficient(flow, m.varHasIncomingEdges[v], 1); err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	if err := m.backend.SetCoefficient(flow, m.varIsEndingVertex[v], -1); err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	if err := m.backend.SetCoefficient(flow, m.varHasOutgoingEdges[v], -1); err != nil {
		return fmt.Errorf("milp: InitConstraints(%s): %w", id, err)
	}
	return nil
}

// namespaceVar and namespaceCon follow the "vertex::var::<id>::<field>" /
// "vertex::con::<id>::<field>" naming convention. Names carry no
// semantics; they exist only for human-readable solver diagnostics.
func namespaceVar(id identifier.ID, field string) string {
	return id.Namespaced("vertex", "var", field)
}

func namespaceCon(id identifier.ID, field string) string {
	return id.Namespaced("vertex", "con", field)
}

func namespaceEdgeVar(e *pgraph.Edge, field string) string {
	return identifier.ID(fmt.Sprintf("%s(%s)", e.Label, e.Dir)).Namespaced("edge", "var", field)
}
