// Package planner orchestrates the traversal planner's end-to-end
// lifecycle: build → variable init → constraint init → objective
// population → solve → decode, producing a Plan consumable
// by an execution engine.
//
// Plan changes the pgraph.Graph it is given only by writing the decoded
// Value* and Decoded fields of its vertices and edges, and never acquires
// or releases the schema.ReadGuard it is passed — the caller owns both.
package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/latticedb/planner/identifier"
	"github.com/latticedb/planner/milp"
	"github.com/latticedb/planner/pgraph"
	"github.com/latticedb/planner/schema"
	"github.com/latticedb/planner/solver"
)

// Plan runs the full planning lifecycle over pattern and returns the
// decoded traversal plan. schemaGraph provides the statistics for
// objective population; guard must represent a currently-held schema read
// lock for the duration of the call — Plan only checks
// guard.Held(), it never acquires or releases it.
//
// ctx bounds the solver's search; it is combined with the configured time
// budget (default DefaultTimeBudget, overridable via WithTimeBudget) so
// that whichever deadline is tighter governs.
func Plan(ctx context.Context, pattern *pgraph.Graph, schemaGraph schema.Graph, guard schema.ReadGuard, opts ...PlannerOption) (*Plan, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	id := uuid.New()
	log := cfg.logger.With().Str("correlation_id", id.String()).Logger()

	if guard == nil || !guard.Held() {
		return nil, newPlanError(id, ErrConstructionFailed, "schema read guard is not held")
	}
	if pattern == nil {
		return nil, newPlanError(id, ErrConstructionFailed, "pattern graph is nil")
	}

	log.Debug().Str("phase", Building.String()).Int("vertices", pattern.NumVertices()).Int("edges", pattern.NumEdges()).Msg("planning started")

	model := milp.NewModel(pattern, cfg.backend)

	if err := model.InitVariables(); err != nil {
		return nil, newPlanError(id, ErrConstructionFailed, "InitVariables: %s", err)
	}
	log.Debug().Str("phase", VarsInit.String()).Msg("variables initialised")

	if err := model.InitConstraints(); err != nil {
		return nil, newPlanError(id, ErrConstructionFailed, "InitConstraints: %s", err)
	}
	log.Debug().Str("phase", ConstraintsInit.String()).Msg("constraints initialised")

	if err := model.PopulateObjective(schemaGraph, cfg.objectiveOpts...); err != nil {
		return nil, newPlanError(id, ErrConstructionFailed, "PopulateObjective: %s", err)
	}

	solveCtx, cancel := context.WithTimeout(ctx, cfg.timeBudget)
	defer cancel()

	outcome, err := cfg.backend.Solve(solveCtx)
	if err == nil {
		switch outcome {
		case solver.Optimal, solver.FeasibleWithinBudget:
		case solver.Infeasible:
			err = solver.ErrPlanInfeasible
		default:
			err = fmt.Errorf("outcome %s: %w", outcomeString(outcome), solver.ErrSolverFailure)
		}
	}
	if err != nil {
		return nil, classifySolveError(id, log, err)
	}
	log.Debug().Str("phase", Solved.String()).Str("outcome", outcomeString(outcome)).Msg("solved")

	if err := decodeSolution(pattern, model, cfg.backend); err != nil {
		return nil, newPlanError(id, ErrConstructionFailed, "decode: %s", err)
	}
	log.Debug().Str("phase", Decoded.String()).Msg("decoded")

	roots, order, edgesSelected := pattern.Decode()

	return &Plan{
		Roots:         vertexIDs(pattern, roots),
		Order:         vertexIDs(pattern, order),
		EdgesSelected: edgePairs(pattern, edgesSelected),
	}, nil
}

// classifySolveError translates a solver.Backend.Solve error into a
// *PlanError with the matching planner-level sentinel, logging a warn
// event with the call's correlation id.
func classifySolveError(id uuid.UUID, log zerolog.Logger, err error) *PlanError {
	kind := ErrSolverFailure
	if errors.Is(err, solver.ErrPlanInfeasible) {
		kind = ErrPlanInfeasible
	}
	log.Warn().Str("error", err.Error()).Msg("plan could not be solved")
	return newPlanError(id, kind, "solve: %s", err)
}

func outcomeString(o solver.Outcome) string {
	switch o {
	case solver.Optimal:
		return "optimal"
	case solver.FeasibleWithinBudget:
		return "feasible_within_budget"
	case solver.Infeasible:
		return "infeasible"
	case solver.Unbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// decodeSolution implements decode step: rounds every
// variable's solver-reported value into the corresponding pgraph Value*
// field and sets each vertex's and edge's Decoded flag.
func decodeSolution(g *pgraph.Graph, m *milp.Model, backend solver.Backend) error {
	for _, v := range g.Vertices() {
		if err := decodeVertex(g.Vertex(v), v, m, backend); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		edge := g.Edge(e)
		selVar, ok := m.VarIsSelected(e)
		if !ok {
			return fmt.Errorf("missing varIsSelected for edge %d", e)
		}
		val, err := backend.SolutionValue(selVar)
		if err != nil {
			return err
		}
		edge.ValueIsSelected = round(val) == 1
		edge.Decoded = true
	}
	return nil
}

func decodeVertex(vertex *pgraph.Vertex, v pgraph.VertexIndex, m *milp.Model, backend solver.Backend) error {
	if startVar, ok := m.VarIsStartingVertex(v); ok {
		val, err := backend.SolutionValue(startVar)
		if err != nil {
			return err
		}
		vertex.ValueIsStartingVertex = round(val) == 1
	}

	endVar, ok := m.VarIsEndingVertex(v)
	if !ok {
		return fmt.Errorf("missing varIsEndingVertex for vertex %s", vertex.ID())
	}
	endVal, err := backend.SolutionValue(endVar)
	if err != nil {
		return err
	}
	vertex.ValueIsEndingVertex = round(endVal) == 1

	hasInVar, _ := m.VarHasIncomingEdges(v)
	hasInVal, err := backend.SolutionValue(hasInVar)
	if err != nil {
		return err
	}
	vertex.ValueHasIncomingEdges = round(hasInVal) == 1

	hasOutVar, _ := m.VarHasOutgoingEdges(v)
	hasOutVal, err := backend.SolutionValue(hasOutVar)
	if err != nil {
		return err
	}
	vertex.ValueHasOutgoingEdges = round(hasOutVal) == 1

	unselInVar, _ := m.VarUnselectedIncomingEdges(v)
	unselInVal, err := backend.SolutionValue(unselInVar)
	if err != nil {
		return err
	}
	vertex.ValueUnselectedIncoming = int(round(unselInVal))

	unselOutVar, _ := m.VarUnselectedOutgoingEdges(v)
	unselOutVal, err := backend.SolutionValue(unselOutVar)
	if err != nil {
		return err
	}
	vertex.ValueUnselectedOutgoing = int(round(unselOutVal))

	vertex.Decoded = true
	return nil
}

func round(v float64) int64 {
	if v < 0 {
		return int64(v - 0.5)
	}
	return int64(v + 0.5)
}

func vertexIDs(g *pgraph.Graph, idxs []pgraph.VertexIndex) []identifier.ID {
	out := make([]identifier.ID, len(idxs))
	for i, idx := range idxs {
		out[i] = g.Vertex(idx).ID()
	}
	return out
}

func edgePairs(g *pgraph.Graph, idxs []pgraph.EdgeIndex) [][2]identifier.ID {
	out := make([][2]identifier.ID, len(idxs))
	for i, idx := range idxs {
		e := g.Edge(idx)
		out[i] = [2]identifier.ID{g.Vertex(e.From).ID(), g.Vertex(e.To).ID()}
	}
	return out
}
