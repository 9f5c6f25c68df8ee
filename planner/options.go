package planner

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/latticedb/planner/milp"
	"github.com/latticedb/planner/solver"
)

// DefaultTimeBudget bounds a solve when no WithTimeBudget override is
// given. It applies even when the ctx passed to Plan carries a deadline;
// whichever of the two is tighter governs.
const DefaultTimeBudget = 2 * time.Second

// config holds the resolved settings for one Plan call, built by applying
// every PlannerOption over DefaultOptions, the same functional-options
// shape as dijkstra.Options / dijkstra.DefaultOptions(source).
type config struct {
	timeBudget      time.Duration
	backend         solver.Backend
	logger          zerolog.Logger
	objectiveOpts   []milp.ObjectiveOption
	defaultEdgeCost float64
}

// PlannerOption configures a Plan call.
type PlannerOption func(*config)

// DefaultOptions returns a config seeded with the planner's defaults: a
// fresh branch-and-bound backend, DefaultTimeBudget, a disabled (no-op)
// logger, and DefaultEdgeCost.
func DefaultOptions() config {
	return config{
		timeBudget:      DefaultTimeBudget,
		backend:         solver.NewBranchAndBound(),
		logger:          zerolog.Nop(),
		defaultEdgeCost: milp.DefaultEdgeCost,
	}
}

// WithTimeBudget overrides DefaultTimeBudget. It is combined with ctx via
// context.WithTimeout — whichever deadline is tighter governs the solve.
func WithTimeBudget(d time.Duration) PlannerOption {
	return func(c *config) { c.timeBudget = d }
}

// WithBackend swaps the default solver.NewBranchAndBound() backend for a
// caller-supplied one.
func WithBackend(b solver.Backend) PlannerOption {
	return func(c *config) { c.backend = b }
}

// WithLogger attaches a zerolog.Logger that receives a debug event per
// lifecycle phase transition and a warn event on PlanInfeasible/
// SolverFailure, each carrying the call's correlation id.
func WithLogger(l zerolog.Logger) PlannerOption {
	return func(c *config) { c.logger = l }
}

// WithDefaultEdgeCost overrides the fallback edge objective coefficient,
// forwarded to milp.PopulateObjective.
func WithDefaultEdgeCost(cost float64) PlannerOption {
	return func(c *config) {
		c.defaultEdgeCost = cost
		c.objectiveOpts = append(c.objectiveOpts, milp.WithDefaultEdgeCost(cost))
	}
}

// WithEdgeCostFunc supplies a schema-statistics-backed edge costing
// function, forwarded to milp.PopulateObjective.
func WithEdgeCostFunc(fn milp.EdgeCostFunc) PlannerOption {
	return func(c *config) {
		c.objectiveOpts = append(c.objectiveOpts, milp.WithEdgeCostFunc(fn))
	}
}

// WithTieBreakEpsilon overrides the zero-instance-count tie-break nudge,
// forwarded to milp.PopulateObjective.
func WithTieBreakEpsilon(eps float64) PlannerOption {
	return func(c *config) {
		c.objectiveOpts = append(c.objectiveOpts, milp.WithTieBreakEpsilon(eps))
	}
}
