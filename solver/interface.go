// Package solver defines the black-box MILP solver interface the planner
// depends on, plus a default pure-Go implementation.
//
// A real deployment may plug in any backend satisfying Backend — an
// external MILP library, a service call, or (as shipped here) the
// reference branch-and-bound implementation in this package — without the
// rest of the planner knowing the difference.
package solver

import (
	"context"
	"errors"
)

// Var is an opaque handle to a solver-side decision variable, returned by
// Backend.MakeIntVar.
type Var int

// Constraint is an opaque handle to a solver-side linear constraint,
// returned by Backend.MakeConstraint.
type Constraint int

// Outcome classifies the result of a solve.
type Outcome int

const (
	// Optimal means the solver found a provably optimal solution.
	Optimal Outcome = iota
	// FeasibleWithinBudget means the solver found a feasible but not
	// provably optimal solution before timeBudget elapsed.
	FeasibleWithinBudget
	// Infeasible means no assignment satisfies every constraint.
	Infeasible
	// Unbounded means the objective is unbounded. This cannot happen here
	// because every variable is bounded; a Backend that reports it is
	// signalling an internal error.
	Unbounded
)

// ErrPlanInfeasible is returned by Backend.Solve (wrapped with call
// context) when the solver reports Infeasible. A well-formed pattern
// graph is always feasible; this indicates a construction bug or a
// disconnected pattern lacking an indexable root.
var ErrPlanInfeasible = errors.New("solver: plan is infeasible")

// ErrSolverFailure is returned when the solver errors outright: a timeout
// with no feasible solution found, an internal backend failure, or an
// Unbounded report (which cannot legitimately occur given bounded
// variables and is therefore treated as an internal error).
var ErrSolverFailure = errors.New("solver: solve failed")

// Backend is the external MILP solver interface consumed by the planner.
// Implementations must be safe for use by a single caller at a time; the
// planner never invokes a Backend concurrently or re-entrantly.
type Backend interface {
	// MakeIntVar creates a new bounded integer decision variable with
	// domain [lo, hi]. name is a human-readable diagnostic label following
	// the "vertex::var::<id>::<field>" / "edge::var::<id>::<field>"
	// convention; it carries no semantics.
	MakeIntVar(lo, hi int64, name string) (Var, error)

	// MakeConstraint creates a new linear constraint whose weighted sum of
	// variable values must fall in the closed interval [lo, hi]. name
	// follows the "vertex::con::<id>::<field>" convention.
	MakeConstraint(lo, hi float64, name string) (Constraint, error)

	// SetCoefficient sets v's coefficient within constraint c.
	SetCoefficient(c Constraint, v Var, coeff float64) error

	// SetObjectiveCoefficient sets v's coefficient in the (minimized)
	// objective function.
	SetObjectiveCoefficient(v Var, coeff float64) error

	// Solve invokes the solver. ctx bounds the search; if ctx is cancelled
	// before a feasible solution is found, Solve returns ErrSolverFailure.
	Solve(ctx context.Context) (Outcome, error)

	// SolutionValue returns v's value in the last solved solution. Callers
	// must round it themselves; a Backend whose variables are genuinely
	// integral, like the one this package ships, returns exact
	// integer-valued floats.
	SolutionValue(v Var) (float64, error)
}
