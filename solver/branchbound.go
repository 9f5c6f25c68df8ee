package solver

import (
	"context"
	"fmt"
)

// branchAndBound is the reference Backend: a depth-first branch-and-bound
// search over the bounded integer variables, with constraint propagation
// (each constraint's achievable range is recomputed from the remaining
// variables' domains to prune infeasible branches early) and an
// admissible best-case objective bound for optimality pruning.
//
// Variable and constraint tables grow only by append, the same
// index-keyed-table style as pgraph.Graph; there is no deletion within the
// lifetime of one Backend.
type branchAndBound struct {
	vars        []varDef
	constraints []constraintDef
	objective   map[Var]float64

	solved    bool
	best      []int64 // best.[v] = incumbent value, nil until a feasible solution is found
	bestValue float64
}

type varDef struct {
	lo, hi int64
	name   string
}

type constraintDef struct {
	lo, hi float64
	name   string
	coeffs map[Var]float64
}

// NewBranchAndBound returns a fresh, empty Backend.
func NewBranchAndBound() Backend {
	return &branchAndBound{objective: make(map[Var]float64)}
}

func (b *branchAndBound) MakeIntVar(lo, hi int64, name string) (Var, error) {
	if lo > hi {
		return 0, fmt.Errorf("solver: MakeIntVar(%s): empty domain [%d,%d]", name, lo, hi)
	}
	b.vars = append(b.vars, varDef{lo: lo, hi: hi, name: name})
	return Var(len(b.vars) - 1), nil
}

func (b *branchAndBound) MakeConstraint(lo, hi float64, name string) (Constraint, error) {
	if lo > hi {
		return 0, fmt.Errorf("solver: MakeConstraint(%s): empty interval [%g,%g]", name, lo, hi)
	}
	b.constraints = append(b.constraints, constraintDef{lo: lo, hi: hi, name: name, coeffs: make(map[Var]float64)})
	return Constraint(len(b.constraints) - 1), nil
}

func (b *branchAndBound) SetCoefficient(c Constraint, v Var, coeff float64) error {
	if err := b.checkVar(v); err != nil {
		return err
	}
	if err := b.checkConstraint(c); err != nil {
		return err
	}
	b.constraints[c].coeffs[v] = coeff
	return nil
}

func (b *branchAndBound) SetObjectiveCoefficient(v Var, coeff float64) error {
	if err := b.checkVar(v); err != nil {
		return err
	}
	b.objective[v] = coeff
	return nil
}

func (b *branchAndBound) SolutionValue(v Var) (float64, error) {
	if err := b.checkVar(v); err != nil {
		return 0, err
	}
	if !b.solved || b.best == nil {
		return 0, fmt.Errorf("solver: SolutionValue(%s): %w", b.vars[v].name, ErrSolverFailure)
	}
	return float64(b.best[v]), nil
}

func (b *branchAndBound) checkVar(v Var) error {
	if int(v) < 0 || int(v) >= len(b.vars) {
		return fmt.Errorf("solver: unknown variable handle %d", v)
	}
	return nil
}

func (b *branchAndBound) checkConstraint(c Constraint) error {
	if int(c) < 0 || int(c) >= len(b.constraints) {
		return fmt.Errorf("solver: unknown constraint handle %d", c)
	}
	return nil
}

// Solve runs the branch-and-bound search. ctx bounds the search; if it is
// cancelled before the search completes, Solve returns whatever incumbent
// it has found (FeasibleWithinBudget) or ErrSolverFailure if it has found
// none.
func (b *branchAndBound) Solve(ctx context.Context) (Outcome, error) {
	n := len(b.vars)
	values := make([]int64, n)
	search := &search{b: b, ctx: ctx, values: values}

	search.run(0)
	b.solved = true

	if search.cancelled && search.best == nil {
		return 0, ErrSolverFailure
	}
	if search.best == nil {
		return Infeasible, ErrPlanInfeasible
	}

	b.best = search.best
	b.bestValue = search.bestValue

	if search.cancelled {
		return FeasibleWithinBudget, nil
	}
	return Optimal, nil
}

// search holds the mutable state of one branch-and-bound run.
type search struct {
	b         *branchAndBound
	ctx       context.Context
	values    []int64
	best      []int64
	bestValue float64
	cancelled bool
}

// run explores variable assignments for index i onward, depth-first,
// pruning branches whose admissible objective bound cannot beat the
// current incumbent, and branches that violate a constraint's achievable
// range given the remaining free variables.
func (s *search) run(i int) {
	if s.cancelled {
		return
	}
	select {
	case <-s.ctx.Done():
		s.cancelled = true
		return
	default:
	}

	if !s.feasiblePrefix(i) {
		return
	}
	if bound := s.objectiveLowerBound(i); s.best != nil && bound >= s.bestValue {
		return
	}

	if i == len(s.b.vars) {
		s.recordIncumbent()
		return
	}

	vd := s.b.vars[i]
	for val := vd.lo; val <= vd.hi; val++ {
		s.values[i] = val
		s.run(i + 1)
		if s.cancelled {
			return
		}
	}
}

// feasiblePrefix checks every constraint's achievable range given the
// fixed values for variables [0,assignedUpTo) and the domains of variables
// [assignedUpTo,n). A constraint is pruned only when it is impossible to
// satisfy regardless of how the remaining variables are assigned.
func (s *search) feasiblePrefix(assignedUpTo int) bool {
	for _, c := range s.b.constraints {
		var fixedSum, minRest, maxRest float64
		for v, coeff := range c.coeffs {
			if int(v) < assignedUpTo {
				fixedSum += coeff * float64(s.values[v])
				continue
			}
			vd := s.b.vars[v]
			lo, hi := float64(vd.lo)*coeff, float64(vd.hi)*coeff
			if lo > hi {
				lo, hi = hi, lo
			}
			minRest += lo
			maxRest += hi
		}
		if fixedSum+minRest > c.hi || fixedSum+maxRest < c.lo {
			return false
		}
	}
	return true
}

// objectiveLowerBound computes an admissible lower bound on the objective
// for any completion of the partial assignment [0,assignedUpTo): the fixed
// contribution of already-assigned variables plus, for each unassigned
// variable, its cheapest possible contribution over its domain.
func (s *search) objectiveLowerBound(assignedUpTo int) float64 {
	var total float64
	for v, coeff := range s.b.objective {
		if int(v) < assignedUpTo {
			total += coeff * float64(s.values[v])
			continue
		}
		vd := s.b.vars[v]
		lo, hi := coeff*float64(vd.lo), coeff*float64(vd.hi)
		if lo < hi {
			total += lo
		} else {
			total += hi
		}
	}
	return total
}

func (s *search) recordIncumbent() {
	var total float64
	for v, coeff := range s.b.objective {
		total += coeff * float64(s.values[v])
	}
	if s.best != nil && total >= s.bestValue {
		return
	}
	s.best = append([]int64(nil), s.values...)
	s.bestValue = total
}
