// Package milp builds the MILP model — variables, constraints, and
// objective coefficients — encoding plan validity for one planner graph.
// It depends on package solver only through the solver.Backend interface,
// so the actual numeric solve is pluggable.
package milp

import "errors"

// ErrConstraintInitBeforeVariableInit is returned by InitConstraints when
// InitVariables has not yet completed for this Model: constraints reference
// every edge's varIsSelected, which only exists after variable init.
var ErrConstraintInitBeforeVariableInit = errors.New("milp: constraint init attempted before variable init")
