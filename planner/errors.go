package planner

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/latticedb/planner/solver"
)

// PlanInfeasible and SolverFailure are the planner-level sentinel kinds a
// caller can match with errors.Is against a returned *PlanError.
// They wrap the underlying solver package's sentinels rather than
// duplicating them.
var (
	// ErrPlanInfeasible surfaces solver.ErrPlanInfeasible: the pattern graph
	// has no feasible root (a well-formed pattern is always feasible; this
	// indicates a construction bug or a disconnected, unindexed component).
	ErrPlanInfeasible = fmt.Errorf("planner: plan is infeasible: %w", solver.ErrPlanInfeasible)

	// ErrSolverFailure surfaces solver.ErrSolverFailure: the backend errored
	// outright, including a timeout with no feasible solution found.
	ErrSolverFailure = fmt.Errorf("planner: solver failed: %w", solver.ErrSolverFailure)

	// ErrConstructionFailed marks a failure outside the solve itself: a
	// read guard that is not held, a nil pattern, or an error while building
	// the model or decoding the solution. All are fatal to the planning
	// call. The underlying pgraph/milp/solver error is not wrapped; its text
	// is carried in PlanError.Message.
	ErrConstructionFailed = errors.New("planner: pattern construction failed")
)

// PlanError carries a sentinel kind, a human-readable message, and the
// correlation id of the planning call that produced it, so operators can
// grep the structured solver log for the same id.
type PlanError struct {
	Kind          error
	Message       string
	CorrelationID uuid.UUID
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("planner[%s]: %s: %s", e.CorrelationID, e.Kind, e.Message)
}

// Unwrap lets errors.Is/errors.As match against e.Kind.
func (e *PlanError) Unwrap() error { return e.Kind }

func newPlanError(id uuid.UUID, kind error, format string, args ...interface{}) *PlanError {
	return &PlanError{Kind: kind, Message: fmt.Sprintf(format, args...), CorrelationID: id}
}
