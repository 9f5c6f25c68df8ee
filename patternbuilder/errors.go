// Package patternbuilder is a small fluent DSL for constructing
// pgraph.Graph patterns in tests and examples: chains, stars, and isa
// edges over named Thing/Type vertices, without each caller hand-rolling
// AddVertex/AddEdge/SetProperties call sequences.
//
// This is test/example scaffolding, not a production entry point — the
// planner itself is agnostic to how a *pgraph.Graph was assembled.
package patternbuilder

import (
	"errors"
	"fmt"
)

// ErrUnknownVertex is wrapped into the panic value raised when Edge, Chain,
// or Star references a name that was never registered via Thing or Type.
var ErrUnknownVertex = errors.New("patternbuilder: unknown vertex name")

func wrapf(method, name string, err error) error {
	return fmt.Errorf("patternbuilder: %s(%s): %w", method, name, err)
}
