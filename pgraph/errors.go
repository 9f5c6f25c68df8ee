// Package pgraph implements the planner graph: an in-memory, directed
// multigraph of planner vertices and directional planner edges, built from
// a normalized pattern. Each undirected pattern edge is reified as a
// forward/backward pair of directional edges, letting the MILP model
// choose a traversal direction per edge (see package milp).
//
// Vertices and edges are stored in index-keyed tables rather than as
// cyclic pointer structures: adjacency lists hold edge indices, and edges
// hold vertex indices. This keeps the graph trivially walkable and
// serializable despite the natural vertex↔edge cyclic references.
package pgraph

import (
	"errors"
	"fmt"
)

// ErrInconsistentVertexKind is returned by AddVertex when an identifier
// already present in the graph is re-added with a different Kind.
var ErrInconsistentVertexKind = errors.New("pgraph: vertex re-added with a different kind")

// ErrPropertiesAlreadySet is returned when SetThingProperties or
// SetTypeProperties is called a second time for the same vertex.
var ErrPropertiesAlreadySet = errors.New("pgraph: properties already set for vertex")

// ErrIllegalCast is returned by Vertex.Thing / Vertex.Type when the vertex
// is not of the requested kind.
var ErrIllegalCast = errors.New("pgraph: vertex is not of the requested kind")

// ErrUnknownVertex is returned when an operation references a VertexIndex
// outside the graph's current bounds.
var ErrUnknownVertex = errors.New("pgraph: unknown vertex index")

// wrapf attaches method context to a sentinel error without losing errors.Is
// matchability.
func wrapf(method string, id fmt.Stringer, err error) error {
	return fmt.Errorf("pgraph: %s(%s): %w", method, id, err)
}
