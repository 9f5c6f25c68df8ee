// Package identifier provides a stable, comparable handle for pattern
// variables flowing through the traversal planner.
//
// An ID distinguishes pattern vertices: two vertices sharing the same ID
// are the same vertex. IDs are opaque to the planner — it never parses or
// interprets their contents — but they are required to be deterministic and
// hashable so they can key Go maps and appear in solver variable/constraint
// names for diagnosability.
package identifier

import "fmt"

// ID is an opaque, comparable handle for a pattern variable.
//
// ID is backed by a plain string so the zero value ("") is a well-defined,
// comparable "no identifier" sentinel, and so IDs sort and print legibly in
// solver logs.
type ID string

// Empty reports whether id is the zero value.
func (id ID) Empty() bool {
	return id == ""
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// Namespaced returns id rendered into a solver-facing variable or
// constraint name following the convention
// "vertex::<part>::<id>::<field>" / "edge::<part>::<id>::<field>"
// from the external interface contract. prefix is the owning kind
// ("vertex" or "edge"); part is "var" or "con"; field names the specific
// decision variable or constraint.
func (id ID) Namespaced(prefix, part, field string) string {
	return fmt.Sprintf("%s::%s::%s::%s", prefix, part, id, field)
}
