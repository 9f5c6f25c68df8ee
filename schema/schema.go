// Package schema defines the read-only schema-graph interface the planner
// consumes to populate its MILP objective, plus an in-memory
// reference implementation for tests and examples.
//
// The real schema graph lives in the surrounding storage engine and is a
// non-goal of this module; Static exists only so the planner is
// runnable and testable standalone.
package schema

// TypeHandle is a read-only view of a single schema type, narrow enough
// that a real storage engine's type catalogue can satisfy it directly
// (compare the pack's rdgDB GraphStorage / silhouette-db client
// interfaces: a small read-only surface a query layer consumes, never
// owns).
type TypeHandle interface {
	// InstanceCount returns the number of stored instances of this type.
	InstanceCount() uint64
}

// Graph is the read-only schema-graph interface consumed by the objective
// builder (package milp). Implementations must be safe for concurrent
// reads while the caller holds a ReadGuard; this module never
// calls a mutating method on it.
type Graph interface {
	// GetType resolves a type label (optionally within a scope, e.g. a
	// role scope for relation types) to a TypeHandle. ok is false if no
	// such type exists.
	GetType(name string, scope ...string) (handle TypeHandle, ok bool)
	// TypeCount returns the total number of types known to the schema,
	// used to cost an abstract Type vertex.
	TypeCount() uint64
	// AttributeTypeCount returns the total number of attribute types known
	// to the schema, used to cost a Type vertex constrained only by value
	// type or regex.
	AttributeTypeCount() uint64
}

// ReadGuard is a scoped placeholder for the schema-read lock the caller
// holds for the duration of objective population. The planner
// never acquires or releases it; it only requires one to be present so
// that callers cannot forget to hold the lock while calling Plan.
type ReadGuard interface {
	// Held reports whether the guard still represents a live read lock.
	// A real implementation backs this with a stamped/optimistic lock;
	// Static's guard is always held.
	Held() bool
}
