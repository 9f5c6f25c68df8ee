// Package properties defines the typed property bags attached to planner
// vertices: Thing properties for instance-level variables, Type properties
// for schema-level variables. These are plain value types — the planner
// graph (package pgraph) owns the decision of when they may be attached to
// a vertex and what that implies for hasIndex and the MILP objective.
package properties

// PredicateKind classifies a value predicate attached to a Thing vertex.
type PredicateKind int

const (
	// PredicateEQ is an equality predicate ("="). Equality predicates make
	// a type-restricted lookup cheap: the objective builder treats an
	// equality predicate over candidate types as an indexed point lookup
	// rather than a full scan.
	PredicateEQ PredicateKind = iota
	// PredicateNEQ is an inequality predicate ("!=").
	PredicateNEQ
	// PredicateLT, PredicateLTE, PredicateGT, PredicateGTE are ordering
	// predicates; none of them enable the equality-lookup objective
	// discount.
	PredicateLT
	PredicateLTE
	PredicateGT
	PredicateGTE
)

// Predicate is a single value constraint attached to a Thing vertex, e.g.
// "age = 30" or "name != \"root\"".
type Predicate struct {
	Kind  PredicateKind
	Value interface{}
}

// IsEquality reports whether p is an equality predicate.
func (p Predicate) IsEquality() bool {
	return p.Kind == PredicateEQ
}

// Thing holds the properties of an instance-level planner vertex.
//
// Zero value is a Thing vertex with no IID, no candidate types, and no
// predicates — such a vertex has hasIndex == false (see pgraph.Vertex.
// HasIndex) and can never be chosen as a traversal root.
type Thing struct {
	// IID, if non-empty, is an explicit instance handle: the cheapest
	// possible traversal root (objective coefficient 1).
	IID string
	// Types is the set of candidate type labels this variable may bind to.
	// Order is insignificant; callers should treat it as a set.
	Types []string
	// Predicates are the value constraints attached to this variable.
	Predicates []Predicate
}

// HasIID reports whether an explicit instance handle is present.
func (t Thing) HasIID() bool {
	return t.IID != ""
}

// HasTypes reports whether at least one candidate type label is present.
func (t Thing) HasTypes() bool {
	return len(t.Types) > 0
}

// HasEqualityPredicate reports whether any attached predicate is an
// equality predicate — the condition under which the objective builder
// treats a type-restricted Thing vertex as an indexed lookup rather than a
// full scan.
func (t Thing) HasEqualityPredicate() bool {
	for _, p := range t.Predicates {
		if p.IsEquality() {
			return true
		}
	}
	return false
}

// Type holds the properties of a schema-level planner vertex.
//
// Zero value is a Type vertex with no label, not abstract, no value-type,
// no regex. A Type vertex's hasIndex is always true regardless of which of
// these fields are populated.
type Type struct {
	// Label, if non-empty, is a concrete type name (objective coefficient 1).
	Label string
	// IsAbstract marks this Type vertex as ranging over all subtypes of an
	// abstract type (objective coefficient schemaGraph.typeCount()).
	IsAbstract bool
	// ValueType, if non-empty, restricts this Type vertex to attribute
	// types of the given value type (e.g. "long", "string").
	ValueType string
	// Regex, if non-empty, restricts this Type vertex to attribute types
	// whose values match the given pattern.
	Regex string
}

// HasLabel reports whether a concrete type label is present.
func (t Type) HasLabel() bool {
	return t.Label != ""
}

// HasValueConstraint reports whether a value-type or regex constraint is
// present (the condition for the attributeTypeCount() objective term).
func (t Type) HasValueConstraint() bool {
	return t.ValueType != "" || t.Regex != ""
}
