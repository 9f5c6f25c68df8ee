package patternbuilder

import (
	"github.com/latticedb/planner/identifier"
	"github.com/latticedb/planner/pgraph"
	"github.com/latticedb/planner/properties"
)

// Builder accumulates named vertices and edges into a *pgraph.Graph.
// Every method panics on a construction error (unknown vertex name,
// inconsistent kind) since patterns built through this DSL are fixed test
// or example fixtures, not runtime input — the same "panic confined to
// construction helpers" policy functional-options constructors use for
// malformed option values.
type Builder struct {
	graph  *pgraph.Graph
	byName map[string]pgraph.VertexIndex
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{
		graph:  pgraph.NewGraph(),
		byName: make(map[string]pgraph.VertexIndex),
	}
}

// ThingOption configures a Thing vertex added via Builder.Thing.
type ThingOption func(*properties.Thing)

// WithIID sets the Thing's explicit instance handle.
func WithIID(iid string) ThingOption {
	return func(t *properties.Thing) { t.IID = iid }
}

// WithTypes sets the Thing's candidate type labels.
func WithTypes(types ...string) ThingOption {
	return func(t *properties.Thing) { t.Types = types }
}

// WithEqualityPredicate attaches an equality predicate over value to the
// Thing (condition for the cheaper, indexed-lookup objective
// term over a type-restricted Thing vertex).
func WithEqualityPredicate(value interface{}) ThingOption {
	return func(t *properties.Thing) {
		t.Predicates = append(t.Predicates, properties.Predicate{Kind: properties.PredicateEQ, Value: value})
	}
}

// Thing registers a Thing vertex under name, applying opts to its
// properties.
func (b *Builder) Thing(name string, opts ...ThingOption) *Builder {
	idx, err := b.graph.AddVertex(identifier.ID(name), pgraph.KindThing)
	if err != nil {
		panic(wrapf("Thing", name, err))
	}
	var p properties.Thing
	for _, opt := range opts {
		opt(&p)
	}
	if err := b.graph.SetThingProperties(idx, p); err != nil {
		panic(wrapf("Thing", name, err))
	}
	b.byName[name] = idx
	return b
}

// TypeOption configures a Type vertex added via Builder.Type.
type TypeOption func(*properties.Type)

// WithLabel sets the Type's concrete label.
func WithLabel(label string) TypeOption {
	return func(t *properties.Type) { t.Label = label }
}

// Abstract marks the Type as ranging over all subtypes of an abstract type.
func Abstract() TypeOption {
	return func(t *properties.Type) { t.IsAbstract = true }
}

// WithValueType restricts the Type to attribute types of the given value
// type.
func WithValueType(valueType string) TypeOption {
	return func(t *properties.Type) { t.ValueType = valueType }
}

// WithRegex restricts the Type to attribute types whose values match
// pattern.
func WithRegex(pattern string) TypeOption {
	return func(t *properties.Type) { t.Regex = pattern }
}

// Type registers a Type vertex under name, applying opts to its
// properties.
func (b *Builder) Type(name string, opts ...TypeOption) *Builder {
	idx, err := b.graph.AddVertex(identifier.ID(name), pgraph.KindType)
	if err != nil {
		panic(wrapf("Type", name, err))
	}
	var p properties.Type
	for _, opt := range opts {
		opt(&p)
	}
	if err := b.graph.SetTypeProperties(idx, p); err != nil {
		panic(wrapf("Type", name, err))
	}
	b.byName[name] = idx
	return b
}

// Edge reifies an undirected pattern edge between two already-registered
// vertex names, with the given label.
func (b *Builder) Edge(from, to, label string) *Builder {
	fromIdx, err := b.resolve(from)
	if err != nil {
		panic(wrapf("Edge", from, err))
	}
	toIdx, err := b.resolve(to)
	if err != nil {
		panic(wrapf("Edge", to, err))
	}
	if _, _, err := b.graph.AddEdge(fromIdx, toIdx, label, nil); err != nil {
		panic(wrapf("Edge", from+"-"+to, err))
	}
	return b
}

// Chain connects ids[0]—ids[1]—…—ids[n-1] in sequence with label, a common
// linear pattern shape.
func (b *Builder) Chain(label string, ids ...string) *Builder {
	for i := 0; i+1 < len(ids); i++ {
		b.Edge(ids[i], ids[i+1], label)
	}
	return b
}

// Star connects center to every leaf with label, a common hub-and-spoke
// pattern shape.
func (b *Builder) Star(center, label string, leaves ...string) *Builder {
	for _, leaf := range leaves {
		b.Edge(center, leaf, label)
	}
	return b
}

// Graph returns the constructed pattern graph.
func (b *Builder) Graph() *pgraph.Graph {
	return b.graph
}

// VertexIndexOf returns the VertexIndex registered under name, for tests
// that need to inspect decoded vertex state directly.
func (b *Builder) VertexIndexOf(name string) (pgraph.VertexIndex, bool) {
	idx, ok := b.byName[name]
	return idx, ok
}

func (b *Builder) resolve(name string) (pgraph.VertexIndex, error) {
	idx, ok := b.byName[name]
	if !ok {
		return 0, ErrUnknownVertex
	}
	return idx, nil
}
