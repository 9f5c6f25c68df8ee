package pgraph

import (
	"github.com/latticedb/planner/identifier"
	"github.com/latticedb/planner/properties"
)

// Kind distinguishes the two planner vertex variants.
type Kind int

const (
	// KindThing marks an instance-level variable.
	KindThing Kind = iota
	// KindType marks a schema-level variable.
	KindType
)

func (k Kind) String() string {
	switch k {
	case KindThing:
		return "thing"
	case KindType:
		return "type"
	default:
		return "unknown"
	}
}

// Direction marks which orientation of a reified pattern edge a directional
// Edge represents.
type Direction int

const (
	// Forward is the from→to orientation as originally given to AddEdge.
	Forward Direction = iota
	// Backward is the to→from orientation (the mirror of Forward).
	Backward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// VertexIndex and EdgeIndex key the Graph's internal tables. They are only
// valid with respect to the Graph that produced them.
type VertexIndex int
type EdgeIndex int

// Vertex is a planner-internal reification of a pattern variable. It is a
// tagged sum type: callers must check Kind before calling Thing or Type.
type Vertex struct {
	id       identifier.ID
	kind     Kind
	thing    *properties.Thing
	typ      *properties.Type
	propsSet bool
	hasIndex bool

	ins  []EdgeIndex
	outs []EdgeIndex

	// Decoded values, populated by the solver-driven decode step.
	// Zero until Decoded is true.
	Decoded                 bool
	ValueIsStartingVertex   bool
	ValueIsEndingVertex     bool
	ValueHasIncomingEdges   bool
	ValueHasOutgoingEdges   bool
	ValueUnselectedIncoming int
	ValueUnselectedOutgoing int
}

// ID returns the vertex's stable pattern identifier.
func (v *Vertex) ID() identifier.ID { return v.id }

// Kind returns whether this is a Thing or Type vertex.
func (v *Vertex) Kind() Kind { return v.kind }

// HasIndex reports whether this vertex is eligible to be a traversal
// starting point: a Thing vertex needs an IID or at least one
// candidate type; a Type vertex is always eligible.
func (v *Vertex) HasIndex() bool { return v.hasIndex }

// Thing returns the vertex's Thing properties. Returns ErrIllegalCast if
// the vertex is a Type vertex.
func (v *Vertex) Thing() (*properties.Thing, error) {
	if v.kind != KindThing {
		return nil, wrapf("Thing", v.id, ErrIllegalCast)
	}
	if v.thing == nil {
		return &properties.Thing{}, nil
	}
	return v.thing, nil
}

// Type returns the vertex's Type properties. Returns ErrIllegalCast if the
// vertex is a Thing vertex.
func (v *Vertex) Type() (*properties.Type, error) {
	if v.kind != KindType {
		return nil, wrapf("Type", v.id, ErrIllegalCast)
	}
	if v.typ == nil {
		return &properties.Type{}, nil
	}
	return v.typ, nil
}

// Ins returns the indices of this vertex's incoming directional edges.
// The returned slice is owned by the graph; callers must not mutate it.
func (v *Vertex) Ins() []EdgeIndex { return v.ins }

// Outs returns the indices of this vertex's outgoing directional edges.
// The returned slice is owned by the graph; callers must not mutate it.
func (v *Vertex) Outs() []EdgeIndex { return v.outs }

// InDegree and OutDegree count this vertex's incoming and outgoing
// directional edges.
func (v *Vertex) InDegree() int  { return len(v.ins) }
func (v *Vertex) OutDegree() int { return len(v.outs) }

// Edge is one directional orientation of a reified pattern edge. Each
// undirected pattern edge produces exactly two Edges, a Forward/Backward
// pair, related by Pair (pair.Pair == this edge's own index, and
// from/to are mirrored — see Graph.AddEdge).
type Edge struct {
	From, To VertexIndex
	Label    string
	Dir      Direction
	Pair     EdgeIndex
	Metadata interface{}

	// ValueIsSelected is the decoded value of varIsSelected(e), populated
	// by the solver-driver decode step.
	Decoded         bool
	ValueIsSelected bool
}
