package pgraph

import (
	"github.com/latticedb/planner/identifier"
	"github.com/latticedb/planner/properties"
)

// Graph owns every Vertex and Edge for the duration of one planning call. A
// planner instance services one pattern at a time and is never shared
// across goroutines, so Graph carries no internal locking. Unlike a
// general-purpose, possibly concurrently-accessed graph library type, this
// one has no concurrent-mutation scenario to guard against.
type Graph struct {
	vertices []*Vertex
	edges    []*Edge
	index    map[identifier.ID]VertexIndex
}

// NewGraph returns an empty planner graph.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[identifier.ID]VertexIndex),
	}
}

// AddVertex registers a vertex under id with the given kind. It is
// idempotent in id: a second call with the same id and kind returns the
// existing vertex's index. A second call with a different kind fails with
// ErrInconsistentVertexKind.
func (g *Graph) AddVertex(id identifier.ID, kind Kind) (VertexIndex, error) {
	if idx, ok := g.index[id]; ok {
		existing := g.vertices[idx]
		if existing.kind != kind {
			return 0, wrapf("AddVertex", id, ErrInconsistentVertexKind)
		}
		return idx, nil
	}

	idx := VertexIndex(len(g.vertices))
	v := &Vertex{id: id, kind: kind}
	if kind == KindType {
		// Type vertices are always index-eligible.
		v.hasIndex = true
	}
	g.vertices = append(g.vertices, v)
	g.index[id] = idx

	return idx, nil
}

// AddEdge reifies an undirected pattern edge between from and to: it
// creates a forward (from→to) and backward (to→from) directional edge
// pair, registers forward as outgoing on from / incoming on to, and
// backward as outgoing on to / incoming on from.
func (g *Graph) AddEdge(from, to VertexIndex, label string, metadata interface{}) (fwd, bwd EdgeIndex, err error) {
	if err := g.checkVertex(from); err != nil {
		return 0, 0, err
	}
	if err := g.checkVertex(to); err != nil {
		return 0, 0, err
	}

	fwd = EdgeIndex(len(g.edges))
	forward := &Edge{From: from, To: to, Label: label, Dir: Forward, Metadata: metadata}
	g.edges = append(g.edges, forward)

	bwd = EdgeIndex(len(g.edges))
	backward := &Edge{From: to, To: from, Label: label, Dir: Backward, Metadata: metadata}
	g.edges = append(g.edges, backward)

	forward.Pair = bwd
	backward.Pair = fwd

	g.vertices[from].outs = append(g.vertices[from].outs, fwd)
	g.vertices[to].ins = append(g.vertices[to].ins, fwd)
	g.vertices[to].outs = append(g.vertices[to].outs, bwd)
	g.vertices[from].ins = append(g.vertices[from].ins, bwd)

	return fwd, bwd, nil
}

// SetThingProperties attaches properties to a Thing vertex: hasIndex
// becomes (has IID) ∨ (type set non-empty). Properties may be set at most
// once per vertex.
func (g *Graph) SetThingProperties(idx VertexIndex, p properties.Thing) error {
	if err := g.checkVertex(idx); err != nil {
		return err
	}
	v := g.vertices[idx]
	if v.kind != KindThing {
		return wrapf("SetThingProperties", v.id, ErrIllegalCast)
	}
	if v.propsSet {
		return wrapf("SetThingProperties", v.id, ErrPropertiesAlreadySet)
	}

	pp := p
	v.thing = &pp
	v.propsSet = true
	v.hasIndex = p.HasIID() || p.HasTypes()

	return nil
}

// SetTypeProperties implements setProperties for a Type vertex. hasIndex
// remains true regardless of which fields are populated.
func (g *Graph) SetTypeProperties(idx VertexIndex, p properties.Type) error {
	if err := g.checkVertex(idx); err != nil {
		return err
	}
	v := g.vertices[idx]
	if v.kind != KindType {
		return wrapf("SetTypeProperties", v.id, ErrIllegalCast)
	}
	if v.propsSet {
		return wrapf("SetTypeProperties", v.id, ErrPropertiesAlreadySet)
	}

	pp := p
	v.typ = &pp
	v.propsSet = true
	v.hasIndex = true

	return nil
}

// Vertex returns the vertex at idx, or nil if idx is out of range.
func (g *Graph) Vertex(idx VertexIndex) *Vertex {
	if idx < 0 || int(idx) >= len(g.vertices) {
		return nil
	}
	return g.vertices[idx]
}

// Edge returns the edge at idx, or nil if idx is out of range.
func (g *Graph) Edge(idx EdgeIndex) *Edge {
	if idx < 0 || int(idx) >= len(g.edges) {
		return nil
	}
	return g.edges[idx]
}

// VertexIndexOf looks up the index of a previously added vertex by its
// pattern identifier.
func (g *Graph) VertexIndexOf(id identifier.ID) (VertexIndex, bool) {
	idx, ok := g.index[id]
	return idx, ok
}

// NumVertices and NumEdges report the current size of the graph.
func (g *Graph) NumVertices() int { return len(g.vertices) }
func (g *Graph) NumEdges() int    { return len(g.edges) }

// Vertices returns all vertex indices in insertion order.
func (g *Graph) Vertices() []VertexIndex {
	out := make([]VertexIndex, len(g.vertices))
	for i := range g.vertices {
		out[i] = VertexIndex(i)
	}
	return out
}

// Edges returns all edge indices in insertion order (forward/backward pairs
// interleaved, as created by AddEdge).
func (g *Graph) Edges() []EdgeIndex {
	out := make([]EdgeIndex, len(g.edges))
	for i := range g.edges {
		out[i] = EdgeIndex(i)
	}
	return out
}

func (g *Graph) checkVertex(idx VertexIndex) error {
	if idx < 0 || int(idx) >= len(g.vertices) {
		return ErrUnknownVertex
	}
	return nil
}
