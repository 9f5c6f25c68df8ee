package pgraph

// Components partitions the graph's vertices into weakly connected
// components (ignoring directional edge orientation), using a disjoint-set
// (union-find) structure with path compression and union by rank, the same
// technique a minimum-spanning-tree construction uses, adapted here from
// vertex-pair edges to forward/backward directional edge pairs.
//
// The constraint model imposes no explicit "exactly one start per
// component" rule; per-component root uniqueness emerges from flow
// conservation plus the objective's preference for cheap roots. Components
// exists so callers (tests, decode) can verify that emergent property
// directly instead of trusting the solver blindly.
//
// Complexity: O(V·α(V) + E) time, O(V) space.
func (g *Graph) Components() [][]VertexIndex {
	n := len(g.vertices)
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	var find func(x int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			ra, rb = rb, ra
		}
		parent[rb] = ra
		if rank[ra] == rank[rb] {
			rank[ra]++
		}
	}

	// Only forward edges need to be unioned: a backward edge connects the
	// same two vertices as its forward sibling, so visiting both would be
	// redundant work.
	for _, e := range g.edges {
		if e.Dir != Forward {
			continue
		}
		union(int(e.From), int(e.To))
	}

	groups := make(map[int][]VertexIndex)
	var order []int
	for i := 0; i < n; i++ {
		root := find(i)
		if _, seen := groups[root]; !seen {
			order = append(order, root)
		}
		groups[root] = append(groups[root], VertexIndex(i))
	}

	out := make([][]VertexIndex, 0, len(order))
	for _, root := range order {
		out = append(out, groups[root])
	}
	return out
}
