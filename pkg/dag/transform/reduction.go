package transform

import "github.com/matzehuels/sugiyama/pkg/dag"

// TransitiveReduction removes edges that are implied by a longer path
// through the graph. If A->B and B->C exist, then a direct A->C edge is
// redundant and is removed.
//
// This is an optional pre-processing step, not part of the default layout
// pipeline: [BreakCycles]/[AssignLayers]/[Subdivide] and pkg/layout's
// ordering and positioning all preserve every edge the caller supplied, since the layout engine's
// contract is to draw exactly the graph it was given. Call
// TransitiveReduction explicitly before building a layout if redundant
// edges should be dropped rather than drawn.
//
// Assumes the graph is acyclic (run [BreakCycles] first if not). Time
// complexity is O(E*(V+E)) using one reachability search per edge.
func TransitiveReduction(g *dag.DAG) {
	var toRemove [][2]string

	for _, e := range g.Edges() {
		if hasIndirectPath(g, e.From, e.To) {
			toRemove = append(toRemove, [2]string{e.From, e.To})
		}
	}

	for _, e := range toRemove {
		g.RemoveEdge(e[0], e[1])
	}
}

// hasIndirectPath reports whether to is reachable from from via a path of
// length 2 or more (i.e. not just the direct edge).
func hasIndirectPath(g *dag.DAG, from, to string) bool {
	visited := make(map[string]bool)
	var stack []string
	for _, child := range g.Children(from) {
		if child != to {
			stack = append(stack, child)
		}
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == to {
			return true
		}
		if visited[n] {
			continue
		}
		visited[n] = true
		stack = append(stack, g.Children(n)...)
	}
	return false
}
