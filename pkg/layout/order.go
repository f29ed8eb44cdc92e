package layout

import (
	"github.com/matzehuels/sugiyama/pkg/dag"
	"github.com/matzehuels/sugiyama/pkg/render/tower/ordering"
)

// seedInitialOrder computes the orderer's starting permutation per rank: a
// breadth-first traversal from rank-0 vertices, visiting order within a
// rank determined by first-visit time (spec.md §4.3's "Initial order").
// Disconnected components are seeded in input-index order, since [dag.DAG]
// enumerates vertices deterministically in AddNode call order.
//
// The computed order is written back onto d via [dag.DAG.ReorderRow], so it
// becomes the baseline [ordering.Barycentric] and [ordering.OptimalSearch]
// refine from (both read a rank's current NodesInRow order as their seed).
func seedInitialOrder(d *dag.DAG) {
	visited := make(map[string]bool, d.NodeCount())
	perRank := make(map[int][]string)

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		n, _ := d.Node(id)
		perRank[n.Row] = append(perRank[n.Row], id)
	}

	var queue []string
	for _, n := range d.NodesInRow(0) {
		visit(n.ID)
		queue = append(queue, n.ID)
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, child := range d.Children(id) {
			if !visited[child] {
				visit(child)
				queue = append(queue, child)
			}
		}
	}

	// Any vertex unreached from rank 0 (disconnected component not rooted
	// at a source) is seeded in deterministic input-index order.
	for _, n := range d.Nodes() {
		visit(n.ID)
	}

	for row, ids := range perRank {
		d.ReorderRow(row, ids)
	}
}

// order runs the iterative crossing-reduction sweep and persists the final
// permutation onto d, returning the measured crossing count.
func order(d *dag.DAG, opts Options) (int, *Error) {
	seedInitialOrder(d)

	heuristic := ordering.HeuristicMedian
	if opts.CrossingHeuristic == Barycenter {
		heuristic = ordering.HeuristicBarycenter
	}

	orders := ordering.Barycentric{
		Passes:          opts.MaxSweeps,
		Heuristic:       heuristic,
		ExhaustiveBelow: opts.ExhaustiveBelow,
	}.OrderRows(d)

	for _, r := range d.RowIDs() {
		nodes := d.NodesInRow(r)
		perm := make(map[string]bool, len(nodes))
		for _, id := range orders[r] {
			perm[id] = true
		}
		if len(orders[r]) != len(nodes) {
			return 0, invariantf("orderer: rank %d order has %d entries, want %d", r, len(orders[r]), len(nodes))
		}
		for _, n := range nodes {
			if !perm[n.ID] {
				return 0, invariantf("orderer: rank %d order is not a permutation of its vertices", r)
			}
		}
		d.ReorderRow(r, orders[r])
	}

	return dag.CountCrossings(d, orders), nil
}
