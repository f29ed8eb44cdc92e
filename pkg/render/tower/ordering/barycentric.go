package ordering

import (
	"cmp"
	"slices"

	"github.com/matzehuels/sugiyama/pkg/dag"
	"github.com/matzehuels/sugiyama/pkg/dag/perm"
)

// Heuristic selects the positional weight used by [Barycentric] when
// re-ordering a row relative to its already-ordered neighbor.
type Heuristic int

const (
	// HeuristicBarycenter weights a node by the mean position of its
	// neighbors in the adjacent row.
	HeuristicBarycenter Heuristic = iota
	// HeuristicMedian weights a node by the median position of its
	// neighbors. On an even neighbor count the two middle values are
	// blended, each weighted by the spread of the neighbors on the
	// opposite side; if either outer spread is zero, the left (lower)
	// middle value is used.
	HeuristicMedian
)

// Barycentric orders rows by iteratively sweeping up and down the layering,
// re-sorting each row by the mean (or median) position of its neighbors in
// the row last visited. This is the classic Sugiyama crossing-reduction
// heuristic: cheap, deterministic, and good in practice though not optimal.
//
// Passes caps the number of up/down sweeps (a sweep in each direction
// counts as one pass); the zero value uses 24, matching the layout engine's
// default max_sweeps. ExhaustiveBelow, if positive, orders any row with at
// most that many nodes by brute-force search over all permutations instead
// of the heuristic, guaranteeing a locally optimal ordering for small rows.
type Barycentric struct {
	Passes          int
	Heuristic       Heuristic
	ExhaustiveBelow int
}

// OrderRows computes a left-to-right ordering for every row in g that
// minimizes (heuristically) the number of edge crossings between adjacent
// rows.
func (b Barycentric) OrderRows(g *dag.DAG) map[int][]string {
	rows := g.RowIDs()
	orders := make(map[int][]string, len(rows))
	for _, r := range rows {
		orders[r] = dag.NodeIDs(g.NodesInRow(r))
	}
	if len(rows) < 2 {
		return orders
	}

	passes := b.Passes
	if passes <= 0 {
		passes = 24
	}

	best := cloneOrders(orders)
	bestCrossings := dag.CountCrossings(g, best)

	for sweep := 0; sweep < passes; sweep++ {
		down := sweep%2 == 0
		candidate := cloneOrders(orders)
		if down {
			for i := 1; i < len(rows); i++ {
				b.reorderRow(g, candidate, rows[i], rows[i-1], true)
			}
		} else {
			for i := len(rows) - 2; i >= 0; i-- {
				b.reorderRow(g, candidate, rows[i], rows[i+1], false)
			}
		}

		crossings := dag.CountCrossings(g, candidate)
		if crossings > bestCrossings {
			// Spec acceptance rule: a sweep that does not strictly improve
			// on the best ordering found so far is rejected and the loop
			// stops, rather than drifting away from a local optimum.
			break
		}
		improved := crossings < bestCrossings
		orders = candidate
		if improved {
			best = cloneOrders(orders)
			bestCrossings = crossings
		}
		if !improved {
			break
		}
	}

	return best
}

func (b Barycentric) reorderRow(g *dag.DAG, orders map[int][]string, row, adjacent int, useParents bool) {
	nodes := orders[row]
	if len(nodes) < 2 {
		return
	}
	adjPos := dag.PosMap(orders[adjacent])

	if b.ExhaustiveBelow > 0 && len(nodes) <= b.ExhaustiveBelow && len(nodes) <= 8 {
		orders[row] = exhaustiveOrder(g, nodes, adjPos, useParents)
		return
	}

	type weighted struct {
		id     string
		weight float64
		hasNbr bool
		prevAt int
	}
	prevPos := dag.PosMap(nodes)
	ws := make([]weighted, len(nodes))
	for i, id := range nodes {
		var neighborPos []int
		var nbrIDs []string
		if useParents {
			nbrIDs = g.Parents(id)
		} else {
			nbrIDs = g.Children(id)
		}
		for _, n := range nbrIDs {
			if p, ok := adjPos[n]; ok {
				neighborPos = append(neighborPos, p)
			}
		}
		w := weighted{id: id, prevAt: prevPos[id]}
		if len(neighborPos) > 0 {
			w.hasNbr = true
			slices.Sort(neighborPos)
			if b.Heuristic == HeuristicMedian {
				w.weight = medianWeight(neighborPos)
			} else {
				w.weight = barycenterWeight(neighborPos)
			}
		}
		ws[i] = w
	}

	slices.SortStableFunc(ws, func(a, c weighted) int {
		if !a.hasNbr && !c.hasNbr {
			return a.prevAt - c.prevAt
		}
		if !a.hasNbr {
			return 1
		}
		if !c.hasNbr {
			return -1
		}
		if d := cmp.Compare(a.weight, c.weight); d != 0 {
			return d
		}
		return a.prevAt - c.prevAt
	})

	reordered := make([]string, len(ws))
	for i, w := range ws {
		reordered[i] = w.id
	}
	orders[row] = reordered
}

func barycenterWeight(positions []int) float64 {
	sum := 0
	for _, p := range positions {
		sum += p
	}
	return float64(sum) / float64(len(positions))
}

// medianWeight implements the left-biased median. positions must already be
// sorted ascending.
//
// For an odd neighbor count, the middle value is returned outright. For an
// even count, the two middle values (p[mid-1], p[mid]) are blended toward
// whichever side has less room to move: gap1 is the space between the row's
// leftmost neighbor and p[mid-1], gap2 the space between p[mid] and the
// rightmost neighbor. When both gaps are positive, the weight is
//
//	w = p[mid-1]*gap2/(gap1+gap2) + p[mid]*gap1/(gap1+gap2)
//
// which pulls the result toward the middle value with the tighter
// surrounding gap. If either gap is zero (duplicate positions at an edge),
// there is no room to bias by, so this falls back to the plain lower median,
// keeping ties deterministic and slightly preferring the left side of the
// row.
func medianWeight(positions []int) float64 {
	n := len(positions)
	if n == 0 {
		return 0
	}
	mid := n / 2
	if n%2 == 1 {
		return float64(positions[mid])
	}

	left, right := positions[mid-1], positions[mid]
	gap1 := float64(left - positions[0])
	gap2 := float64(positions[n-1] - right)
	if gap1 <= 0 || gap2 <= 0 {
		return float64(left)
	}
	return (float64(left)*gap2 + float64(right)*gap1) / (gap1 + gap2)
}

func exhaustiveOrder(g *dag.DAG, nodes []string, adjPos map[string]int, useParents bool) []string {
	best := slices.Clone(nodes)
	bestCrossings := -1

	for _, p := range perm.Generate(len(nodes), 0) {
		candidate := make([]string, len(nodes))
		for i, idx := range p {
			candidate[i] = nodes[idx]
		}
		crossings := countAgainstAdjacent(g, candidate, adjPos, useParents)
		if bestCrossings < 0 || crossings < bestCrossings {
			bestCrossings = crossings
			best = candidate
		}
	}
	return best
}

func countAgainstAdjacent(g *dag.DAG, row []string, adjPos map[string]int, useParents bool) int {
	crossings := 0
	for i := 0; i < len(row); i++ {
		for j := i + 1; j < len(row); j++ {
			crossings += dag.CountPairCrossingsWithPos(g, row[i], row[j], adjPos, useParents)
		}
	}
	return crossings
}

func cloneOrders(orders map[int][]string) map[int][]string {
	out := make(map[int][]string, len(orders))
	for k, v := range orders {
		out[k] = slices.Clone(v)
	}
	return out
}
