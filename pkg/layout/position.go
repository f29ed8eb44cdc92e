package layout

import "github.com/matzehuels/sugiyama/pkg/dag"

// assignPositions runs the centered-barycenter positioning pass: each
// vertex's x starts at its order index times NodeSeparation, offset so its
// row is centered under the widest row in the graph (the original engine's
// start_offset = (maxWidth-width)*NodeSeparation*0.5), then a bounded number
// of up/down sweeps replace it with the average x of its neighbors in the
// row last visited, followed by a left-to-right monotonicity repair - the
// same "sort by current x, push right if closer than the minimum gap" rule
// as ha1tch-fsm-toolkit's resolveOverlapsWithWidths, simplified to a uniform
// NodeSeparation since this engine does not size vertices by label.
//
// y is rank * RankSeparation; x/y are swapped only at emission time for
// [LeftToRight], so this function always works in the TopToBottom frame.
func assignPositions(d *dag.DAG, opts Options) map[string]Point {
	rows := d.RowIDs()

	maxWidth := 0
	for _, r := range rows {
		if w := len(d.NodesInRow(r)); w > maxWidth {
			maxWidth = w
		}
	}

	x := make(map[string]float64)
	for _, r := range rows {
		nodes := d.NodesInRow(r)
		offset := float64(maxWidth-len(nodes)) * opts.NodeSeparation * 0.5
		for i, n := range nodes {
			x[n.ID] = offset + float64(i)*opts.NodeSeparation
		}
	}

	sweeps := opts.MaxSweeps
	if sweeps <= 0 {
		sweeps = 24
	}

	for sweep := 0; sweep < sweeps; sweep++ {
		down := sweep%2 == 0
		if down {
			for i := 1; i < len(rows); i++ {
				sweepRow(d, x, rows[i], rows[i-1], true, opts.NodeSeparation)
			}
		} else {
			for i := len(rows) - 2; i >= 0; i-- {
				sweepRow(d, x, rows[i], rows[i+1], false, opts.NodeSeparation)
			}
		}
	}

	points := make(map[string]Point, len(x))
	for _, r := range d.RowIDs() {
		for _, n := range d.NodesInRow(r) {
			points[n.ID] = Point{X: x[n.ID], Y: float64(r) * opts.RankSeparation}
		}
	}
	return points
}

// sweepRow replaces each vertex of row with the average x of its
// useParents-selected neighbors in adjacent, then repairs monotonicity
// left-to-right in row's current order.
func sweepRow(d *dag.DAG, x map[string]float64, row, adjacent int, useParents bool, sep float64) {
	nodes := d.NodesInRow(row)
	for _, n := range nodes {
		var neighbors []string
		if useParents {
			neighbors = d.Parents(n.ID)
		} else {
			neighbors = d.Children(n.ID)
		}
		if len(neighbors) == 0 {
			continue
		}
		sum := 0.0
		for _, nb := range neighbors {
			sum += x[nb]
		}
		x[n.ID] = sum / float64(len(neighbors))
	}

	for i := 1; i < len(nodes); i++ {
		prev, curr := nodes[i-1].ID, nodes[i].ID
		if min := x[prev] + sep; x[curr] < min {
			x[curr] = min
		}
	}
}
