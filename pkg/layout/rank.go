package layout

import (
	"github.com/matzehuels/sugiyama/pkg/dag"
	"github.com/matzehuels/sugiyama/pkg/dag/transform"
)

// rankify assigns every vertex a rank via longest-path layering, then
// compacts (pushes each non-sink vertex down to one above its nearest
// child) to shorten edge spans before subdivision. Returns an
// InternalInvariant error if any vertex never reaches a rank, which can
// only happen if the forward subgraph still contains a cycle - a bug in
// [acyclify], not a condition valid input can trigger.
func rankify(d *dag.DAG) *Error {
	transform.AssignLayers(d)
	compactRanks(d)

	for _, e := range d.Edges() {
		src, _ := d.Node(e.From)
		dst, _ := d.Node(e.To)
		if dst.Row <= src.Row {
			return invariantf("layerer: edge %s->%s does not strictly increase rank (forward subgraph still has a cycle)", e.From, e.To)
		}
	}
	return nil
}

// compactRanks pushes each non-sink vertex down to one rank above its
// nearest child, shortening the edges that subdivision will otherwise
// expand into long dummy chains. This is a quality pass, not a correctness
// requirement (spec.md §4.2's optional "push-down" compaction) - every
// vertex still satisfies rank(child) > rank(parent) afterward, since it is
// only ever moved deeper, never shallower, than its longest-path rank.
func compactRanks(d *dag.DAG) {
	rows := make(map[string]int)
	for _, n := range d.Nodes() {
		rows[n.ID] = n.Row
	}

	maxRow := d.MaxRow()
	for r := maxRow - 1; r >= 0; r-- {
		for _, n := range d.NodesInRow(r) {
			children := d.Children(n.ID)
			if len(children) == 0 {
				continue
			}
			minChildRow := maxRow + 1
			for _, c := range children {
				if cr := rows[c]; cr < minChildRow {
					minChildRow = cr
				}
			}
			if target := minChildRow - 1; target > rows[n.ID] {
				rows[n.ID] = target
			}
		}
	}

	d.SetRows(rows)
}
