package layout

import "github.com/matzehuels/sugiyama/pkg/dag/transform"

// acyclify breaks cycles in b's internal DAG, reversing feedback edges in
// place, and records which canonical edges were flipped so the emitter can
// restore the caller's original direction later.
//
// The DFS-based feedback-arc-set heuristic guarantees the combined edge set
// (untouched edges plus flipped ones, now pointing in the forward DFS
// finish-time order) is acyclic as a whole - the layerer that follows does
// not need to treat reversed edges any differently from ordinary ones.
func acyclify[N comparable](b *built[N]) {
	transform.BreakCycles(b.d)
	b.captureReversed()
}
