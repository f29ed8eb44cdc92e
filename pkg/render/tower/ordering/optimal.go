package ordering

import (
	"context"
	"slices"
	"time"

	"github.com/matzehuels/sugiyama/pkg/dag"
	"github.com/matzehuels/sugiyama/pkg/dag/perm"
)

// DebugInfo summarizes one [OptimalSearch.OrderRows] run, reported through
// the Debug callback once the search finishes.
type DebugInfo struct {
	TotalRows int
	MaxDepth  int
	Rows      []RowDebugInfo
}

// RowDebugInfo reports the branch-and-bound search space considered for a
// single row.
type RowDebugInfo struct {
	Row        int
	NodeCount  int
	Candidates int
}

// OptimalSearch finds a row ordering that minimizes total edge crossings by
// exhaustively searching row permutations, seeded from a [Barycentric]
// baseline and refined row-by-row until no row's permutation space can
// improve on the current best, or Timeout elapses.
//
// True global optimality (searching the joint space of all rows at once)
// is combinatorially infeasible beyond a handful of rows; this instead
// performs per-row exhaustive search against the two fixed neighboring
// rows, iterated to a fixed point, which is optimal for any row whose
// neighbors do not change again and never worse than the heuristic
// baseline, since a row's order is only replaced when that lowers its
// crossings. Rows with more than 10 nodes
// fall back to the heuristic for that row, since 10! permutations already
// exceeds what a timeout-bounded search should attempt.
//
// Progress, if set, is invoked periodically with cumulative explored/pruned
// permutation counts and the best crossing count found so far. Debug, if
// set, is invoked once at the end with a summary of the search space.
type OptimalSearch struct {
	Timeout  time.Duration
	Progress func(explored, pruned, best int)
	Debug    func(DebugInfo)
}

const maxExhaustiveRowSize = 10

// OrderRows runs the search with no cancellation other than Timeout.
func (o OptimalSearch) OrderRows(g *dag.DAG) map[int][]string {
	return o.OrderRowsContext(context.Background(), g)
}

// OrderRowsContext runs the search, additionally honoring ctx cancellation.
func (o OptimalSearch) OrderRowsContext(ctx context.Context, g *dag.DAG) map[int][]string {
	rows := g.RowIDs()
	orders := Barycentric{Passes: 24}.OrderRows(g)
	if len(rows) < 2 {
		return orders
	}

	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeoutBalanced
	}
	deadline := time.Now().Add(timeout)

	explored, pruned := 0, 0
	best := dag.CountCrossings(g, orders)
	debug := DebugInfo{TotalRows: len(rows)}

	for pass := 0; pass < len(rows)+2; pass++ {
		improvedAny := false
		for _, r := range rows {
			if deadlineExceeded(ctx, deadline) {
				o.reportDebug(debug)
				return orders
			}

			nodes := orders[r]
			if len(nodes) < 2 || len(nodes) > maxExhaustiveRowSize {
				continue
			}

			candidates := perm.Generate(len(nodes), 0)
			if pass == 0 {
				debug.Rows = append(debug.Rows, RowDebugInfo{Row: r, NodeCount: len(nodes), Candidates: len(candidates)})
				if len(nodes) > debug.MaxDepth {
					debug.MaxDepth = len(nodes)
				}
			}

			upperOrder := orders[r-1]
			lowerOrder := orders[r+1]
			_, hasUpper := orders[r-1]
			hasUpper = hasUpper && len(upperOrder) > 0
			_, hasLower := orders[r+1]
			hasLower = hasLower && len(lowerOrder) > 0

			bestLocal := slices.Clone(nodes)
			bestLocalCrossings := rowCrossings(g, nodes, upperOrder, lowerOrder, hasUpper, hasLower)

			for _, p := range candidates {
				explored++
				candidate := make([]string, len(nodes))
				for i, idx := range p {
					candidate[i] = nodes[idx]
				}
				c := rowCrossings(g, candidate, upperOrder, lowerOrder, hasUpper, hasLower)
				if c >= bestLocalCrossings {
					pruned++
					continue
				}
				bestLocalCrossings = c
				bestLocal = candidate
			}

			if bestLocalCrossings < rowCrossings(g, nodes, upperOrder, lowerOrder, hasUpper, hasLower) {
				orders[r] = bestLocal
				improvedAny = true
			}

			if o.Progress != nil {
				best = dag.CountCrossings(g, orders)
				o.Progress(explored, pruned, best)
			}
		}
		if !improvedAny {
			break
		}
	}

	o.reportDebug(debug)
	return orders
}

func (o OptimalSearch) reportDebug(debug DebugInfo) {
	if o.Debug != nil {
		o.Debug(debug)
	}
}

func deadlineExceeded(ctx context.Context, deadline time.Time) bool {
	if time.Now().After(deadline) {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func rowCrossings(g *dag.DAG, row, upper, lower []string, hasUpper, hasLower bool) int {
	total := 0
	if hasUpper {
		total += dag.CountLayerCrossings(g, upper, row)
	}
	if hasLower {
		total += dag.CountLayerCrossings(g, row, lower)
	}
	return total
}
