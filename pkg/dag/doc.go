// Package dag provides a directed acyclic graph (DAG) optimized for
// row-based layered layouts, the internal working representation of the
// Sugiyama-style layout engine in [pkg/layout].
//
// # Overview
//
// A hierarchical layout organizes nodes into horizontal rows (layers), with
// edges connecting nodes in consecutive rows only. This package provides the
// core data structure for that representation.
//
// The row-based constraint is essential for the Sugiyama-style layered graph
// drawing that powers the layout engine. It enables efficient crossing
// detection and ordering algorithms.
//
// # Basic Usage
//
// Create a new graph with [New], add nodes with [DAG.AddNode], and edges with
// [DAG.AddEdge]. Nodes must have unique IDs, and edges can only connect
// existing nodes in consecutive rows (From.Row+1 == To.Row):
//
//	g := dag.New(nil)
//	g.AddNode(dag.Node{ID: "app", Row: 0})
//	g.AddNode(dag.Node{ID: "lib", Row: 1})
//	g.AddEdge(dag.Edge{From: "app", To: "lib"})
//
// Query the graph structure with [DAG.Children], [DAG.Parents], [DAG.NodesInRow],
// and related methods. Use [DAG.Validate] to verify structural integrity before
// rendering or transformations.
//
// # Node Types
//
// The package supports three node kinds to handle real-world graph structures:
//
//   - [NodeKindRegular]: Original graph vertices from the caller's input
//   - [NodeKindSubdivider]: Synthetic nodes that break long edges into segments
//   - [NodeKindAuxiliary]: Helper nodes for layout (e.g., separator beams)
//
// Subdivider nodes maintain a [Node.MasterID] linking back to their origin,
// allowing them to be visually merged into continuous vertical blocks during
// rendering. Auxiliary nodes act as "separator beams" that resolve impossible
// crossing patterns by grouping edges through a shared intermediate.
//
// # Edge Crossings
//
// A key challenge in hierarchical layouts is minimizing edge crossings
// between adjacent rows, since crossings are the dominant source of visual
// clutter in a layered drawing.
//
// The [CountCrossings] and [CountLayerCrossings] functions use a Fenwick tree
// (binary indexed tree) to count inversions in O(E log V) time, enabling
// fast evaluation of millions of candidate orderings during optimization.
//
// # Metadata
//
// Both nodes and the graph itself support arbitrary metadata via [Metadata] maps.
// Callers can use this to carry an opaque external identifier or render hints
// through the pipeline. Metadata maps are never nil after creation - empty
// maps are automatically initialized.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Callers must synchronize access
// if multiple goroutines read or modify the same graph. Immutable operations like
// counting crossings on a read-only graph can safely run in parallel across
// different goroutines.
//
// # Related Packages
//
// The [transform] subpackage provides graph transformations:
//   - Transitive reduction (remove redundant edges)
//   - Edge subdivision (break long edges into segments)
//   - Span overlap resolution (insert separator beams)
//   - Layer assignment (assign rows based on depth)
//
// The [perm] subpackage provides permutation algorithms including the PQ-tree
// data structure for efficiently generating only valid orderings that preserve
// crossing-free constraints.
//
// [transform]: github.com/matzehuels/sugiyama/pkg/dag/transform
// [perm]: github.com/matzehuels/sugiyama/pkg/dag/perm
package dag
