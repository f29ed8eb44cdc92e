package layout

// Point is a two-dimensional coordinate in abstract layout units.
type Point struct {
	X, Y float64
}

// Polyline is the route an edge takes through the layout: the source
// vertex's position, zero or more bend-points at dummy vertices threading a
// long edge through intermediate ranks, and the target vertex's position.
type Polyline[N comparable] struct {
	From   N
	To     N
	Points []Point
}

// Result is the output of [Compute]: final coordinates for every input
// vertex, a routed polyline for every input edge, the rank-ordered layering,
// and the measured crossing count.
type Result[N comparable] struct {
	// Positions maps every input NodeId to its computed coordinate.
	Positions map[N]Point
	// Edges holds one Polyline per input edge, in the input graph's edge
	// order, each starting at its source's position and ending at its
	// target's position regardless of whether the edge was reversed
	// internally to break a cycle.
	Edges []Polyline[N]
	// Layers holds one entry per rank, each an ordered sequence of input
	// NodeIds in final left-to-right (or top-to-bottom, under
	// LeftToRight) order. Dummy vertices are never included.
	Layers [][]N
	// Crossings is the total number of edge crossings measured on the
	// final order, summed across all adjacent rank pairs.
	Crossings int
	// Width and Height are the bounding box of the computed layout: the
	// extent of the widest rank and the extent along the rank axis,
	// respectively. Under LeftToRight these are already swapped to match
	// the emitted x/y axes.
	Width, Height float64
}
