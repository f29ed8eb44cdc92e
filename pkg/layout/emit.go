package layout

import (
	"slices"

	"github.com/matzehuels/sugiyama/pkg/dag"
	"github.com/matzehuels/sugiyama/pkg/graph"
)

// chain reconstructs the physical internal path (in the post-acyclic,
// post-subdivision direction, never the caller's original direction) for
// canonical edge key: the edge entering the physical destination, walked
// backward through any subdivider dummies to the physical source.
//
// subdivideLongEdges (pkg/dag/transform) preserves edge metadata only on
// the final edge in a chain, so key is found on exactly one dag edge; every
// subdivider on the chain has exactly one parent by construction.
func (b *built[N]) chain(key int) []string {
	var entry dag.Edge
	found := false
	for _, e := range b.d.Edges() {
		if k, ok := e.Meta[loEdgeKey].(int); ok && k == key {
			entry = e
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	ids := []string{entry.To}
	cur := entry.From
	for {
		ids = append(ids, cur)
		n, _ := b.d.Node(cur)
		if !n.IsSubdivider() {
			break
		}
		cur = b.d.Parents(cur)[0]
	}
	slices.Reverse(ids)
	return ids
}

// polyline returns the routed Points for canonical edge key, in the
// caller's original From->To direction regardless of whether the
// acyclifier reversed it internally.
func (b *built[N]) polyline(key int, points map[string]Point) []Point {
	ids := b.chain(key)
	if b.reversedOf[key] {
		slices.Reverse(ids)
	}
	pts := make([]Point, len(ids))
	for i, id := range ids {
		pts[i] = points[id]
	}
	return pts
}

// selfLoopPolyline builds a small loop polyline for an input edge whose
// From and To coincide. Self-loops never enter the internal DAG (see
// [build]), so they carry no rank/order information of their own; this
// engine's policy is a small closed triangle bulging to the right of the
// vertex's final position, sized by NodeSeparation.
func selfLoopPolyline(at Point, opts Options) []Point {
	w := opts.NodeSeparation / 2
	if w <= 0 {
		w = 1
	}
	return []Point{
		at,
		{X: at.X + w, Y: at.Y - w/2},
		{X: at.X + w, Y: at.Y + w/2},
		at,
	}
}

// emit assembles the final Result from b's internal DAG, once it has been
// acyclified, ranked, ordered, and positioned.
func emit[N comparable](g graph.Graph[N], b *built[N], points map[string]Point, crossings int, opts Options) Result[N] {
	var bbox struct{ minX, minY, maxX, maxY float64 }
	first := true
	for _, p := range points {
		if first {
			bbox.minX, bbox.maxX = p.X, p.X
			bbox.minY, bbox.maxY = p.Y, p.Y
			first = false
			continue
		}
		bbox.minX = min(bbox.minX, p.X)
		bbox.maxX = max(bbox.maxX, p.X)
		bbox.minY = min(bbox.minY, p.Y)
		bbox.maxY = max(bbox.maxY, p.Y)
	}

	toEmit := func(p Point) Point {
		if opts.Direction == LeftToRight {
			return Point{X: p.Y, Y: p.X}
		}
		return p
	}

	positions := make(map[N]Point, len(b.idOf))
	for n, id := range b.idOf {
		positions[n] = toEmit(points[id])
	}

	cache := make(map[int][]Point, len(b.canonical))
	edges := g.Edges()
	result := make([]Polyline[N], len(edges))
	for i, e := range edges {
		key := b.inputEdgeKey[i]
		var pts []Point
		if key == -1 {
			pts = selfLoopPolyline(points[b.idOf[e.From]], opts)
		} else {
			cached, ok := cache[key]
			if !ok {
				cached = b.polyline(key, points)
				cache[key] = cached
			}
			pts = cached
		}
		emitted := make([]Point, len(pts))
		for j, p := range pts {
			emitted[j] = toEmit(p)
		}
		result[i] = Polyline[N]{From: e.From, To: e.To, Points: emitted}
	}

	var layers [][]N
	for _, r := range b.d.RowIDs() {
		var layer []N
		for _, n := range b.d.NodesInRow(r) {
			if n.IsSubdivider() {
				continue
			}
			layer = append(layer, b.nodeOf[n.ID])
		}
		if layer != nil {
			layers = append(layers, layer)
		}
	}

	width, height := bbox.maxX-bbox.minX, bbox.maxY-bbox.minY
	if opts.Direction == LeftToRight {
		width, height = height, width
	}
	if first {
		width, height = 0, 0
	}

	return Result[N]{
		Positions: positions,
		Edges:     result,
		Layers:    layers,
		Crossings: crossings,
		Width:     width,
		Height:    height,
	}
}
