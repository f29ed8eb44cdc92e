// Package render draws a computed [layout.Result] as an SVG: a circle per
// vertex at its final position, a polyline per edge, following its routed
// points through any dummy bends.
//
//	res, err := layout.Compute(ctx, g, layout.DefaultOptions())
//	svg := render.SVG(res, render.Options{})
//
// [tower/ordering] predates this package and still supplies the crossing
// reduction heuristics the orderer uses; see its own doc comment.
//
// [layout.Result]: github.com/matzehuels/sugiyama/pkg/layout
// [tower/ordering]: github.com/matzehuels/sugiyama/pkg/render/tower/ordering
package render
