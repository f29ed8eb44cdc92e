// Package tower is the historical home of this engine's crossing-reduction
// algorithms. The stacked-blocks tower visualization it once supported
// (block positioning, hand-drawn styles, SVG/PNG/PDF sinks) is gone - this
// engine's vertices are points, not variable-width blocks - but [ordering]'s
// row-ordering algorithms are domain-agnostic and now drive
// github.com/matzehuels/sugiyama/pkg/layout's orderer directly. The package
// keeps its original import path to avoid unrelated churn.
//
// [ordering]: github.com/matzehuels/sugiyama/pkg/render/tower/ordering
package tower
