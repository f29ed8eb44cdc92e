package pipeline

import (
	"context"
	"encoding/json"

	"github.com/matzehuels/sugiyama/pkg/graph"
	"github.com/matzehuels/sugiyama/pkg/layout"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout computes a Sugiyama-style layout for g.
func GenerateLayout(ctx context.Context, g *graph.Builder[string], opts Options) (layout.Result[string], error) {
	res, err := layout.Compute[string](ctx, g, opts.LayoutOptions())
	if err != nil {
		return layout.Result[string]{}, err
	}
	return res, nil
}

// marshalLayout and unmarshalLayout serialize a layout.Result for cache
// storage. layout.Result's fields are all exported, so this is a thin
// wrapper rather than a custom codec.
func marshalLayout(res layout.Result[string]) ([]byte, error) {
	return json.Marshal(res)
}

func unmarshalLayout(data []byte, res *layout.Result[string]) error {
	return json.Unmarshal(data, res)
}
