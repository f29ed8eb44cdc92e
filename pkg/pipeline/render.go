package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/sugiyama/pkg/layout"
	"github.com/matzehuels/sugiyama/pkg/render"
)

// Render generates output artifacts in the requested formats from a
// computed layout.
func Render(res layout.Result[string], opts Options) (map[string][]byte, error) {
	svgOpts := render.Options{
		NodeRadius: opts.NodeRadius,
		Margin:     opts.Margin,
		ShowLabels: opts.ShowLabels,
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = render.SVG(res, svgOpts)
		case FormatJSON:
			data, err = json.Marshal(res)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
