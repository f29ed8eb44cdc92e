package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/sugiyama/pkg/layout"
)

// Options configures [SVG]'s appearance. The zero value renders with
// sensible built-in defaults.
type Options struct {
	// NodeRadius is the circle radius drawn at each vertex. Default 8.
	NodeRadius float64
	// Margin pads the viewBox on every side so stroked circles and edge
	// arrowheads at the layout's boundary aren't clipped. Default 20.
	Margin float64
	// ShowLabels draws each vertex's string label next to its circle.
	ShowLabels bool
}

func (o Options) withDefaults() Options {
	if o.NodeRadius <= 0 {
		o.NodeRadius = 8
	}
	if o.Margin <= 0 {
		o.Margin = 20
	}
	return o
}

// SVG renders res as a standalone SVG document: one circle per vertex at
// its computed position, one polyline per edge following its routed
// points, modeled on this repo's earlier tower block/edge SVG writer but
// drawing points and lines instead of stacked rectangles.
func SVG(res layout.Result[string], opts Options) []byte {
	opts = opts.withDefaults()

	minX, minY, maxX, maxY := bounds(res, opts.NodeRadius)
	minX, minY = minX-opts.Margin, minY-opts.Margin
	maxX, maxY = maxX+opts.Margin, maxY+opts.Margin

	var buf bytes.Buffer
	width, height := maxX-minX, maxY-minY
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		minX, minY, width, height, width, height)

	buf.WriteString(`  <defs>
    <marker id="arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse">
      <path d="M 0 0 L 10 5 L 0 10 z" fill="#555"/>
    </marker>
  </defs>
`)

	for _, e := range res.Edges {
		buf.WriteString(`  <polyline points="`)
		for i, p := range e.Points {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "%.1f,%.1f", p.X, p.Y)
		}
		buf.WriteString(`" fill="none" stroke="#555" stroke-width="1.5" marker-end="url(#arrow)"/>` + "\n")
	}

	for id, p := range res.Positions {
		fmt.Fprintf(&buf, `  <circle id="node-%s" cx="%.1f" cy="%.1f" r="%.1f" fill="#3b6ea5" stroke="#1d3a57" stroke-width="1.5"/>`+"\n",
			svgEscape(id), p.X, p.Y, opts.NodeRadius)
		if opts.ShowLabels {
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="12" text-anchor="middle">%s</text>`+"\n",
				p.X, p.Y-opts.NodeRadius-4, svgEscape(id))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func bounds(res layout.Result[string], radius float64) (minX, minY, maxX, maxY float64) {
	first := true
	for _, p := range res.Positions {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	if first {
		return 0, 0, 1, 1
	}
	return minX - radius*2, minY - radius*2, maxX + radius*2, maxY + radius*2
}

func svgEscape(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
