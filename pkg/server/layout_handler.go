package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/sugiyama/pkg/errors"
	"github.com/matzehuels/sugiyama/pkg/layout"
	"github.com/matzehuels/sugiyama/pkg/pipeline"
)

// layoutRequest is the POST /layout body: a graph plus the same
// serializable layout/render options [pipeline.Options] accepts from the
// CLI, so a caller can request e.g. direction or crossing heuristic without
// a second schema to learn.
type layoutRequest struct {
	Graph             pipeline.GraphInput `json:"graph"`
	Direction         string              `json:"direction,omitempty"`
	NodeSeparation    float64             `json:"node_separation,omitempty"`
	RankSeparation    float64             `json:"rank_separation,omitempty"`
	MaxSweeps         int                 `json:"max_sweeps,omitempty"`
	CrossingHeuristic string              `json:"crossing_heuristic,omitempty"`
	ExhaustiveBelow   int                 `json:"exhaustive_below,omitempty"`
	Formats           []string            `json:"formats,omitempty"`
	NodeRadius        float64             `json:"node_radius,omitempty"`
	Margin            float64             `json:"margin,omitempty"`
	ShowLabels        bool                `json:"show_labels,omitempty"`
}

// layoutResponse reports the computed layout alongside any rendered
// artifacts the caller asked for via Formats.
type layoutResponse struct {
	RequestID string                `json:"request_id"`
	Layout    layout.Result[string] `json:"layout"`
	Artifacts map[string][]byte     `json:"artifacts,omitempty"`
	Stats     pipeline.Stats        `json:"stats"`
	CacheInfo pipeline.CacheInfo    `json:"cache_info"`
}

// handleLayout decodes a graph and layout options, runs the full
// parse -> layout -> render pipeline via the shared [pipeline.Runner], and
// returns the computed layout plus any requested rendered artifacts.
//
// Artifacts are base64-encoded in the JSON response (encoding/json does
// this automatically for []byte fields), since SVG output is not always
// valid UTF-8-safe JSON text on its own.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if len(req.Graph.Nodes) == 0 && len(req.Graph.Edges) == 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeEmptyGraph, "graph has no nodes or edges"))
		return
	}

	opts := pipeline.Options{
		Graph:             &req.Graph,
		Direction:         req.Direction,
		NodeSeparation:    req.NodeSeparation,
		RankSeparation:    req.RankSeparation,
		MaxSweeps:         req.MaxSweeps,
		CrossingHeuristic: req.CrossingHeuristic,
		ExhaustiveBelow:   req.ExhaustiveBelow,
		Formats:           req.Formats,
		NodeRadius:        req.NodeRadius,
		Margin:            req.Margin,
		ShowLabels:        req.ShowLabels,
		Logger:            s.Logger,
	}

	result, err := s.Runner.Execute(r.Context(), opts)
	if err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeInternal
		}
		s.writeError(w, r, errors.Wrap(code, err, "compute layout"))
		return
	}

	resp := layoutResponse{
		RequestID: requestIDFromContext(r.Context()),
		Layout:    result.Layout,
		Stats:     result.Stats,
		CacheInfo: result.CacheInfo,
	}
	if len(result.Artifacts) > 0 {
		resp.Artifacts = result.Artifacts
	}

	writeJSON(w, http.StatusOK, resp)
}
