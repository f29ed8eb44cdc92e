package layout

import (
	"io"

	"github.com/charmbracelet/log"
)

// Direction controls which axis rank increases along. The positioner always
// works in one canonical orientation (rank -> y, order -> x); LeftToRight
// swaps x and y only at emission.
type Direction int

const (
	// TopToBottom places rank 0 at the top, increasing downward.
	TopToBottom Direction = iota
	// LeftToRight places rank 0 on the left, increasing rightward.
	LeftToRight
)

func (d Direction) String() string {
	if d == LeftToRight {
		return "LeftToRight"
	}
	return "TopToBottom"
}

// CrossingHeuristic selects the positional weight the orderer uses when
// re-sorting a rank against its already-fixed neighbor.
type CrossingHeuristic int

const (
	// Median weights a vertex by the left-biased median position of its
	// neighbors on the adjacent rank.
	Median CrossingHeuristic = iota
	// Barycenter weights a vertex by the mean position of its neighbors.
	Barycenter
)

func (h CrossingHeuristic) String() string {
	if h == Barycenter {
		return "Barycenter"
	}
	return "Median"
}

// Options configures a [Compute] invocation. Zero-valued fields fall back to
// [DefaultOptions], so the zero value is usable; callers can also start from
// [DefaultOptions] and override individual fields.
type Options struct {
	// Direction is TopToBottom or LeftToRight. Default TopToBottom.
	Direction Direction
	// NodeSeparation is the minimum gap, in layout units, between adjacent
	// vertices within a rank. Default 50.
	NodeSeparation float64
	// RankSeparation is the gap, in layout units, between consecutive
	// ranks. Default 80.
	RankSeparation float64
	// MaxSweeps caps the number of alternating-direction passes the
	// orderer and positioner each perform. Default 24.
	MaxSweeps int
	// CrossingHeuristic selects the orderer's positional weight function.
	// Default Median.
	CrossingHeuristic CrossingHeuristic
	// ExhaustiveBelow orders any rank with at most this many vertices by
	// brute-force permutation search instead of the heuristic, guaranteeing
	// a locally optimal order for small, crossing-critical ranks. Zero (the
	// default) disables exhaustive search. Never applied above 8 vertices
	// regardless of this setting, since 8! permutations is already the
	// point of rapidly diminishing returns for a sweep's inner loop.
	ExhaustiveBelow int
	// Logger receives one Debug-level line per pipeline stage. A nil
	// Logger is replaced by the default discarding logger, keeping Compute
	// a pure function for callers who never configure one.
	Logger *log.Logger
}

// DefaultOptions returns the recognized default configuration: TopToBottom,
// node separation 50, rank separation 80, 24 max sweeps, Median heuristic,
// exhaustive search disabled, and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Direction:         TopToBottom,
		NodeSeparation:    50,
		RankSeparation:    80,
		MaxSweeps:         24,
		CrossingHeuristic: Median,
		ExhaustiveBelow:   0,
		Logger:            log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// withDefaults fills in zero-valued fields of o with [DefaultOptions],
// so callers can pass a partially populated Options (including the zero
// value) to [Compute] without crashing on a nil Logger or zero separation.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.NodeSeparation > 0 {
		d.NodeSeparation = o.NodeSeparation
	}
	if o.RankSeparation > 0 {
		d.RankSeparation = o.RankSeparation
	}
	if o.MaxSweeps > 0 {
		d.MaxSweeps = o.MaxSweeps
	}
	if o.ExhaustiveBelow > 0 {
		d.ExhaustiveBelow = o.ExhaustiveBelow
	}
	d.Direction = o.Direction
	d.CrossingHeuristic = o.CrossingHeuristic
	if o.Logger != nil {
		d.Logger = o.Logger
	}
	return d
}
