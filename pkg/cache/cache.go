// Package cache provides a pluggable result cache for computed layouts and
// their rendered artifacts, keyed by a content hash of the input graph and
// options rather than by caller-chosen names, so identical requests always
// collide on the same entry regardless of which client made them.
package cache

import (
	"context"
	"time"
)

// TTL defaults for the two cacheable artifacts this engine produces.
const (
	// TTLLayout is how long a computed layout.Result stays cached.
	TTLLayout = 24 * time.Hour
	// TTLArtifact is how long a rendered artifact (e.g. an SVG) stays
	// cached. Shorter than TTLLayout since artifacts are cheap to
	// regenerate from an already-cached layout.
	TTLArtifact = 6 * time.Hour
)

// Cache stores and retrieves opaque byte blobs by key. Implementations must
// be safe for concurrent use.
type Cache interface {
	// Get returns the cached value for key, or hit=false on a miss.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	// Set stores data under key. ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key, if present. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKeyOpts is the subset of layout.Options that changes a computed
// layout's output, included in a layout cache key so that two requests for
// the same graph under different options never collide.
type LayoutKeyOpts struct {
	Direction         int
	NodeSeparation    float64
	RankSeparation    float64
	MaxSweeps         int
	CrossingHeuristic int
	ExhaustiveBelow   int
}

// ArtifactKeyOpts is the subset of a render request that changes the
// rendered bytes for an already-computed layout.
type ArtifactKeyOpts struct {
	Format string
	Style  string
}

// Keyer derives deterministic cache keys. Implementations must produce the
// same key for the same inputs across processes and runs.
type Keyer interface {
	// LayoutKey derives a key for the layout.Result computed from the graph
	// identified by graphHash under opts.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string
	// ArtifactKey derives a key for a rendered artifact of the layout
	// identified by layoutHash under opts.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer derives keys by hashing the JSON encoding of each key's
// inputs, prefixed with a namespace tag for readability in cache dumps.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default, unscoped Keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
