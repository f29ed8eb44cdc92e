package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation. This
// is useful behind the HTTP API, where different callers may need separate
// cache namespaces (e.g. per API token) even though they hash identical
// graphs to the same underlying key.
//
// Example usage:
//
//	// Caller-specific keys
//	callerKeyer := NewScopedKeyer(NewDefaultKeyer(), "caller:abc123:")
//
//	// Global, unscoped keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(graphHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
