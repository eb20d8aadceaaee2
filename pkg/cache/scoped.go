package cache

// ScopedKeyer wraps a Keyer with a prefix so that several front ends can
// share one cache directory without colliding.
//
// Example usage:
//
//	// Entries written by the HTTP API
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
//
//	// Entries written by the CLI
//	cliKeyer := NewDefaultKeyer()
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

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(docHash, opts)
}

// TreeKey generates a prefixed key for tree diagram caching.
func (k *ScopedKeyer) TreeKey(docHash string, opts TreeKeyOpts) string {
	return k.prefix + k.inner.TreeKey(docHash, opts)
}
