package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments can
// share one Redis without reading each other's entries.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "cosmos:v1:")
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

// SnapshotKey generates a prefixed snapshot key.
func (k *ScopedKeyer) SnapshotKey(level int) string {
	return k.prefix + k.inner.SnapshotKey(level)
}

// PartitionsKey generates a prefixed partitions key.
func (k *ScopedKeyer) PartitionsKey(n, limit int) string {
	return k.prefix + k.inner.PartitionsKey(n, limit)
}

// TreeKey generates a prefixed tree key.
func (k *ScopedKeyer) TreeKey(n int) string {
	return k.prefix + k.inner.TreeKey(n)
}
