package cache

import "sync"

// Memo caches the results of a pure function keyed by its argument.
// Entries are never evicted or invalidated. The zero value is not usable;
// create one with [NewMemo].
type Memo[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewMemo returns an empty memo.
func NewMemo[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{entries: make(map[K]V)}
}

// Get returns the cached value for key, if present.
func (m *Memo[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// Put stores v under key. Overwriting an existing key is allowed; callers
// only ever store the value a pure function returned for that key.
func (m *Memo[K, V]) Put(key K, v V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = v
}

// Do returns the cached value for key, computing and storing it with fn on
// a miss. fn runs without the lock held so it may recurse into the memo.
// If fn fails nothing is stored.
func (m *Memo[K, V]) Do(key K, fn func(K) (V, error)) (V, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}
	v, err := fn(key)
	if err != nil {
		var zero V
		return zero, err
	}
	m.Put(key, v)
	return v, nil
}

// Len returns the number of cached entries.
func (m *Memo[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
