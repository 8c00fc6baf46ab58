package structures

import "sync"

// lazyValue is a tagged variant: either a resolved value or a pending
// zero-argument computation.
type lazyValue[V any] struct {
	value   V
	pending func() V
}

// LazyCaseInsensitiveMap is a CaseInsensitiveMap whose values may be
// deferred computations. A deferred entry is evaluated at most once: the
// first Get runs the computation, stores the result in place of it and
// returns the result; every later Get returns the stored result. Contains
// never forces evaluation.
//
// Unlike CaseInsensitiveMap, all operations are guarded by a mutex so that
// concurrent first reads of the same key still evaluate exactly once.
type LazyCaseInsensitiveMap[V any] struct {
	mu   sync.Mutex
	base *CaseInsensitiveMap[lazyValue[V]]
}

// NewLazyCaseInsensitiveMap creates an empty lazy map.
func NewLazyCaseInsensitiveMap[V any]() *LazyCaseInsensitiveMap[V] {
	return &LazyCaseInsensitiveMap[V]{
		base: NewCaseInsensitiveMap[lazyValue[V]](),
	}
}

// Set stores a concrete value under key.
func (m *LazyCaseInsensitiveMap[V]) Set(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.base.Set(key, lazyValue[V]{value: value})
}

// SetDeferred stores a deferred computation under key. The computation runs
// on the first Get for that key.
func (m *LazyCaseInsensitiveMap[V]) SetDeferred(key string, compute func() V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.base.Set(key, lazyValue[V]{pending: compute})
}

// Get returns the value stored under key, resolving a deferred computation
// in place on first access.
func (m *LazyCaseInsensitiveMap[V]) Get(key string) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lv, ok := m.base.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	if lv.pending != nil {
		// Preserve the stored display case when rewriting the entry.
		resolved := lazyValue[V]{value: lv.pending()}
		f := fold(key)
		display := m.base.data[f].display
		m.base.data[f] = entry[lazyValue[V]]{display: display, value: resolved}
		return resolved.value, true
	}
	return lv.value, true
}

// Contains reports whether a value (resolved or deferred) is stored under
// key, without forcing evaluation.
func (m *LazyCaseInsensitiveMap[V]) Contains(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.base.Contains(key)
}

// Resolved reports whether the entry under key exists and has been resolved
// to a concrete value.
func (m *LazyCaseInsensitiveMap[V]) Resolved(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	lv, ok := m.base.Get(key)
	return ok && lv.pending == nil
}

// Delete removes the entry stored under key and reports whether it existed.
func (m *LazyCaseInsensitiveMap[V]) Delete(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.base.Delete(key)
}

// Len returns the number of entries.
func (m *LazyCaseInsensitiveMap[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.base.Len()
}

// Keys returns the display keys in insertion order.
func (m *LazyCaseInsensitiveMap[V]) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.base.Keys()
}
