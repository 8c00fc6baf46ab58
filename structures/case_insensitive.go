// Package structures provides the mapping data structures used by named,
// string-keyed enumerations throughout the library: a case-insensitive map
// with case-preserving iteration, a lazy variant whose values may be
// deferred computations, and a reverse lookup over string-keyed mappings.
package structures

import (
	"sort"
	"strings"
)

type entry[V any] struct {
	display string
	value   V
}

// CaseInsensitiveMap is an insertion-ordered key/value store whose key
// lookup, containment and deletion compare keys case-insensitively.
// Iteration yields the display key from the most recent insert.
//
// At most one entry exists per case-folded key: inserting "REFERENCE" over
// "Reference" replaces the value, adopts the new display case and keeps the
// original insertion position.
//
// The zero value is not usable; construct with NewCaseInsensitiveMap or
// CaseInsensitiveMapOf. Not safe for concurrent mutation.
type CaseInsensitiveMap[V any] struct {
	data  map[string]entry[V]
	order []string // fold keys, insertion order
}

// NewCaseInsensitiveMap creates an empty map.
func NewCaseInsensitiveMap[V any]() *CaseInsensitiveMap[V] {
	return &CaseInsensitiveMap[V]{
		data: make(map[string]entry[V]),
	}
}

// CaseInsensitiveMapOf creates a map populated from items. Go maps carry no
// order, so the initial insertion order is the sorted key order.
func CaseInsensitiveMapOf[V any](items map[string]V) *CaseInsensitiveMap[V] {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := NewCaseInsensitiveMap[V]()
	for _, k := range keys {
		m.Set(k, items[k])
	}
	return m
}

func fold(key string) string {
	return strings.ToLower(key)
}

// Set inserts or replaces the value stored under key.
func (m *CaseInsensitiveMap[V]) Set(key string, value V) {
	f := fold(key)
	if _, exists := m.data[f]; !exists {
		m.order = append(m.order, f)
	}
	m.data[f] = entry[V]{display: key, value: value}
}

// Get returns the value stored under key, compared case-insensitively.
func (m *CaseInsensitiveMap[V]) Get(key string) (V, bool) {
	e, ok := m.data[fold(key)]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Contains reports whether a value is stored under key.
func (m *CaseInsensitiveMap[V]) Contains(key string) bool {
	_, ok := m.data[fold(key)]
	return ok
}

// Delete removes the entry stored under key and reports whether it existed.
func (m *CaseInsensitiveMap[V]) Delete(key string) bool {
	f := fold(key)
	if _, ok := m.data[f]; !ok {
		return false
	}
	delete(m.data, f)
	for i, k := range m.order {
		if k == f {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (m *CaseInsensitiveMap[V]) Len() int {
	return len(m.data)
}

// Keys returns the display keys in insertion order.
func (m *CaseInsensitiveMap[V]) Keys() []string {
	keys := make([]string, 0, len(m.order))
	for _, f := range m.order {
		keys = append(keys, m.data[f].display)
	}
	return keys
}

// Values returns the values in insertion order.
func (m *CaseInsensitiveMap[V]) Values() []V {
	values := make([]V, 0, len(m.order))
	for _, f := range m.order {
		values = append(values, m.data[f].value)
	}
	return values
}

// Copy returns a shallow copy of the map.
func (m *CaseInsensitiveMap[V]) Copy() *CaseInsensitiveMap[V] {
	c := &CaseInsensitiveMap[V]{
		data:  make(map[string]entry[V], len(m.data)),
		order: append([]string(nil), m.order...),
	}
	for f, e := range m.data {
		c.data[f] = e
	}
	return c
}

// Lookup returns a reverse-lookup view built from a snapshot of the current
// display keys and values.
func (m *CaseInsensitiveMap[V]) Lookup() *Lookup[V] {
	snapshot := make(map[string]V, len(m.data))
	for _, e := range m.data {
		snapshot[e.display] = e.value
	}
	return NewLookup(snapshot)
}
