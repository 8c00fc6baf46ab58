package structures

import (
	"reflect"
	"sort"
)

// Lookup is a read-only reverse view over a string-keyed mapping: given a
// value, it returns the keys that map to it. Equality defaults to
// reflect.DeepEqual, which compares slices element-wise; scalar and string
// values compare exactly.
type Lookup[V any] struct {
	data  map[string]V
	equal func(a, b V) bool
}

// NewLookup creates a reverse view over data using reflect.DeepEqual.
// The view reads data live; it does not copy it.
func NewLookup[V any](data map[string]V) *Lookup[V] {
	return NewLookupFunc(data, func(a, b V) bool {
		return reflect.DeepEqual(a, b)
	})
}

// NewLookupFunc creates a reverse view over data with a custom value
// equality function.
func NewLookupFunc[V any](data map[string]V, equal func(a, b V) bool) *Lookup[V] {
	return &Lookup[V]{data: data, equal: equal}
}

// KeysForValue returns every key whose value compares equal to value,
// sorted. The result is empty when no key matches.
func (l *Lookup[V]) KeysForValue(value V) []string {
	keys := make([]string, 0)
	for k, v := range l.data {
		if l.equal(v, value) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// KeysForValues returns one key set per queried value, order-correlated
// with the query sequence.
func (l *Lookup[V]) KeysForValues(values []V) [][]string {
	results := make([][]string, len(values))
	for i, v := range values {
		results[i] = l.KeysForValue(v)
	}
	return results
}

// FirstKeyForValue returns the first key (in sorted order) whose value
// compares equal to value.
func (l *Lookup[V]) FirstKeyForValue(value V) (string, bool) {
	keys := l.KeysForValue(value)
	if len(keys) == 0 {
		return "", false
	}
	return keys[0], true
}
