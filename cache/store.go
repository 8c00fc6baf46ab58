// Package cache provides the registry of named caches backing memoized
// colour computations. Each named cache is an independent, unbounded
// key/value store: there is no eviction policy, deliberately, so that
// exact-match memoization stays reproducible for the process lifetime.
// Callers with unbounded key spaces are expected to clear explicitly.
//
// Cached values must be treated as immutable snapshots once inserted; a
// named cache is shared by every caller using that name.
package cache

import (
	"sync/atomic"

	gocache "github.com/patrickmn/go-cache"
)

// Stats holds hit/miss counters for a single store.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Store is one named cache. Get and Set are safe for concurrent use.
type Store struct {
	name   string
	cache  *gocache.Cache
	hits   atomic.Uint64
	misses atomic.Uint64
}

func newStore(name string) *Store {
	// No expiration and no janitor: entries live until cleared.
	return &Store{
		name:  name,
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Name returns the name the store was registered under.
func (s *Store) Name() string {
	return s.name
}

// Get retrieves the value stored under key.
func (s *Store) Get(key string) (any, bool) {
	value, found := s.cache.Get(key)
	if found {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
	return value, found
}

// Set stores value under key, replacing any existing entry.
func (s *Store) Set(key string, value any) {
	s.cache.Set(key, value, gocache.NoExpiration)
}

// Delete removes the entry stored under key.
func (s *Store) Delete(key string) {
	s.cache.Delete(key)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}

// Flush empties the store. The registration is untouched.
func (s *Store) Flush() {
	s.cache.Flush()
}

// Stats returns the hit/miss counters accumulated since creation.
func (s *Store) Stats() Stats {
	return Stats{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
	}
}
