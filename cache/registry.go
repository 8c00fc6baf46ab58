package cache

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/zjrosen/prism/internal/log"
)

// Registry errors
var (
	ErrUnknownCache = errors.New("cache not registered")
	ErrInvalidName  = errors.New("invalid cache name")
)

// Registry owns a collection of named caches. Names are case-sensitive and
// unique within a registry. A single lock guards lookup and creation;
// get/put on an individual Store does not take it.
type Registry struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		stores: make(map[string]*Store),
	}
}

func validateName(name string) error {
	if name == "" || strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Register returns the cache registered under name, creating and
// registering an empty one on first request. Idempotent: a second Register
// with the same name returns the existing store unchanged.
func (r *Registry) Register(name string) (*Store, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	r.mu.RLock()
	store, ok := r.stores[name]
	r.mu.RUnlock()
	if ok {
		return store, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-check under the write lock; another goroutine may have won.
	if store, ok := r.stores[name]; ok {
		return store, nil
	}
	store = newStore(name)
	r.stores[name] = store
	log.Debug(log.CatCache, "cache registered", "name", name)
	return store, nil
}

// MustRegister is Register for call-site initialization, panicking on an
// invalid name.
func (r *Registry) MustRegister(name string) *Store {
	store, err := r.Register(name)
	if err != nil {
		panic(err)
	}
	return store
}

// Cache returns the cache registered under name.
func (r *Registry) Cache(name string) (*Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCache, name)
	}
	return store, nil
}

// Clear empties exactly the cache registered under name, leaving its
// registration intact.
func (r *Registry) Clear(name string) error {
	store, err := r.Cache(name)
	if err != nil {
		return err
	}
	store.Flush()
	log.Debug(log.CatCache, "cache cleared", "name", name)
	return nil
}

// ClearAll empties every registered cache, leaving registrations intact.
func (r *Registry) ClearAll() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, store := range r.stores {
		store.Flush()
	}
	log.Debug(log.CatCache, "all caches cleared", "count", len(r.stores))
}

// Names returns the registered cache names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.stores))
	for name := range r.stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
