package cache

import "sync"

// Global registry instance and initialization guard.
var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry that library-internal memoized
// functions register against. Created on first call.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// ResetDefault discards the process-wide registry so the next Default call
// creates a fresh one. Not safe for concurrent use; intended for tests.
func ResetDefault() {
	defaultOnce = sync.Once{}
	defaultRegistry = nil
}
