package scale

import (
	"sync"

	"github.com/zjrosen/prism/config"
	"github.com/zjrosen/prism/internal/log"
)

// Controller holds the current domain-range scale. Reads and writes are
// guarded by a single lock so no reader observes a half-updated state.
//
// Override restores the value observed at override time, which makes scope
// nesting correct within one sequential call chain. Concurrent writers
// sharing one controller race on the single slot: last writer wins and a
// restore may then reinstate a value set by another goroutine. That is the
// documented cost of process-wide scale state; code needing isolation
// should construct its own Controller.
type Controller struct {
	mu      sync.RWMutex
	current Scale
}

// NewController creates a controller starting in the Reference convention.
func NewController() *Controller {
	return &Controller{current: Reference}
}

// Get returns the current convention.
func (c *Controller) Get() Scale {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Set replaces the current convention. The name is resolved
// case-insensitively; an unrecognized convention leaves the state
// untouched and returns ErrInvalidScale.
func (c *Controller) Set(s Scale) error {
	canonical, err := Parse(string(s))
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.current = canonical
	c.mu.Unlock()

	log.Debug(log.CatScale, "scale set", "scale", canonical)
	return nil
}

// Override replaces the current convention and returns a restore function
// reinstating the value observed here. Callers defer the restore so it runs
// on every exit path; calling it more than once is a no-op.
func (c *Controller) Override(s Scale) (restore func(), err error) {
	canonical, err := Parse(string(s))
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	previous := c.current
	c.current = canonical
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			c.current = previous
			c.mu.Unlock()
		})
	}, nil
}

// With runs fn with the convention overridden, restoring the previous value
// on every exit path including panics.
func (c *Controller) With(s Scale, fn func()) error {
	restore, err := c.Override(s)
	if err != nil {
		return err
	}
	defer restore()

	fn()
	return nil
}

// Default controller instance and initialization guard.
var (
	defaultController *Controller
	defaultOnce       sync.Once
)

// DefaultController returns the process-wide controller consulted by the
// ToDomain*/FromRange* families. Its initial convention comes from
// configuration (Reference unless overridden).
func DefaultController() *Controller {
	defaultOnce.Do(func() {
		defaultController = NewController()
		if name := config.Current().DomainRangeScale; name != "" {
			if s, err := Parse(name); err == nil {
				defaultController.current = s
			} else {
				log.Warn(log.CatScale, "invalid configured scale, using reference", "value", name)
			}
		}
	})
	return defaultController
}

// ResetDefault discards the process-wide controller so the next use
// recreates it from configuration. Not safe for concurrent use; intended
// for tests.
func ResetDefault() {
	defaultOnce = sync.Once{}
	defaultController = nil
}

// Get returns the current convention of the default controller.
func Get() Scale {
	return DefaultController().Get()
}

// Set replaces the current convention of the default controller.
func Set(s Scale) error {
	return DefaultController().Set(s)
}

// Override overrides the default controller's convention; see
// Controller.Override.
func Override(s Scale) (restore func(), err error) {
	return DefaultController().Override(s)
}

// With runs fn with the default controller's convention overridden.
func With(s Scale, fn func()) error {
	return DefaultController().With(s, fn)
}
