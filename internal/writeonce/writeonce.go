// Package writeonce provides a single-assignment cell.
//
// The first Set stores its value; every later Set is ignored and reports
// false. A Value is safe for concurrent use and its zero value is empty.
package writeonce

import "sync"

// Value holds at most one assignment of a T.
type Value[T any] struct {
	mu  sync.Mutex
	v   T
	set bool
}

// Set stores v if the cell is still empty and reports whether it did.
func (c *Value[T]) Set(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set {
		return false
	}
	c.v = v
	c.set = true
	return true
}

// Get returns the stored value and whether one has been set.
func (c *Value[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v, c.set
}

// IsSet reports whether the cell has been assigned.
func (c *Value[T]) IsSet() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set
}
