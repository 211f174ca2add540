// Package syncx provides scoped locking around shared booth state
package syncx

import "sync"

// RWGuard wraps RWMutex with scoped lock helpers.
type RWGuard[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewGuard creates a guarded value.
func NewGuard[T any](initial T) *RWGuard[T] {
	return &RWGuard[T]{value: initial}
}

// View runs fn under the read lock and returns its result.
func View[T, R any](g *RWGuard[T], fn func(*T) R) R {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return fn(&g.value)
}

// Write executes fn while holding write lock, fn receives pointer for mutation.
func (g *RWGuard[T]) Write(fn func(*T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.value)
}

// WriteIf runs fn under the write lock only when ok reports true for the
// current value. The check and the mutation happen atomically.
func (g *RWGuard[T]) WriteIf(ok func(*T) bool, fn func(*T)) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !ok(&g.value) {
		return false
	}
	fn(&g.value)
	return true
}
