// Package appctx holds state shared between the UI goroutine and in-flight
// board requests.
package appctx

import "sync"

// SafeRef guards a value that several goroutines read and replace. Reads take
// a shared lock; Set and Update are serialized.
//
// Get returns a shallow copy. Values holding slices or pointers must be
// cloned by the caller before handing them out, and Update callbacks should
// replace such fields rather than mutate them in place.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef creates a SafeRef initialized with the given value.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns a shallow copy of the current value.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Set replaces the current value under a write lock.
func (r *SafeRef[T]) Set(val T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val = val
}

// Update applies fn to the value under the write lock.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}
