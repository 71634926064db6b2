// Package arena provides a bounded-lifetime, append-only store for the
// nodes of a single compiled pattern.
//
// A compiled pattern owns exactly one Arena; every node of its graph is
// allocated from that Arena, and the graph refers to nodes by pointer.
// Dropping the owning Regex drops the Arena and every node in one step.
package arena

import "github.com/coregx/waverex/internal/conv"

// Arena owns a growable, append-only sequence of values of type T, each
// identified by the order in which it was allocated. It mirrors the
// fixed-block arena allocator of the original implementation, except
// that Go's garbage collector retires the "destroy as a unit" step: an
// Arena (and everything it holds) is reclaimed once nothing references
// it anymore.
type Arena[T any] struct {
	items []T
}

// New creates an Arena with room for capacityHint items before its first
// reallocation. capacityHint is advisory; the Arena grows past it freely.
func New[T any](capacityHint int) *Arena[T] {
	return &Arena[T]{items: make([]T, 0, capacityHint)}
}

// Alloc appends a new item to the arena. make is called with the index
// the new item will occupy (its sequence id) and must return the value
// to store; this lets callers stamp the id onto the value itself.
func (a *Arena[T]) Alloc(make func(id uint32) T) T {
	id := conv.IntToUint32(len(a.items))
	v := make(id)
	a.items = append(a.items, v)
	return v
}

// Len returns the number of items allocated so far.
func (a *Arena[T]) Len() uint32 {
	return conv.IntToUint32(len(a.items))
}

// All returns every item in allocation order. The returned slice aliases
// the Arena's backing storage and must not be retained past further
// calls to Alloc.
func (a *Arena[T]) All() []T {
	return a.items
}
