// Package iterator provides an external pull iterator over a fixed,
// already-materialized collection. Each consumer owns its own cursor:
// iterating never mutates the underlying collection, and independent
// iterators over the same data advance independently.
package iterator

import "iter"

// Iterator is a stateful cursor over a fixed collection. The zero value
// is an exhausted iterator over nothing; use New to iterate real data.
//
// An Iterator is single-owner. Concurrent consumers should each construct
// their own via New rather than sharing one instance.
type Iterator[T any] struct {
	items []T
	pos   int
}

// New returns an Iterator positioned before the first element. The input
// slice is copied, so later mutations of items are not observed.
func New[T any](items []T) *Iterator[T] {
	copied := make([]T, len(items))
	copy(copied, items)
	return &Iterator[T]{items: copied}
}

// Next returns the element under the cursor and advances.
// Once exhausted it keeps returning (zero, false) forever.
func (it *Iterator[T]) Next() (T, bool) {
	if it.pos >= len(it.items) {
		var zero T
		return zero, false
	}
	v := it.items[it.pos]
	it.pos++
	return v, true
}

// Len returns the total number of elements the iterator was built over.
func (it *Iterator[T]) Len() int { return len(it.items) }

// Remaining returns how many elements Next has yet to yield.
func (it *Iterator[T]) Remaining() int { return len(it.items) - it.pos }

// All drains the iterator through a range-over-func sequence, starting
// from the current cursor position.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
