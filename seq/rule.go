package seq

import (
	"fmt"

	"github.com/on-the-ground/lazyseq/shared/diag"
)

// Prefix is a read-only view of the elements already computed below the
// index currently being filled. Rules receive their input exclusively
// through this view.
type Prefix[T any] interface {
	// Len returns the number of readable elements. While index i is being
	// filled, Len() == i.
	Len() int

	// At returns the element at index i. i must be in [0, Len());
	// reading at or beyond Len() is a malformed rule.
	At(i int) T
}

// Rule computes the element at index, given the prefix of all elements
// below it. A Rule must be pure: deterministic for identical prefixes,
// with no observable effects outside its return value.
//
// The engine fills indexes in strictly increasing order, so a Rule may
// assume every index below the one requested is present in the prefix.
type Rule[T any] func(prefix Prefix[T], index int) T

// Recurrence builds a Rule from a fixed-arity recurrence: each new element
// is f applied to the k immediately preceding elements, oldest first. The
// seed must cover at least the first k indexes; a shorter seed makes the
// rule read outside its prefix, which is a malformed rule.
func Recurrence[T any](k int, f func(window []T) T) Rule[T] {
	if k <= 0 {
		panic(fmt.Sprintf("recurrence arity should be greater than 0, got %d", k))
	}
	return func(prefix Prefix[T], index int) T {
		window := make([]T, k)
		for j := range k {
			window[j] = prefix.At(index - k + j)
		}
		return f(window)
	}
}

// CopyLast returns a Rule that repeats the immediately preceding element.
// The seed must contain at least one element.
func CopyLast[T any]() Rule[T] {
	return func(prefix Prefix[T], index int) T {
		return prefix.At(index - 1)
	}
}

// boundedPrefix is the guarded view handed to rules. limit is the index
// being filled; any read outside [0, limit) is reported to the sink and
// escalated as an ErrMalformedRule panic.
type boundedPrefix[T any] struct {
	store Store[T]
	limit int
	sink  diag.Sink
	genID string
}

func (p boundedPrefix[T]) Len() int { return p.limit }

func (p boundedPrefix[T]) At(i int) T {
	if i < 0 || i >= p.limit {
		p.sink.Emit(diag.Report{
			Level:   diag.LevelError,
			Message: "rule read outside its prefix",
			Fields: map[string]interface{}{
				"generator_id": p.genID,
				"read_index":   i,
				"fill_index":   p.limit,
			},
		})
		panic(fmt.Errorf("%w: read index %d while filling index %d", ErrMalformedRule, i, p.limit))
	}
	return p.store.At(i)
}
