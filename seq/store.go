package seq

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Store is the append-only cache a Generator fills. Indexes are dense and
// zero-based; once an index is populated its value never changes, and the
// store never shrinks. A Store belongs to exactly one Generator, which
// serializes all access to it.
//
// Store is a sealed interface: construct implementations via NewMemStore.
type Store[T any] interface {
	// Len returns the number of populated elements.
	Len() int

	// At returns the element at index i. i must be in [0, Len()).
	At(i int) T

	// Append populates the next index, Len(), with v.
	Append(v T)

	// Fingerprint returns a digest over every element appended so far,
	// in order. Two stores fed the same elements in the same order have
	// the same fingerprint.
	Fingerprint() uint64

	// store prevents external packages from implementing Store.
	store()
}

type memStore[T any] struct {
	data   []T
	digest *xxhash.Digest
}

// NewMemStore returns an empty in-memory Store.
func NewMemStore[T any]() Store[T] {
	return &memStore[T]{digest: xxhash.New()}
}

func (s *memStore[T]) Len() int { return len(s.data) }

func (s *memStore[T]) At(i int) T { return s.data[i] }

func (s *memStore[T]) Append(v T) {
	s.data = append(s.data, v)
	// The digest keys on the element's printed form so any T works
	// without demanding a hashable constraint.
	_, _ = s.digest.WriteString(fmt.Sprintf("%v\x1e", v))
}

func (s *memStore[T]) Fingerprint() uint64 { return s.digest.Sum64() }

func (s *memStore[T]) store() {}
