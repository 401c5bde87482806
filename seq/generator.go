package seq

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/lazyseq/shared/diag"
)

// ErrIndexOverflow indicates a requested index whose cache would not be
// representable: a negative index, or one for which index+1 overflows int.
// It is the only recoverable failure of a Generator; callers may clamp or
// reject and carry on.
var ErrIndexOverflow = errors.New("index outside representable cache bounds")

// ErrMalformedRule indicates a Rule that read an index at or beyond the one
// it was asked to fill. This is a programming defect, not a runtime error:
// the guarded prefix reports it to the diagnostics sink and panics, so tests
// catch it before it can poison the cache.
var ErrMalformedRule = errors.New("computation rule read outside its prefix")

// Generator memoizes an infinite sequence defined by a Rule. It owns an
// append-only Store and fills it lazily: Get computes every missing index
// up to the requested one, in strictly increasing order, exactly once.
//
// Get is serialized per generator, so a Generator shared across goroutines
// still computes each index at most once.
type Generator[T any] struct {
	mu    sync.Mutex
	id    string
	store Store[T]
	rule  Rule[T]
	sink  diag.Sink
}

// New returns a Generator over a fresh in-memory store with diagnostics
// discarded. seed may be empty; it pre-populates indexes 0..len(seed)-1.
func New[T any](seed []T, rule Rule[T]) *Generator[T] {
	return NewGenerator(NewMemStore[T](), diag.NopSink(), seed, rule)
}

// NewGenerator is the full-form constructor: the caller supplies the store
// to fill and the sink receiving fill traces and defect reports. The store
// must not be touched by anyone else afterwards.
func NewGenerator[T any](store Store[T], sink diag.Sink, seed []T, rule Rule[T]) *Generator[T] {
	for _, v := range seed {
		store.Append(v)
	}
	return &Generator[T]{
		id:    uuid.New().String(),
		store: store,
		rule:  rule,
		sink:  sink,
	}
}

// Get returns the element at index, computing and caching every element
// between the current cache length and index first. Requests at or below
// the cache length are pure reads.
func (g *Generator[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index == math.MaxInt {
		return zero, fmt.Errorf("%w: %d", ErrIndexOverflow, index)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if index < g.store.Len() {
		return g.store.At(index), nil
	}

	from := g.store.Len()
	start := time.Now()
	for i := from; i <= index; i++ {
		v := g.rule(boundedPrefix[T]{
			store: g.store,
			limit: i,
			sink:  g.sink,
			genID: g.id,
		}, i)
		g.store.Append(v)
	}
	span := NewTimeSpan(start, time.Now())

	g.sink.Emit(diag.Report{
		Level:   diag.LevelDebug,
		Message: "cache filled",
		Fields: map[string]interface{}{
			"generator_id": g.id,
			"from":         from,
			"to":           index,
			"span":         span.String(),
			"duration":     span.Duration(),
		},
	})

	return g.store.At(index), nil
}

// Len returns the current cache length. It never decreases.
func (g *Generator[T]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.Len()
}

// Fingerprint returns the store's digest over all cached elements. Two
// generators built from the same seed and rule report equal fingerprints
// at equal cache lengths.
func (g *Generator[T]) Fingerprint() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.Fingerprint()
}

// Materialize returns a copy of the first n elements, computing any that
// are missing. The copy is independent of the cache and safe to hand to
// iterator or search consumers.
func (g *Generator[T]) Materialize(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrIndexOverflow, n)
	}
	if n == 0 {
		return []T{}, nil
	}
	if _, err := g.Get(n - 1); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]T, n)
	for i := range n {
		out[i] = g.store.At(i)
	}
	return out, nil
}
