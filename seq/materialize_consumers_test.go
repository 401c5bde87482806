package seq_test

import (
	"testing"

	"github.com/on-the-ground/lazyseq/iterator"
	"github.com/on-the-ground/lazyseq/search"
	"github.com/on-the-ground/lazyseq/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A materialized prefix is an ordinary finite slice: it can be walked by an
// external iterator and, being non-decreasing here, searched directly.
func TestMaterializedPrefix_IterateAndSearch(t *testing.T) {
	g := seq.New([]int{0, 1}, seq.Recurrence(2, func(w []int) int {
		return w[0] + w[1]
	}))

	prefix, err := g.Materialize(12)
	require.NoError(t, err)

	it := iterator.New(prefix)
	count := 0
	for range it.All() {
		count++
	}
	assert.Equal(t, 12, count)

	idx, ok := search.Binary(55, prefix)
	require.True(t, ok)
	assert.Equal(t, 10, idx)

	_, ok = search.Binary(56, prefix)
	assert.False(t, ok)
}
