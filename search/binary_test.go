package search_test

import (
	"cmp"
	"math/rand"
	"sort"
	"testing"

	"github.com/on-the-ground/lazyseq/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinary_KnownSequence(t *testing.T) {
	sorted := []int{1, 5, 6, 19, 48, 77, 997}

	idx, ok := search.Binary(77, sorted)
	assert.True(t, ok)
	assert.Equal(t, 5, idx)

	_, ok = search.Binary(7, sorted)
	assert.False(t, ok)
}

func TestBinary_EveryPresentElementIsFound(t *testing.T) {
	cases := [][]int{
		{},
		{3},
		{1, 2},
		{1, 5, 6, 19, 48, 77, 997},
		{-10, -3, 0, 0, 4, 4, 4, 9},
	}
	for _, sorted := range cases {
		for _, target := range sorted {
			idx, ok := search.Binary(target, sorted)
			require.Truef(t, ok, "%d not found in %v", target, sorted)
			assert.Equal(t, target, sorted[idx])
		}
	}
}

func TestBinary_AbsentElements(t *testing.T) {
	sorted := []int{2, 4, 6, 8}
	for _, target := range []int{1, 3, 5, 7, 9} {
		_, ok := search.Binary(target, sorted)
		assert.Falsef(t, ok, "%d unexpectedly found", target)

		_, ok = search.BinaryRecursive(target, sorted)
		assert.False(t, ok)
	}

	_, ok := search.Binary(1, nil)
	assert.False(t, ok)
	_, ok = search.BinaryRecursive(1, nil)
	assert.False(t, ok)
}

func TestBinary_SingleElement(t *testing.T) {
	idx, ok := search.Binary("m", []string{"m"})
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = search.Binary("z", []string{"m"})
	assert.False(t, ok)
}

// The probe order pins the midpoint rule: on an even span the lower middle
// element is compared first.
func TestBinary_LowerMiddleProbeOrder(t *testing.T) {
	sorted := []int{1, 2, 3, 4}

	var probes []int
	recording := func(a, b int) int {
		probes = append(probes, b)
		return cmp.Compare(a, b)
	}

	idx, ok := search.BinaryFunc(4, sorted, recording)
	require.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, []int{2, 3, 4}, probes)

	probes = nil
	recIdx, recOK := search.BinaryRecursiveFunc(4, sorted, recording)
	assert.Equal(t, idx, recIdx)
	assert.Equal(t, ok, recOK)
	assert.Equal(t, []int{2, 3, 4}, probes, "both renditions should probe identically")
}

func TestBinary_RecursiveAndIterativeAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 500; trial++ {
		n := rng.Intn(40)
		sorted := make([]int, n)
		for i := range sorted {
			sorted[i] = rng.Intn(30)
		}
		sort.Ints(sorted)

		target := rng.Intn(35) - 2
		itIdx, itOK := search.Binary(target, sorted)
		recIdx, recOK := search.BinaryRecursive(target, sorted)

		require.Equalf(t, itOK, recOK, "target %d in %v", target, sorted)
		require.Equalf(t, itIdx, recIdx, "target %d in %v", target, sorted)
		if itOK {
			assert.Equal(t, target, sorted[itIdx])
		}
	}
}

func TestBinaryFunc_CustomComparator(t *testing.T) {
	type row struct {
		key  int
		name string
	}
	byKey := func(a, b row) int { return cmp.Compare(a.key, b.key) }
	sorted := []row{{1, "one"}, {4, "four"}, {9, "nine"}}

	idx, ok := search.BinaryFunc(row{key: 4}, sorted, byKey)
	require.True(t, ok)
	assert.Equal(t, "four", sorted[idx].name)

	_, ok = search.BinaryFunc(row{key: 5}, sorted, byKey)
	assert.False(t, ok)
}
