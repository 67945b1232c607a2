package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/unionfind"
)

func TestNew_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		uf, err := unionfind.New(n)
		assert.Nil(t, uf)
		assert.ErrorIs(t, err, unionfind.ErrInvalidSize, "n=%d", n)
	}
}

func TestNew_Singletons(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, uf.Size())
	assert.Equal(t, 5, uf.Count())
	for i := 0; i < 5; i++ {
		r, err := uf.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, r, "element %d should be its own root", i)
		sz, err := uf.SetSize(i)
		require.NoError(t, err)
		assert.Equal(t, 1, sz)
	}
}

func TestFindUnion_OutOfRange(t *testing.T) {
	uf, err := unionfind.New(3)
	require.NoError(t, err)

	cases := []struct {
		name string
		call func() error
	}{
		{"FindNegative", func() error { _, err := uf.Find(-1); return err }},
		{"FindTooLarge", func() error { _, err := uf.Find(3); return err }},
		{"UnionFirst", func() error { _, err := uf.Union(-1, 0); return err }},
		{"UnionSecond", func() error { _, err := uf.Union(0, 3); return err }},
		{"Connected", func() error { _, err := uf.Connected(0, 7); return err }},
		{"SetSize", func() error { _, err := uf.SetSize(9); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.call(), unionfind.ErrOutOfRange)
		})
	}
	// Nothing was merged by the failing calls.
	assert.Equal(t, 3, uf.Count())
}

func TestUnion_MergesAndCounts(t *testing.T) {
	uf, err := unionfind.New(6)
	require.NoError(t, err)

	_, err = uf.Union(0, 1)
	require.NoError(t, err)
	_, err = uf.Union(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, uf.Count())

	ok, err := uf.Connected(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = uf.Connected(1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = uf.Union(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, uf.Count())
	ok, err = uf.Connected(0, 2)
	require.NoError(t, err)
	assert.True(t, ok, "transitive union must connect 0 and 2")

	sz, err := uf.SetSize(3)
	require.NoError(t, err)
	assert.Equal(t, 4, sz)
}

func TestUnion_SameSetIsNoOp(t *testing.T) {
	uf, err := unionfind.New(4)
	require.NoError(t, err)

	r1, err := uf.Union(0, 1)
	require.NoError(t, err)
	r2, err := uf.Union(1, 0)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
	assert.Equal(t, 3, uf.Count())
}

func TestUnion_DeterministicRoots(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)

	r, _ := uf.Union(0, 1)
	assert.Equal(t, 0, r, "tie keeps root of first argument")
	r, _ = uf.Union(2, 0)
	assert.Equal(t, 0, r, "larger set survives")
	r, _ = uf.Union(3, 4)
	assert.Equal(t, 3, r)
	r, _ = uf.Union(4, 2)
	assert.Equal(t, 0, r, "set of size 3 absorbs set of size 2")
}

// TestContract_RandomUnions checks Find against a naive label partition
// after a random sequence of unions.
func TestContract_RandomUnions(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(7))
	uf, err := unionfind.New(n)
	require.NoError(t, err)

	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	relabel := func(from, to int) {
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}

	for k := 0; k < 150; k++ {
		a, b := rng.Intn(n), rng.Intn(n)
		_, err := uf.Union(a, b)
		require.NoError(t, err)
		if label[a] != label[b] {
			relabel(label[b], label[a])
		}
	}

	sets := map[int]struct{}{}
	for a := 0; a < n; a++ {
		sets[label[a]] = struct{}{}
		for b := a + 1; b < n; b += 13 {
			ok, err := uf.Connected(a, b)
			require.NoError(t, err)
			assert.Equal(t, label[a] == label[b], ok, "Connected(%d,%d)", a, b)
		}
	}
	assert.Equal(t, len(sets), uf.Count())
}
