package indexedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexedSet_Put(t *testing.T) {
	ss := NewSet[uint64](16)

	require.True(t, ss.Put(1))
	require.False(t, ss.Put(1))
	require.True(t, ss.Put(2))

	assert.Equal(t, 2, ss.Len())
	assert.True(t, ss.Has(1))
	assert.False(t, ss.Has(3))
}

func TestIndexedSet_Put_KeepsSlot(t *testing.T) {
	ss := NewSet[string](16)
	ss.Put("a")
	ss.Put("b")

	// Re-adding a member is a no-op, it does not move to the tail.
	ss.Put("a")
	require.Equal(t, []string{"a", "b"}, ss.Keys())
}

func TestIndexedSet_Delete(t *testing.T) {
	ss := NewSet[uint64](16)

	for i := range uint64(10) {
		ss.Put(i)
	}

	for i := range uint64(5) {
		require.True(t, ss.Delete(i))
	}
	require.False(t, ss.Delete(0))

	for i := range uint64(10) {
		require.Equal(t, i >= 5, ss.Has(i))
	}

	requireConsistent(t, ss.m)
}

func TestIndexedSet_PopRandom(t *testing.T) {
	ss := NewSet(16, WithSeed[int, struct{}](8))
	for i := range 100 {
		ss.Put(i)
	}

	seen := make(map[int]struct{})
	for ss.Len() > 0 {
		k, err := ss.PopRandom()
		require.NoError(t, err)
		require.False(t, ss.Has(k))

		_, dup := seen[k]
		require.False(t, dup)
		seen[k] = struct{}{}
	}

	require.Len(t, seen, 100)

	_, err := ss.PopRandom()
	require.ErrorIs(t, err, ErrEmpty)
}

func TestIndexedSet_All(t *testing.T) {
	ss := NewSet[int](16)
	ss.Put(1)
	ss.Put(2)
	ss.Put(3)

	var got []int
	for k := range ss.All() {
		got = append(got, k)
	}
	require.Equal(t, []int{1, 2, 3}, got)

	ss.Reset()
	require.Zero(t, ss.Len())
	require.Zero(t, ss.Stats().Size)
}

func TestIndexedSet_RandomKeys(t *testing.T) {
	ss := NewSet(16, WithSeed[string, struct{}](2))
	ss.Put("x")
	ss.Put("y")

	require.ElementsMatch(t, []string{"x", "y"}, ss.RandomKeys(5))

	k, err := ss.RandomKey()
	require.NoError(t, err)
	require.True(t, ss.Has(k))
}
