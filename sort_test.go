package strcore

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func sortedReadout(c Collection, order []int) []string {
	out := make([]string, len(order))
	for i, idx := range order {
		out[i] = string(c.At(idx))
	}
	return out
}

func TestSortWithDuplicates(t *testing.T) {
	c := collOf("bb", "a", "bbb", "bb", "aa")
	order := make([]int, c.Len())
	require.NoError(t, Sort(c, DefaultAllocator, order))
	require.Equal(t, []string{"a", "aa", "bb", "bb", "bbb"}, sortedReadout(c, order))
}

func TestSortEmbeddedNUL(t *testing.T) {
	c := sliceCollection{{'a', 0, 'b'}, {'a', 0, 'a'}, {'a'}}
	order := make([]int, c.Len())
	require.NoError(t, Sort(c, DefaultAllocator, order))
	require.Equal(t, []string{"a", "a\x00a", "a\x00b"}, sortedReadout(c, order))
}

func TestSortIsPermutation(t *testing.T) {
	c := collOf("bb", "a", "bbb", "bb", "aa")
	order := make([]int, c.Len())
	require.NoError(t, Sort(c, DefaultAllocator, order))
	seen := make([]bool, c.Len())
	for _, idx := range order {
		require.False(t, seen[idx], "index %d repeated", idx)
		seen[idx] = true
	}
}

func TestSortLargeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 5000
	strs := make(sliceCollection, n)
	for i := range strs {
		l := rng.Intn(20)
		s := make([]byte, l)
		for j := range s {
			s[j] = byte('a' + rng.Intn(5))
		}
		strs[i] = s
	}

	order := make([]int, n)
	require.NoError(t, Sort(strs, DefaultAllocator, order))

	require.Len(t, order, n)
	seen := make([]bool, n)
	for _, idx := range order {
		require.False(t, seen[idx])
		seen[idx] = true
	}
	for i := 1; i < n; i++ {
		require.LessOrEqual(t, bytes.Compare(strs.At(order[i-1]), strs.At(order[i])), 0,
			fmt.Sprintf("out of order at %d", i))
	}
}

func TestSortLargeWithLongSharedPrefixes(t *testing.T) {
	// Forces the start_char += W refinement recursion (spec §4.D.3.c) by
	// giving every string the same long prefix.
	n := 200
	strs := make(sliceCollection, n)
	for i := range strs {
		suffix := fmt.Sprintf("%04d", (n-1-i)%n)
		strs[i] = []byte("the-quick-brown-fox-jumps-over-" + suffix)
	}
	order := make([]int, n)
	require.NoError(t, Sort(strs, DefaultAllocator, order))
	for i := 1; i < n; i++ {
		require.LessOrEqual(t, bytes.Compare(strs.At(order[i-1]), strs.At(order[i])), 0)
	}
}

func TestSortSmallAndLargeAgree(t *testing.T) {
	base := []string{"bb", "a", "bbb", "bb", "aa", "z", "ab", "abc", "abcd"}
	small := make(sliceCollection, len(base))
	for i, s := range base {
		small[i] = []byte(s)
	}
	orderSmall := make([]int, small.Len())
	require.NoError(t, Sort(small, DefaultAllocator, orderSmall))

	padded := make(sliceCollection, 0, len(base)*5)
	for i := 0; i < 5; i++ {
		padded = append(padded, small...)
	}
	orderLarge := make([]int, padded.Len())
	require.NoError(t, Sort(padded, DefaultAllocator, orderLarge))

	for i := 1; i < padded.Len(); i++ {
		require.LessOrEqual(t, bytes.Compare(padded.At(orderLarge[i-1]), padded.At(orderLarge[i])), 0)
	}

	want := make([]string, 0, padded.Len())
	for _, s := range sortedReadout(small, orderSmall) {
		for i := 0; i < 5; i++ {
			want = append(want, s)
		}
	}
	require.Equal(t, want, sortedReadout(padded, orderLarge))
}
