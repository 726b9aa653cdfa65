package strcore

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntersectBasic(t *testing.T) {
	a := collOf("banana", "apple", "cherry")
	b := collOf("cherry", "orange", "pineapple", "banana")

	posA := make([]int, min(a.Len(), b.Len()))
	posB := make([]int, min(a.Len(), b.Len()))
	count, err := Intersect(a, b, DefaultAllocator, 42, posA, posB)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	got := map[[2]int]bool{}
	for i := 0; i < count; i++ {
		got[[2]int{posA[i], posB[i]}] = true
	}
	require.True(t, got[[2]int{0, 3}])
	require.True(t, got[[2]int{2, 0}])
}

func TestIntersectEmpty(t *testing.T) {
	a := sliceCollection{}
	b := collOf("x")
	posA := make([]int, 0)
	posB := make([]int, 0)
	count, err := Intersect(a, b, DefaultAllocator, 0, posA, posB)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestIntersectSoundness(t *testing.T) {
	a := collOf("banana", "apple", "cherry", "date", "fig")
	b := collOf("fig", "kiwi", "apple", "cherry", "grape")
	posA := make([]int, min(a.Len(), b.Len()))
	posB := make([]int, min(a.Len(), b.Len()))
	count, err := Intersect(a, b, DefaultAllocator, 7, posA, posB)
	require.NoError(t, err)
	for i := 0; i < count; i++ {
		require.Equal(t, a.At(posA[i]), b.At(posB[i]))
	}
}

func TestIntersectCompletenessDeduped(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	universe := make([]string, 500)
	for i := range universe {
		universe[i] = fmt.Sprintf("item-%d", i)
	}
	rng.Shuffle(len(universe), func(i, j int) { universe[i], universe[j] = universe[j], universe[i] })

	aStrs := universe[:300]
	bStrs := append(append([]string{}, universe[150:300]...), universe[300:450]...)

	want := map[string]bool{}
	for _, s := range universe[150:300] {
		want[s] = true
	}

	a := make(sliceCollection, len(aStrs))
	for i, s := range aStrs {
		a[i] = []byte(s)
	}
	b := make(sliceCollection, len(bStrs))
	for i, s := range bStrs {
		b[i] = []byte(s)
	}

	posA := make([]int, min(a.Len(), b.Len()))
	posB := make([]int, min(a.Len(), b.Len()))
	count, err := Intersect(a, b, DefaultAllocator, 99, posA, posB)
	require.NoError(t, err)
	require.Equal(t, len(want), count)

	gotMatches := map[string]bool{}
	for i := 0; i < count; i++ {
		require.Equal(t, a.At(posA[i]), b.At(posB[i]))
		gotMatches[string(a.At(posA[i]))] = true
	}
	require.Equal(t, want, gotMatches)
}

func TestWideIntersectAgreesWithIntersect(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	universe := make([]string, 400)
	for i := range universe {
		l := 4 + rng.Intn(24)
		buf := make([]byte, l)
		for j := range buf {
			buf[j] = byte('a' + rng.Intn(10))
		}
		universe[i] = string(buf)
	}
	rng.Shuffle(len(universe), func(i, j int) { universe[i], universe[j] = universe[j], universe[i] })

	a := make(sliceCollection, 0, 250)
	for _, s := range universe[:250] {
		a = append(a, []byte(s))
	}
	b := make(sliceCollection, 0, 250)
	for _, s := range universe[100:350] {
		b = append(b, []byte(s))
	}

	capN := min(a.Len(), b.Len())
	posA1, posB1 := make([]int, capN), make([]int, capN)
	count1, err := Intersect(a, b, DefaultAllocator, 55, posA1, posB1)
	require.NoError(t, err)

	posA2, posB2 := make([]int, capN), make([]int, capN)
	count2, err := WideIntersect(a, b, DefaultAllocator, 55, posA2, posB2)
	require.NoError(t, err)

	require.Equal(t, count1, count2)

	toSet := func(posA, posB []int, n int) map[string]bool {
		out := map[string]bool{}
		for i := 0; i < n; i++ {
			out[string(a.At(posA[i]))+"|"+string(b.At(posB[i]))] = true
		}
		return out
	}
	require.Equal(t, toSet(posA1, posB1, count1), toSet(posA2, posB2, count2))
}

func TestIntersectSwapsOutputOrdering(t *testing.T) {
	// b is the smaller collection here, so the build side is b; output
	// indices must still refer to (a-index, b-index) regardless of which
	// side was chosen as build.
	a := collOf("x", "y", "z", "w")
	b := collOf("y", "z")
	posA := make([]int, min(a.Len(), b.Len()))
	posB := make([]int, min(a.Len(), b.Len()))
	count, err := Intersect(a, b, DefaultAllocator, 0, posA, posB)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	for i := 0; i < count; i++ {
		require.Equal(t, a.At(posA[i]), b.At(posB[i]))
	}
}
