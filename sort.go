package strcore

import (
	"bytes"
	"math/bits"
	"unsafe"
)

// Sort engine (spec §4.D). Public contract: given a collection, fill order
// with a permutation of [0, N) such that reading the collection in that
// order yields a non-decreasing lexicographic byte sequence. Stability is
// not guaranteed (spec's Non-goals).
//
// The packed-window trick below is grounded in the same bit-packing idiom
// the teacher uses for its compression symbols (symbol.go's val/icl: up to
// 8 payload bytes plus packed metadata in one machine word, compared as a
// plain integer); here the packed word carries up to sortWindowWidth prefix
// bytes of one string plus an exported-length byte, byte-reversed so that
// integer '<' matches lexicographic '<' on the underlying bytes.

const (
	// sortWindowWidth is W from spec §3: word_size - 1 payload bytes. This
	// module targets 64-bit words only (wordSize=8), so W=7; a 32-bit
	// build would use W=3 under the identical scheme.
	sortWindowWidth = 7

	// smallCollectionThreshold is the spec §4.D small-N fast path boundary:
	// at or below this size, Sort runs plain insertion sort with no scratch
	// allocation at all.
	smallCollectionThreshold = 32

	// quicksortInsertionCutoff bounds the recursive 3-way quicksort's own
	// base case, the same way the standard library's sort package falls
	// back to insertion sort below a small constant.
	quicksortInsertionCutoff = 12
)

// Sort orders c lexicographically, writing the resulting permutation into
// order (which must have length c.Len()). alloc supplies the scratch
// windows array; the only failure mode is alloc running out of memory.
func Sort(c Collection, alloc Allocator, order []int) error {
	n := c.Len()
	if n <= smallCollectionThreshold {
		for i := range order[:n] {
			order[i] = i
		}
		insertionSortBytes(c, order[:n])
		return nil
	}

	raw, err := alloc.Allocate(n * 8)
	if err != nil {
		return ErrOutOfMemory
	}
	defer alloc.Free(raw)
	windows := unsafe.Slice((*uint64)(unsafe.Pointer(&raw[0])), n)
	for i := range order[:n] {
		order[i] = i
	}

	sortWindowRange(c, order, windows, 0, 0, n)
	return nil
}

// insertionSortBytes is the small-N base case: a direct bytewise compare,
// no window packing, no scratch (spec §4.D).
func insertionSortBytes(c Collection, order []int) {
	for i := 1; i < len(order); i++ {
		cur := order[i]
		curBytes := c.At(cur)
		j := i - 1
		for j >= 0 && bytes.Compare(c.At(order[j]), curBytes) > 0 {
			order[j+1] = order[j]
			j--
		}
		order[j+1] = cur
	}
}

// packWindow packs min(len(s)-startChar, sortWindowWidth) bytes of s from
// startChar into a word, zero-padding short strings, stores the exported
// length in the top byte, then byte-reverses the whole word (spec §3
// "Sort window"). After reversal the exported length sits in the
// least-significant byte, which is what makes a shorter string's window
// compare less than a longer string sharing its prefix.
func packWindow(s []byte, startChar int) uint64 {
	var buf [8]byte
	remaining := len(s) - startChar
	if remaining < 0 {
		remaining = 0
	}
	n := min(remaining, sortWindowWidth)
	copy(buf[:n], s[startChar:startChar+n])
	buf[7] = byte(n)

	word := uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
		uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56
	return bits.ReverseBytes64(word)
}

// sortWindowRange implements spec §4.D.3: pack windows for [lo, hi) at byte
// offset startChar, 3-way quicksort the range by window value (swapping
// order in parallel), then recurse into any run of equal, full-width
// windows at startChar+sortWindowWidth.
func sortWindowRange(c Collection, order []int, windows []uint64, startChar, lo, hi int) {
	if hi-lo <= 1 {
		return
	}
	for i := lo; i < hi; i++ {
		windows[i] = packWindow(c.At(order[i]), startChar)
	}

	quicksort3Way(order, windows, lo, hi)

	i := lo
	for i < hi {
		j := i + 1
		for j < hi && windows[j] == windows[i] {
			j++
		}
		if j-i > 1 {
			if byte(windows[i]) == sortWindowWidth {
				sortWindowRange(c, order, windows, startChar+sortWindowWidth, i, j)
			}
			// byte(windows[i]) < sortWindowWidth: the run was distinguished
			// purely by length and is already totally ordered.
		}
		i = j
	}
}

// quicksort3Way is a median-of-three, Dutch-national-flag 3-way quicksort
// over windows[lo:hi], applying every swap to order in lockstep so the two
// arrays stay aligned (spec §4.D.3.b).
func quicksort3Way(order []int, windows []uint64, lo, hi int) {
	for hi-lo > quicksortInsertionCutoff {
		mid := lo + (hi-lo)/2
		pivot := medianOfThree(windows[lo], windows[mid], windows[hi-1])

		lt, i, gt := lo, lo, hi-1
		for i <= gt {
			switch {
			case windows[i] < pivot:
				swapWindow(order, windows, lt, i)
				lt++
				i++
			case windows[i] > pivot:
				swapWindow(order, windows, i, gt)
				gt--
			default:
				i++
			}
		}

		// Recurse into the smaller side, loop into the larger — bounds
		// worst-case stack depth to O(log n) the way introsort-style
		// quicksorts do.
		if lt-lo < hi-(gt+1) {
			quicksort3Way(order, windows, lo, lt)
			lo = gt + 1
		} else {
			quicksort3Way(order, windows, gt+1, hi)
			hi = lt
		}
	}
	insertionSortWindows(order, windows, lo, hi)
}

func medianOfThree(a, b, c uint64) uint64 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
		if a > b {
			b = a
		}
	}
	return b
}

func insertionSortWindows(order []int, windows []uint64, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		w, o := windows[i], order[i]
		j := i - 1
		for j >= lo && windows[j] > w {
			windows[j+1] = windows[j]
			order[j+1] = order[j]
			j--
		}
		windows[j+1] = w
		order[j+1] = o
	}
}

func swapWindow(order []int, windows []uint64, i, j int) {
	order[i], order[j] = order[j], order[i]
	windows[i], windows[j] = windows[j], windows[i]
}
