package strcore

// Case-insensitive find (spec §4.F): Rabin-Karp over a rolling hash of
// folded runes, sliding one source codepoint at a time. The folded-rune
// iterator is the "coroutine replacement" spec §9 calls for: an explicit
// state record with a small pending buffer and two cursors, rather than a
// generator — the same shape the teacher reaches for when it needs
// resumable byte-at-a-time state (table.go's encodeChunk/Decode loops
// carry their cursor in a local variable across iterations instead of
// suspending); here the cursor is promoted to a struct because two
// instances must be alive and interleaved at once (needle vs. window).

const foldedRuneBase = 257

// foldedRuneIter pulls one folded rune at a time from a source UTF-8 span,
// buffering up to the three codepoints one source rune can expand into
// (spec §3 "Folded-rune iterator"). An invalid UTF-8 byte ends the stream
// early rather than skipping it, matching the silent-truncation policy of
// spec §7.
type foldedRuneIter struct {
	data         []byte
	pos          int
	pending      [3]rune
	pendingLen   int
	pendingIndex int
}

func newFoldedRuneIter(data []byte) *foldedRuneIter {
	return &foldedRuneIter{data: data}
}

// next returns the next folded rune, or ok=false once the span is
// exhausted or a bad byte is hit.
func (it *foldedRuneIter) next() (r rune, ok bool) {
	if it.pendingIndex < it.pendingLen {
		r = it.pending[it.pendingIndex]
		it.pendingIndex++
		return r, true
	}
	if it.pos >= len(it.data) {
		return 0, false
	}
	src, size, decOk := DecodeRune(it.data[it.pos:])
	if !decOk {
		return 0, false
	}
	it.pendingLen = Fold(src, &it.pending)
	it.pendingIndex = 1
	it.pos += size
	return it.pending[0], true
}

// bytePos is the number of source bytes consumed so far: the caller's
// window_end tracker (spec §3 "Window (find)").
func (it *foldedRuneIter) bytePos() int { return it.pos }

func pow257(n int) uint64 {
	result := uint64(1)
	for i := 0; i < n; i++ {
		result *= foldedRuneBase
	}
	return result
}

// preHashNeedle accumulates the needle's folded-rune hash via Horner's
// method (hash = hash*257 + rune) and counts the folded runes (spec §4.F
// step 1).
func preHashNeedle(needle []byte) (hash uint64, count int) {
	it := newFoldedRuneIter(needle)
	for {
		r, ok := it.next()
		if !ok {
			break
		}
		hash = hash*foldedRuneBase + uint64(r)
		count++
	}
	return hash, count
}

// verifyMatch confirms needle and the candidate window byte span fold to
// exactly the same folded-rune sequence, pulling from both iterators in
// lockstep and requiring simultaneous exhaustion (spec §4.F step 4).
func verifyMatch(needle, window []byte) bool {
	ni := newFoldedRuneIter(needle)
	wi := newFoldedRuneIter(window)
	for {
		rn, okn := ni.next()
		rw, okw := wi.next()
		if okn != okw {
			return false
		}
		if !okn {
			return true
		}
		if rn != rw {
			return false
		}
	}
}

// FindCaseInsensitive locates the first case-insensitive occurrence of
// needle in haystack (spec §4.F). It returns the byte offset and byte
// length of the match in haystack, or ok=false if there is none. An empty
// needle always matches at offset 0 with length 0 (spec's "Empty-needle
// rule").
func FindCaseInsensitive(haystack, needle []byte) (start int, length int, ok bool) {
	if len(needle) == 0 {
		return 0, 0, true
	}

	needleHash, m := preHashNeedle(needle)
	if m == 0 {
		return 0, 0, false
	}
	highestPower := pow257(m - 1)

	hIter := newFoldedRuneIter(haystack)
	windowStart := 0
	var windowHash uint64
	windowCount := 0
	for windowCount < m {
		r, more := hIter.next()
		if !more {
			break
		}
		windowHash = windowHash*foldedRuneBase + uint64(r)
		windowCount++
	}
	if windowCount < m {
		return 0, 0, false
	}
	windowEnd := hIter.bytePos()

	for {
		if windowHash == needleHash && verifyMatch(needle, haystack[windowStart:windowEnd]) {
			return windowStart, windowEnd - windowStart, true
		}

		src, size, decOk := DecodeRune(haystack[windowStart:])
		if !decOk {
			return 0, 0, false
		}
		var oldFolded [3]rune
		k := Fold(src, &oldFolded)
		for i := 0; i < k; i++ {
			windowHash = (windowHash - uint64(oldFolded[i])*highestPower) * foldedRuneBase
			windowCount--
		}
		windowStart += size

		// Each removal above left one empty low-order digit behind, so the
		// refill must re-fill those digits from the highest power down —
		// not just add into the lowest one — whenever more than one rune
		// was removed (a one-to-many fold such as ß -> s,s landing on the
		// window's leading edge). deficit tracks how many digits are still
		// empty; the first refill lands on power deficit-1, the last on
		// power 0, matching the positions the removal loop vacated.
		deficit := m - windowCount
		for windowCount < m {
			r, more := hIter.next()
			if !more {
				break
			}
			deficit--
			windowHash += uint64(r) * pow257(deficit)
			windowCount++
		}
		windowEnd = hIter.bytePos()
		if windowCount < m {
			return 0, 0, false
		}
	}
}

// OrderCaseInsensitive compares a and b under case folding, pulling one
// folded rune from each side at a time and returning on first divergence
// or exhaustion (spec §4.F, final paragraph). It returns a negative value
// if a < b, zero if equal, and a positive value if a > b — total,
// antisymmetric and transitive (spec §8 "Order totality").
func OrderCaseInsensitive(a, b []byte) int {
	ai := newFoldedRuneIter(a)
	bi := newFoldedRuneIter(b)
	for {
		ra, oka := ai.next()
		rb, okb := bi.next()
		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return -1
		case !okb:
			return 1
		case ra != rb:
			if ra < rb {
				return -1
			}
			return 1
		}
	}
}
