package strcore

// Fold maps one Unicode codepoint to its locale-independent case-folded
// form (spec §4.B). It writes 1..3 codepoints into out and returns the
// count. The default, covering every rune not present in any table, is the
// identity fold: out[0] = r, return 1.
//
// Lookup order: one-to-many expansions, then isolated exceptions, then
// additive ranges, then stride ranges — each tier is checked only if the
// previous one misses, so the first tier holding a codepoint wins (U+0130
// and U+1E9E appear in both the expansion and exception tables; their
// expansion is what Fold returns).
func Fold(r rune, out *[3]rune) int {
	if expansion, ok := foldExpansions[r]; ok {
		copy(out[:], expansion)
		return len(expansion)
	}
	if exc, ok := foldExceptions[r]; ok {
		out[0] = exc
		return 1
	}
	for _, rg := range additiveRanges {
		if r >= rg.lo && r <= rg.hi {
			out[0] = r + rune(rg.delta)
			return 1
		}
	}
	for _, rg := range strideRanges {
		if r >= rg.lo && r <= rg.hi && (r-rg.lo)%2 == 0 {
			out[0] = r + 1
			return 1
		}
	}
	out[0] = r
	return 1
}

// CaseFold returns the case-folded form of src in a freshly allocated
// slice. The folded form needs at most 3*len(src) bytes (spec §6), which is
// the capacity CaseFold reserves up front; the returned length is the
// number of bytes actually written. Bytes that do not start a valid UTF-8
// sequence are skipped.
//
// Fold idempotence (spec §8) holds by construction: every table entry maps
// to codepoints that are themselves already in folded form, so a second
// pass through Fold is a no-op for each of them.
func CaseFold(src []byte) []byte {
	dst := make([]byte, 0, len(src)*3)
	var buf [3]rune
	var encBuf [4]byte
	i := 0
	for i < len(src) {
		r, size, ok := DecodeRune(src[i:])
		if !ok {
			i++
			continue
		}
		n := Fold(r, &buf)
		for k := 0; k < n; k++ {
			w := EncodeRune(encBuf[:], buf[k])
			dst = append(dst, encBuf[:w]...)
		}
		i += size
	}
	return dst
}

// UnpackRunes decodes up to len(out) codepoints from the start of text,
// writing them into out and returning the number of input bytes consumed
// and the number of runes written. Each call stops when out is full or text
// is exhausted; the number of input bytes consumed per call is not capped
// by any fixed chunk width. It is designed to be driven in a loop until
// advanced reaches len(text). Bytes that do not start a valid UTF-8
// sequence are skipped.
func UnpackRunes(text []byte, out []rune) (advanced int, n int) {
	i := 0
	for n < len(out) && i < len(text) {
		r, size, ok := DecodeRune(text[i:])
		if !ok {
			i++
			continue
		}
		out[n] = r
		n++
		i += size
	}
	return i, n
}
