package strcore

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestDecodeRuneRoundTrip(t *testing.T) {
	codepoints := []rune{'a', 'Z', '0', 'ß', 'µ', '€', '中', '𐐀', 0x10FFFF, 0x7F, 0x80, 0x7FF, 0x800}
	for _, c := range codepoints {
		var buf [4]byte
		n := EncodeRune(buf[:], c)
		got, size, ok := DecodeRune(buf[:n])
		require.True(t, ok, "codepoint %U", c)
		require.Equal(t, c, got)
		require.Equal(t, n, size)
	}
}

func TestDecodeRuneMatchesStdlib(t *testing.T) {
	s := "Hello, 世界! straße Οδυσσευς ﬀ 𐐀"
	b := []byte(s)
	i := 0
	for i < len(b) {
		wantR, wantSize := utf8.DecodeRune(b[i:])
		gotR, gotSize, ok := DecodeRune(b[i:])
		require.True(t, ok)
		require.Equal(t, wantR, gotR)
		require.Equal(t, wantSize, gotSize)
		i += gotSize
	}
}

func TestDecodeRuneRejectsOverlong(t *testing.T) {
	// 0xC0 0x80 is an over-long encoding of NUL.
	_, _, ok := DecodeRune([]byte{0xC0, 0x80})
	require.False(t, ok)
}

func TestDecodeRuneRejectsSurrogate(t *testing.T) {
	// 0xED 0xA0 0x80 encodes U+D800, a surrogate half.
	_, _, ok := DecodeRune([]byte{0xED, 0xA0, 0x80})
	require.False(t, ok)
}

func TestDecodeRuneRejectsBeyondMax(t *testing.T) {
	// 0xF4 0x90 0x80 0x80 encodes U+110000, one past U+10FFFF.
	_, _, ok := DecodeRune([]byte{0xF4, 0x90, 0x80, 0x80})
	require.False(t, ok)
}

func TestDecodeRuneRejectsTruncated(t *testing.T) {
	_, _, ok := DecodeRune([]byte{0xE4, 0xB8})
	require.False(t, ok)
}

func TestValid(t *testing.T) {
	require.True(t, Valid([]byte("Hello, 世界! straße")))
	require.False(t, Valid([]byte{0xFF, 0xFE}))
	require.False(t, Valid([]byte{0xE4, 0xB8})) // truncated trailing sequence
}
