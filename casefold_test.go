package strcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaseFoldLigatures(t *testing.T) {
	require.Equal(t, "ff", string(CaseFold([]byte("ﬀ"))))
	require.Equal(t, "ffi", string(CaseFold([]byte("ﬃ"))))
}

func TestCaseFoldSharpS(t *testing.T) {
	require.Equal(t, "ss", string(CaseFold([]byte("ß"))))
}

func TestCaseFoldASCII(t *testing.T) {
	require.Equal(t, "hello world", string(CaseFold([]byte("HELLO WORLD"))))
}

func TestCaseFoldMicroSign(t *testing.T) {
	require.Equal(t, "μ", string(CaseFold([]byte("µ"))))
}

func TestCaseFoldGreekFinalSigma(t *testing.T) {
	// Medial and final sigma both fold to the same codepoint.
	require.Equal(t, string(CaseFold([]byte("σ"))), string(CaseFold([]byte("ς"))))
}

func TestCaseFoldIdempotent(t *testing.T) {
	inputs := []string{"HELLO", "straße", "ﬃ", "Οδυσσευς", "İstanbul", "MASSE", "Maße"}
	for _, in := range inputs {
		once := CaseFold([]byte(in))
		twice := CaseFold(once)
		require.Equal(t, once, twice, "not idempotent for %q", in)
	}
}

func TestFoldDefaultIdentity(t *testing.T) {
	var out [3]rune
	n := Fold('中', &out)
	require.Equal(t, 1, n)
	require.Equal(t, '中', out[0])
}

func TestOrderCaseInsensitiveEqual(t *testing.T) {
	require.Equal(t, 0, OrderCaseInsensitive([]byte("MASSE"), []byte("Maße")))
}

func TestOrderCaseInsensitiveTotality(t *testing.T) {
	cases := [][2]string{
		{"apple", "Banana"},
		{"Banana", "apple"},
		{"same", "SAME"},
		{"", "x"},
		{"x", ""},
	}
	for _, c := range cases {
		res := OrderCaseInsensitive([]byte(c[0]), []byte(c[1]))
		inv := OrderCaseInsensitive([]byte(c[1]), []byte(c[0]))
		if res == 0 {
			require.Zero(t, inv)
		} else if res < 0 {
			require.Positive(t, inv)
		} else {
			require.Negative(t, inv)
		}
	}
}

func TestUnpackRunes(t *testing.T) {
	text := []byte("abΟδ")
	out := make([]rune, 2)
	advanced, n := UnpackRunes(text, out)
	require.Equal(t, 2, n)
	require.Equal(t, []rune{'a', 'b'}, out)
	require.Equal(t, 2, advanced)

	advanced2, n2 := UnpackRunes(text[advanced:], out)
	require.Equal(t, 2, n2)
	require.Equal(t, []rune{'Ο', 'δ'}, out)
	require.Equal(t, len(text)-advanced, advanced2)
}
