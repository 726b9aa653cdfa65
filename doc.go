// Package strcore provides the core algorithmic engines for processing
// collections of variable-length byte strings: set intersection, collection
// sort, and UTF-8 case-insensitive search.
//
// # Overview
//
// The package operates on an abstract Collection (random-access indexed
// view over N byte strings) and exposes three operators:
//
//   - Intersect pairs matching strings across two deduplicated collections
//     using an open-addressed hash table with linear probing.
//   - Sort orders an arbitrary string collection lexicographically using a
//     word-at-a-time 3-way quicksort with iterative prefix refinement, and
//     an insertion-sort base case for small inputs.
//   - FindCaseInsensitive locates a needle inside a haystack under full
//     Unicode case folding (including one-to-many expansions such as
//     ß → ss), using a rolling hash over folded runes.
//
// A Tape type implements the Collection contract as dense Arrow-style
// storage (offsets + buffer), and a rune codec (DecodeRune/EncodeRune)
// together with a case-fold table (Fold) underpin the search path.
//
// # What this package does not do
//
// No Unicode normalisation (NFC/NFKC), no locale-sensitive folding (e.g.
// Turkish dotless-I — status T entries of CaseFolding.txt are excluded),
// no stability guarantee from Sort, no duplicate detection in Intersect,
// and no UTF-8 validation inside the fold path (use Valid first if that
// matters to the caller).
//
// # Basic usage
//
//	tape := &strcore.Tape{}
//	tape.Assign([][]byte{[]byte("banana"), []byte("apple"), []byte("cherry")})
//
//	order := make([]int, tape.Len())
//	_ = strcore.Sort(tape, strcore.DefaultAllocator, order)
//
//	start, n, ok := strcore.FindCaseInsensitive([]byte("straße"), []byte("STRASSE"))
//	_ = start; _ = n; _ = ok
//
// # Performance characteristics
//
// Sort: expected O(L·log N) byte comparisons, L the average string length.
// Intersect: expected O(|A|+|B|) with a hash probe per string; auxiliary
// memory proportional to the smaller collection. Find: O(H_runes) with
// O(1) auxiliary state beyond the folded-rune iterators' pending buffers.
package strcore
