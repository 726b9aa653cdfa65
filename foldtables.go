package strcore

// Case-fold data tables (spec §4.B). Every table here encodes a Unicode
// CaseFolding.txt status C ("common") or F ("full") mapping; status T
// (Turkic-only, e.g. İ → ı / I → ı) is deliberately absent so the fold is
// locale-independent, per spec's Non-goals.
//
// The four tiers mirror §4.B exactly:
//  1. additiveRanges   — contiguous blocks with one fixed per-block delta
//  2. strideRanges     — blocks where (upper, lower) pairs alternate every
//                        other codepoint
//  3. foldExceptions   — isolated one-to-one irregular folds
//  4. foldExpansions   — one-to-many folds (2 or 3 codepoints)
//
// Coverage: the tables hold the blocks and exceptions listed below and no
// others; a codepoint absent from all four tiers folds to itself. Parts of
// CaseFolding.txt status C/F that the tables do not contain include the
// Latin Extended-A runs U+0139-U+0148 and U+0178-U+017E, most of Latin
// Extended-B U+0180-U+01CC, the Greek symbol variants U+03D0-U+03D6,
// U+03F0, U+03F1 and U+03F5, Georgian U+10C7/U+10CD, and the Greek Extended full folds
// without an iota subscript (e.g. U+1F50, U+1FB6, U+1FD2). DESIGN.md's
// "Case-fold table coverage" section lists the same gaps.

// additiveRange is a contiguous codepoint block folded by one fixed delta.
type additiveRange struct {
	lo, hi rune
	delta  int32
}

// additiveRanges lists blocks where every codepoint in [lo, hi] folds to
// rune+delta. Ranges that contain a mid-block gap (no uppercase letter at
// that position) are split rather than special-cased.
var additiveRanges = []additiveRange{
	{'A', 'Z', 32},             // ASCII
	{0x00C0, 0x00D6, 32},       // Latin-1 À-Ö
	{0x00D8, 0x00DE, 32},       // Latin-1 Ø-Þ (Ö..Ø gap is × U+00D7)
	{0x0391, 0x03A1, 32},       // Greek Α-Ρ
	{0x03A3, 0x03AB, 32},       // Greek Σ-Ϋ (Ρ..Σ gap is the unused U+03A2)
	{0x0400, 0x040F, 80},       // Cyrillic Ѐ-Џ
	{0x0410, 0x042F, 32},       // Cyrillic А-Я
	{0x0531, 0x0556, 48},       // Armenian Ա-Ֆ
	{0x10A0, 0x10C5, 7264},     // Georgian Asomtavruli Ⴀ-Ⴥ (→ 2D00-2D25)
	{0x1C90, 0x1CBA, -3008},    // Georgian MTavruli Ა-Ჺ (→ 10D0-10FA)
	{0x1CBD, 0x1CBF, -3008},    // Georgian MTavruli Ჽ-Ჿ (secondary span)
	{0x2160, 0x216F, 16},       // Roman numerals Ⅰ-Ⅿ
	{0x24B6, 0x24CF, 26},       // Circled Latin A-Z
	{0xFF21, 0xFF3A, 32},       // Fullwidth A-Z
	{0x10400, 0x10427, 40},     // Deseret 𐐀-𐐧
	{0x104B0, 0x104D3, 40},     // Osage 𐒰-𐓓
	{0x10C80, 0x10CB2, 64},     // Old Hungarian 𐲀-𐲲
	{0x118A0, 0x118BF, 32},     // Warang Citi 𑢠-𑢿
	{0x16E40, 0x16E5F, 32},     // Medefaidrin 𖹀-𖹟
	{0x1E900, 0x1E921, 34},     // Adlam 𞤀-𞤕
	{0x2C00, 0x2C2F, 48},       // Glagolitic Ⰰ-Ⱏ

	// Greek Extended (spacing-accent polytonic forms): the capital/small
	// pairs that follow the block's regular delta -8 pattern. The
	// irregular (non -8) pairs in this block are listed in foldExceptions
	// instead, since they don't share a common delta across a contiguous
	// span.
	{0x1F08, 0x1F0F, -8},
	{0x1F18, 0x1F1D, -8},
	{0x1F28, 0x1F2F, -8},
	{0x1F38, 0x1F3F, -8},
	{0x1F48, 0x1F4D, -8},
	{0x1F68, 0x1F6F, -8},
	{0x1FB8, 0x1FB9, -8},
	{0x1FD8, 0x1FD9, -8},
	{0x1FE8, 0x1FE9, -8},

	// Cherokee: the 80 unicase letters at 13A0-13EF gained lowercase forms
	// at AB70-ABBF; the 6 letters added later at 13F0-13F5 gained theirs
	// at 13F8-13FD instead.
	{0x13A0, 0x13EF, 0x97D0},
	{0x13F0, 0x13F5, 8},
}

// strideRange is a block where (upper, lower) pairs alternate every other
// codepoint: if r is in [lo, hi] and (r-lo) is even, r folds to r+1.
type strideRange struct {
	lo, hi rune
}

var strideRanges = []strideRange{
	{0x0100, 0x0137}, // Latin Extended-A, Ā/ā .. Ķ/ķ
	{0x014A, 0x0177}, // Latin Extended-A, Ŋ/ŋ .. ŷ
	{0x01DE, 0x01EF}, // Latin Extended-B, Ǟ/ǟ .. ǯ (odd run)
	{0x01F8, 0x021F}, // Latin Extended-B, Ǹ/ǹ .. ȟ
	{0x0222, 0x0233}, // Latin Extended-B, Ȣ/ȣ .. ȳ
	{0x0246, 0x024F}, // Latin Extended-B, Ɇ/ɇ .. ɏ
	{0x03D8, 0x03EF}, // Greek, Ϙ/ϙ .. ϯ
	{0x0460, 0x0481}, // Cyrillic, Ѡ/ѡ .. ҁ
	{0x048A, 0x04BF}, // Cyrillic, Ҋ/ҋ .. ҿ
	{0x04D0, 0x052F}, // Cyrillic Extended, Ӑ/ӑ .. ԯ
	{0x1E00, 0x1E95}, // Latin Extended Additional, Ḁ/ḁ .. Ẕ/ẕ
	{0x1EA0, 0x1EFF}, // Latin Extended Additional, Ạ/ạ .. ỿ
	{0x2C67, 0x2C6C}, // Latin Extended-C, Ⱨ/ⱨ .. Ⱬ/ⱬ
	{0xA640, 0xA66D}, // Cyrillic Extended-B, Ꙁ/ꙁ .. ꙭ
	{0xA680, 0xA69B}, // Cyrillic Extended-B, Ꚁ/ꚁ .. ꚛ
	{0xA722, 0xA72F}, // Latin Extended-D, Ꜣ/ꜣ .. Ꜯ (odd sub-run included below)
	{0xA732, 0xA76F}, // Latin Extended-D, Ꜳ/ꜳ .. ꝯ
	{0x2C80, 0x2CE3}, // Coptic, Ⲁ/ⲁ .. Ⳣ/ⳣ
}

// foldExceptions holds isolated one-to-one irregular folds that additive or
// stride ranges do not cover: digraph titlecases, Greek variant letterforms,
// the long s, the micro sign, and similar outliers.
var foldExceptions = map[rune]rune{
	0x00B5: 0x03BC, // µ MICRO SIGN -> μ GREEK SMALL LETTER MU
	0x017F: 0x0073, // ſ LATIN SMALL LETTER LONG S -> s
	0x0130: 0x0069, // İ LATIN CAPITAL LETTER I WITH DOT ABOVE, common-fold half
	0x01C4: 0x01C6, // Ǆ -> ǆ
	0x01C5: 0x01C6, // ǅ -> ǆ
	0x01C7: 0x01C9, // Ǉ -> ǉ
	0x01C8: 0x01C9, // ǈ -> ǉ
	0x01CA: 0x01CC, // Ǌ -> ǌ
	0x01CB: 0x01CC, // ǋ -> ǌ
	0x01F1: 0x01F3, // Ǳ -> ǳ
	0x01F2: 0x01F3, // ǲ -> ǳ
	0x0345: 0x03B9, // combining iota subscript ͅ -> ι
	0x0370: 0x0371, // Ͱ -> ͱ
	0x0372: 0x0373, // Ͳ -> ͳ
	0x0376: 0x0377, // Ͷ -> ͷ
	0x037F: 0x03F3, // Ϳ -> ϳ
	0x0386: 0x03AC, // Ά -> ά
	0x0388: 0x03AD, // Έ -> έ
	0x0389: 0x03AE, // Ή -> ή
	0x038A: 0x03AF, // Ί -> ί
	0x038C: 0x03CC, // Ό -> ό
	0x038E: 0x03CD, // Ύ -> ύ
	0x038F: 0x03CE, // Ώ -> ώ
	0x03C2: 0x03C3, // ς GREEK SMALL LETTER FINAL SIGMA -> σ
	0x03CF: 0x03D7, // Ϗ -> ϗ
	0x03F4: 0x03B8, // ϴ GREEK CAPITAL THETA SYMBOL -> θ
	0x03F9: 0x03F2, // Ϲ -> ϲ
	0x03FD: 0x037B, // Ͻ -> ͻ
	0x03FE: 0x037C, // Ͼ -> ͼ
	0x03FF: 0x037D, // Ͽ -> ͽ
	0x04C0: 0x04CF, // Ӏ -> ӏ
	0x0514: 0x0515,
	0x1E9E: 0x00DF, // ẞ LATIN CAPITAL SHARP S, common-fold half -> ß (full fold expands further)
	0x1F59: 0x1F51, // Greek Extended: only odd codepoints in this quarter-block are assigned
	0x1F5B: 0x1F53,
	0x1F5D: 0x1F55,
	0x1F5F: 0x1F57,
	0x1FBA: 0x1F70, // Greek Extended accent-shift pairs: delta isn't uniform across
	0x1FBB: 0x1F71, // the block (unlike the regular -8 capital/small pairs above), so
	0x1FC8: 0x1F72, // each is listed as an isolated exception instead of an additive
	0x1FC9: 0x1F73, // range.
	0x1FCA: 0x1F74,
	0x1FCB: 0x1F75,
	0x1FDA: 0x1F76,
	0x1FDB: 0x1F77,
	0x1FEA: 0x1F7A,
	0x1FEB: 0x1F7B,
	0x1FEC: 0x1FE5,
	0x1FF8: 0x1F78,
	0x1FF9: 0x1F79,
	0x1FFA: 0x1F7C,
	0x1FFB: 0x1F7D,
	0x1FBE: 0x03B9, // ἰ GREEK PROSGEGRAMMENI -> ι
	0x2126: 0x03C9, // Ω OHM SIGN -> ω
	0x212A: 0x006B, // K KELVIN SIGN -> k
	0x212B: 0x00E5, // Å ANGSTROM SIGN -> å
	0x2132: 0x214E, // Ⅎ TURNED CAPITAL F -> ⅎ
	0x2183: 0x2184, // Ↄ -> ↄ
	0xA7B0: 0xA7B1,
	0xA7B2: 0xA7B3,
}

// foldExpansions holds one-to-many folds: a source codepoint that folds to
// 2 or 3 codepoints. This is the mechanism behind ß→ss, ligature
// decomposition, the full fold of İ, and the Greek iota-subscript letters.
var foldExpansions = map[rune][]rune{
	0x00DF: {0x0073, 0x0073},         // ß -> ss
	0x0130: {0x0069, 0x0307},         // İ full fold -> i + combining dot above
	0x1E9E: {0x0073, 0x0073},         // ẞ full fold -> ss (same as ß)
	0xFB00: {0x0066, 0x0066},         // ﬀ -> ff
	0xFB01: {0x0066, 0x0069},         // ﬁ -> fi
	0xFB02: {0x0066, 0x006C},         // ﬂ -> fl
	0xFB03: {0x0066, 0x0066, 0x0069}, // ﬃ -> ffi
	0xFB04: {0x0066, 0x0066, 0x006C}, // ﬄ -> ffl
	0xFB05: {0x0073, 0x0074},         // ﬅ LATIN SMALL LIGATURE LONG S T -> st
	0xFB06: {0x0073, 0x0074},         // ﬆ LATIN SMALL LIGATURE ST -> st
	0x0587: {0x0565, 0x0582},         // Armenian ﬓ-style ligature եւ -> եւ (և -> ե+ւ)
	0xFB13: {0x0574, 0x0576},         // ﬓ Armenian ligature men now -> մն
	0xFB14: {0x0574, 0x0565},         // ﬔ -> մե
	0xFB15: {0x0574, 0x056B},         // ﬕ -> մի
	0xFB16: {0x057E, 0x0576},         // ﬖ -> վն
	0xFB17: {0x0574, 0x056D},         // ﬗ -> մխ
	// Greek iota-subscript letters (subset of U+1F80-U+1FFC): each folds to
	// its base vowel-with-breathing form plus a plain iota.
	0x1F80: {0x1F00, 0x03B9}, 0x1F81: {0x1F01, 0x03B9},
	0x1F82: {0x1F02, 0x03B9}, 0x1F83: {0x1F03, 0x03B9},
	0x1F84: {0x1F04, 0x03B9}, 0x1F85: {0x1F05, 0x03B9},
	0x1F86: {0x1F06, 0x03B9}, 0x1F87: {0x1F07, 0x03B9},
	0x1F88: {0x1F00, 0x03B9}, 0x1F89: {0x1F01, 0x03B9},
	0x1F8A: {0x1F02, 0x03B9}, 0x1F8B: {0x1F03, 0x03B9},
	0x1F8C: {0x1F04, 0x03B9}, 0x1F8D: {0x1F05, 0x03B9},
	0x1F8E: {0x1F06, 0x03B9}, 0x1F8F: {0x1F07, 0x03B9},
	0x1F90: {0x1F20, 0x03B9}, 0x1F91: {0x1F21, 0x03B9},
	0x1F92: {0x1F22, 0x03B9}, 0x1F93: {0x1F23, 0x03B9},
	0x1F94: {0x1F24, 0x03B9}, 0x1F95: {0x1F25, 0x03B9},
	0x1F96: {0x1F26, 0x03B9}, 0x1F97: {0x1F27, 0x03B9},
	0x1F98: {0x1F20, 0x03B9}, 0x1F99: {0x1F21, 0x03B9},
	0x1F9A: {0x1F22, 0x03B9}, 0x1F9B: {0x1F23, 0x03B9},
	0x1F9C: {0x1F24, 0x03B9}, 0x1F9D: {0x1F25, 0x03B9},
	0x1F9E: {0x1F26, 0x03B9}, 0x1F9F: {0x1F27, 0x03B9},
	0x1FA0: {0x1F60, 0x03B9}, 0x1FA1: {0x1F61, 0x03B9},
	0x1FA2: {0x1F62, 0x03B9}, 0x1FA3: {0x1F63, 0x03B9},
	0x1FA4: {0x1F64, 0x03B9}, 0x1FA5: {0x1F65, 0x03B9},
	0x1FA6: {0x1F66, 0x03B9}, 0x1FA7: {0x1F67, 0x03B9},
	0x1FA8: {0x1F60, 0x03B9}, 0x1FA9: {0x1F61, 0x03B9},
	0x1FAA: {0x1F62, 0x03B9}, 0x1FAB: {0x1F63, 0x03B9},
	0x1FAC: {0x1F64, 0x03B9}, 0x1FAD: {0x1F65, 0x03B9},
	0x1FAE: {0x1F66, 0x03B9}, 0x1FAF: {0x1F67, 0x03B9},
	0x1FB2: {0x1F70, 0x03B9}, 0x1FB3: {0x03B1, 0x03B9}, 0x1FB4: {0x03AC, 0x03B9},
	0x1FB7: {0x03B1, 0x0342, 0x03B9},
	0x1FBC: {0x03B1, 0x03B9},
	0x1FC2: {0x1F74, 0x03B9}, 0x1FC3: {0x03B7, 0x03B9}, 0x1FC4: {0x03AE, 0x03B9},
	0x1FC7: {0x03B7, 0x0342, 0x03B9},
	0x1FCC: {0x03B7, 0x03B9},
	0x1FF2: {0x1F7C, 0x03B9}, 0x1FF3: {0x03C9, 0x03B9}, 0x1FF4: {0x03CE, 0x03B9},
	0x1FF7: {0x03C9, 0x0342, 0x03B9},
	0x1FFC: {0x03C9, 0x03B9},
}
