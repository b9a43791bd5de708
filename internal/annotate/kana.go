package annotate

import "strings"

// isKanji reports whether r falls in the CJK unified ideograph block.
func isKanji(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// containsKanji reports whether s holds at least one ideograph.
func containsKanji(s string) bool {
	for _, r := range s {
		if isKanji(r) {
			return true
		}
	}
	return false
}

// katakanaToHiragana converts katakana runes to their hiragana
// counterparts, leaving everything else (including the long vowel mark)
// untouched.
func katakanaToHiragana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x30A1 && r <= 0x30F6 {
			r -= 0x60
		}
		b.WriteRune(r)
	}
	return b.String()
}
