package domain

import "strings"

// NormalizeText prepares a gloss for case-insensitive comparison:
// trims surrounding whitespace, lowercases, and collapses internal
// whitespace runs into a single space. Diacritics, hyphens, and
// apostrophes are preserved.
func NormalizeText(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}
