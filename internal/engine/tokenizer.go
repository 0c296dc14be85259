package engine

import (
	"strings"
	"unicode"
)

// isWordRune returns true for runes that belong inside a word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// tokenize splits text into lowercase word tokens. Runs of
// non-alphanumeric runes (whitespace, punctuation) act as separators,
// so punctuation attached to a word is stripped rather than kept.
// Token order follows appearance in the input.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
	return words
}

// normalizeWord applies the same normalization a fed token receives:
// lowercase plus stripping of non-alphanumeric boundary runes. Both
// entry points (Feed tokens and PrioritizeKeyword arguments) go through
// this rule so they can never disagree on key identity.
func normalizeWord(word string) string {
	return strings.TrimFunc(strings.ToLower(word), func(r rune) bool {
		return !isWordRune(r)
	})
}
