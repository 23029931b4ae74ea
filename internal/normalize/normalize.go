package normalize

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize strips diacritics from s: it decomposes every character (NFD),
// drops non-spacing marks and recomposes the rest (NFC). Case is kept.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	// transformers carry state, so a fresh chain is built for every call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// Fold returns the case-folded form of s used as a case-insensitive map key.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Key returns the accent- and case-insensitive key of s.
func Key(s string) string {
	return Fold(Normalize(s))
}
