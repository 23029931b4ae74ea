package translation

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casing is the capitalization pattern of a word.
type Casing int

const (
	// AllCaps: every letter is uppercase, e.g. "TIME".
	AllCaps Casing = iota
	// InitialCap: an uppercase first letter followed only by lowercase
	// letters, e.g. "Time".
	InitialCap
	// Other covers lowercase and irregular words such as "time" or "McDonald".
	Other
)

func (c Casing) String() string {
	switch c {
	case AllCaps:
		return "all-caps"
	case InitialCap:
		return "initial-cap"
	default:
		return "other"
	}
}

// Classify returns the capitalization pattern of word. Non-letters are
// ignored; a word without letters is Other.
func Classify(word string) Casing {
	hasLetter := false
	allUpper := true
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if unicode.ToUpper(r) != r {
			allUpper = false
			break
		}
	}
	if hasLetter && allUpper {
		return AllCaps
	}

	first, size := utf8.DecodeRuneInString(word)
	if !unicode.IsLetter(first) || !unicode.IsUpper(first) {
		return Other
	}
	for _, r := range word[size:] {
		if unicode.IsLetter(r) && !unicode.IsLower(r) {
			return Other
		}
	}
	return InitialCap
}

// ApplyCasing rewrites word to follow the pattern c.
func ApplyCasing(c Casing, word string) string {
	switch c {
	case AllCaps:
		return cases.Upper(language.Und).String(word)
	case InitialCap:
		if word == "" {
			return word
		}
		_, size := utf8.DecodeRuneInString(word)
		return cases.Upper(language.Und).String(word[:size]) +
			cases.Lower(language.Und).String(word[size:])
	default:
		return cases.Lower(language.Und).String(word)
	}
}

// matchCasing returns translated with the capitalization of original.
func matchCasing(original, translated string) string {
	return ApplyCasing(Classify(original), translated)
}
