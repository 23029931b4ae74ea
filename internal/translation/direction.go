package translation

import (
	"fmt"
	"strings"
)

// Direction selects which side of the dictionary is used as input.
type Direction int

const (
	// Forward translates from the dictionary's key language (English) into
	// its value language (Spanish).
	Forward Direction = iota
	// Reverse translates from Spanish back into English.
	Reverse
)

// Language codes of both sides of the dictionary.
const (
	SourceLanguage = "en"
	TargetLanguage = "es"
)

func (d Direction) String() string {
	if d == Reverse {
		return TargetLanguage + "-" + SourceLanguage
	}
	return SourceLanguage + "-" + TargetLanguage
}

// Label returns a human readable name such as "English → Spanish".
func (d Direction) Label() string {
	if d == Reverse {
		return "Spanish → English"
	}
	return "English → Spanish"
}

// ParseDirection accepts "en-es", "es-en", "forward" and "reverse"
// (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en-es", "en2es", "forward":
		return Forward, nil
	case "es-en", "es2en", "reverse":
		return Reverse, nil
	default:
		return Forward, fmt.Errorf("unknown direction %q (use en-es or es-en)", s)
	}
}
