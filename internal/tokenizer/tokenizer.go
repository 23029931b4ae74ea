// Package tokenizer splits text into classified spans: words, numbers,
// whitespace and runs of other symbols. The spans cover the input exactly,
// so joining their text gives back the original string byte for byte.
package tokenizer

import (
	"iter"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a span.
type Kind int

const (
	Word Kind = iota
	Number
	Symbol
	Whitespace
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Number:
		return "number"
	case Symbol:
		return "symbol"
	case Whitespace:
		return "whitespace"
	default:
		return "unknown"
	}
}

// Span is a maximal run of characters of one Kind.
type Span struct {
	Kind Kind
	Text string
}

// Tokens yields the spans of text in order. The sequence is lazy and can be
// ranged over more than once.
func Tokens(text string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		start := 0
		for start < len(text) {
			kind := classifyAt(text, start)
			end := start
			for end < len(text) {
				if classifyAt(text, end) != kind {
					break
				}
				_, size := utf8.DecodeRuneInString(text[end:])
				end += size
			}
			if !yield(Span{Kind: kind, Text: text[start:end]}) {
				return
			}
			start = end
		}
	}
}

// Tokenize returns all spans of text.
func Tokenize(text string) []Span {
	return slices.Collect(Tokens(text))
}

// Join concatenates the text of spans.
func Join(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// classifyAt returns the Kind of the rune starting at byte offset i.
// Invalid UTF-8 bytes decode to utf8.RuneError and count as symbols.
func classifyAt(text string, i int) Kind {
	r, _ := utf8.DecodeRuneInString(text[i:])
	return classify(r)
}

func classify(r rune) Kind {
	switch {
	case unicode.IsLetter(r):
		return Word
	case unicode.IsNumber(r):
		return Number
	case unicode.IsSpace(r):
		return Whitespace
	default:
		return Symbol
	}
}
