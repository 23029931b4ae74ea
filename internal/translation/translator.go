package translation

import (
	"strings"

	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/wordbridge/internal/dictionary"
	"codeberg.org/snonux/wordbridge/internal/tokenizer"
)

// Translator translates words and sentences using a dictionary store.
type Translator struct {
	store *dictionary.Store
	log   logrus.FieldLogger
}

// NewTranslator creates a translator backed by store. A nil logger discards
// all log output.
func NewTranslator(store *dictionary.Store, log logrus.FieldLogger) *Translator {
	if log == nil {
		discard := logrus.New()
		discard.SetLevel(logrus.PanicLevel)
		log = discard
	}
	return &Translator{
		store: store,
		log:   log,
	}
}

// Store returns the dictionary the translator reads from.
func (t *Translator) Store() *dictionary.Store {
	return t.store
}

// TranslateWord translates a single word. Unknown words are returned
// unchanged; known words take the capitalization of the input.
func (t *Translator) TranslateWord(word string, dir Direction) string {
	translated, ok := t.lookup(word, dir)
	if !ok {
		t.log.WithFields(logrus.Fields{"word": word, "direction": dir.String()}).Debug("word not in dictionary")
		return word
	}
	return matchCasing(word, translated)
}

// TranslateSentence translates every word of text and keeps numbers,
// punctuation and whitespace exactly as they are.
func (t *Translator) TranslateSentence(text string, dir Direction) string {
	var b strings.Builder
	b.Grow(len(text))
	for span := range tokenizer.Tokens(text) {
		if span.Kind == tokenizer.Word {
			b.WriteString(t.TranslateWord(span.Text, dir))
			continue
		}
		b.WriteString(span.Text)
	}
	return b.String()
}

// AddEntry adds source with its translations to the dictionary. In the
// Forward direction source is an English word and targets are Spanish; in the
// Reverse direction source is Spanish and targets are English. Every word is
// trimmed; an empty word or an empty target list is rejected with an
// *InvalidInputError.
func (t *Translator) AddEntry(dir Direction, source string, targets []string) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return &InvalidInputError{Field: "source word", Value: source}
	}
	if len(targets) == 0 {
		return &InvalidInputError{Field: "translations", Value: ""}
	}

	cleaned := make([]string, 0, len(targets))
	for _, target := range targets {
		trimmed := strings.TrimSpace(target)
		if trimmed == "" {
			return &InvalidInputError{Field: "translation", Value: target}
		}
		cleaned = append(cleaned, trimmed)
	}

	if dir == Reverse {
		for _, english := range cleaned {
			t.store.AddReverse(source, english)
		}
	} else {
		t.store.AddForward(source, cleaned)
	}

	t.log.WithFields(logrus.Fields{
		"direction":    dir.String(),
		"source":       source,
		"translations": cleaned,
	}).Debug("dictionary entry added")
	return nil
}

// lookup finds the raw translation of word: exact match first, then the
// accent-insensitive index.
func (t *Translator) lookup(word string, dir Direction) (string, bool) {
	if dir == Reverse {
		if src, ok := t.store.LookupReverse(word); ok {
			return src, true
		}
		return t.store.LookupReverseNormalized(word)
	}

	if targets, ok := t.store.LookupForward(word); ok {
		return targets[0], true
	}
	if targets, ok := t.store.LookupForwardNormalized(word); ok {
		return targets[0], true
	}
	return "", false
}
