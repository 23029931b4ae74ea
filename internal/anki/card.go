package anki

import (
	"strings"

	"codeberg.org/snonux/wordbridge/internal/dictionary"
	"codeberg.org/snonux/wordbridge/internal/normalize"
	"codeberg.org/snonux/wordbridge/internal/translation"
)

// Card represents a single Anki flashcard
type Card struct {
	Front string   // word asked for
	Back  string   // its translation(s)
	Tags  []string // Anki tags, without spaces
}

// CardsFromStore turns the entries of store into cards for direction dir.
//
// Forward cards ask for the English word and show every Spanish translation.
// Reverse cards ask for each Spanish word once and show the English word the
// reverse index maps it to, so a card always agrees with the translator.
func CardsFromStore(store *dictionary.Store, dir translation.Direction) []Card {
	tags := []string{"wordbridge", dir.String()}
	entries := store.Entries()

	if dir == translation.Forward {
		cards := make([]Card, 0, len(entries))
		for _, e := range entries {
			if len(e.Targets) == 0 {
				continue
			}
			cards = append(cards, Card{
				Front: e.Source,
				Back:  strings.Join(e.Targets, ", "),
				Tags:  tags,
			})
		}
		return cards
	}

	var cards []Card
	seen := make(map[string]bool)
	for _, e := range entries {
		for _, target := range e.Targets {
			key := normalize.Fold(target)
			if seen[key] {
				continue
			}
			seen[key] = true

			source, ok := store.LookupReverse(target)
			if !ok {
				source = e.Source
			}
			cards = append(cards, Card{Front: target, Back: source, Tags: tags})
		}
	}
	return cards
}
