package dictionary

import (
	"maps"
	"slices"

	"codeberg.org/snonux/wordbridge/internal/normalize"
)

// Entry is a source word with its translations. The first target is the
// preferred translation.
type Entry struct {
	Source  string
	Targets []string
}

// Indexes is a copy of the derived lookup tables of a Store.
type Indexes struct {
	Reverse           map[string]string
	ForwardNormalized map[string][]string
	ReverseNormalized map[string]string
}

// pair is one (source, target) association in the order it was first added.
type pair struct {
	source string
	target string
}

// Store is the bilingual dictionary with its derived indexes.
type Store struct {
	// entries lists forward entries in insertion order.
	entries []*Entry
	// forward maps Fold(source) → entry.
	forward map[string]*Entry
	// pairs records every new (source, target) association in order.
	pairs []pair

	// reverse maps Fold(target) → source.
	reverse map[string]string
	// forwardNorm maps Key(source) → raw targets.
	forwardNorm map[string][]string
	// reverseNorm maps Key(target) → raw source.
	reverseNorm map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		forward:     make(map[string]*Entry),
		reverse:     make(map[string]string),
		forwardNorm: make(map[string][]string),
		reverseNorm: make(map[string]string),
	}
}

// AddForward appends every target not yet listed (case-insensitively) under
// source and propagates the new pairs into the derived indexes. Callers must
// pass non-empty, trimmed words.
func (s *Store) AddForward(source string, targets []string) {
	e := s.entryFor(source)
	for _, t := range targets {
		if containsFold(e.Targets, t) {
			continue
		}
		e.Targets = append(e.Targets, t)
		p := pair{source: e.Source, target: t}
		s.pairs = append(s.pairs, p)
		s.index(p)
	}
}

// AddReverse records that target translates back to source. The pair is
// stored through the forward mapping, so source gains target as a translation
// and the first-write-wins rule applies to both reverse indexes.
func (s *Store) AddReverse(target, source string) {
	s.AddForward(source, []string{target})
}

// LookupForward returns the translations of word, matched case-insensitively.
func (s *Store) LookupForward(word string) ([]string, bool) {
	e, ok := s.forward[normalize.Fold(word)]
	if !ok || len(e.Targets) == 0 {
		return nil, false
	}
	return slices.Clone(e.Targets), true
}

// LookupReverse returns the source word that first introduced word as a
// translation.
func (s *Store) LookupReverse(word string) (string, bool) {
	src, ok := s.reverse[normalize.Fold(word)]
	return src, ok
}

// LookupForwardNormalized is LookupForward ignoring diacritics.
func (s *Store) LookupForwardNormalized(word string) ([]string, bool) {
	targets, ok := s.forwardNorm[normalize.Key(word)]
	if !ok || len(targets) == 0 {
		return nil, false
	}
	return slices.Clone(targets), true
}

// LookupReverseNormalized is LookupReverse ignoring diacritics.
func (s *Store) LookupReverseNormalized(word string) (string, bool) {
	src, ok := s.reverseNorm[normalize.Key(word)]
	return src, ok
}

// RebuildIndexes clears the derived indexes and derives them again from the
// forward mapping, replaying pairs in the order they were first added.
func (s *Store) RebuildIndexes() {
	clear(s.reverse)
	clear(s.forwardNorm)
	clear(s.reverseNorm)
	for _, p := range s.pairs {
		s.index(p)
	}
}

// Len returns the number of forward entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns a copy of all forward entries in insertion order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, Entry{Source: e.Source, Targets: slices.Clone(e.Targets)})
	}
	return out
}

// Snapshot returns a deep copy of the derived indexes.
func (s *Store) Snapshot() Indexes {
	fn := make(map[string][]string, len(s.forwardNorm))
	for k, v := range s.forwardNorm {
		fn[k] = slices.Clone(v)
	}
	return Indexes{
		Reverse:           maps.Clone(s.reverse),
		ForwardNormalized: fn,
		ReverseNormalized: maps.Clone(s.reverseNorm),
	}
}

// entryFor returns the entry keyed by source, creating it when missing. The
// spelling used on creation is kept for the entry's lifetime.
func (s *Store) entryFor(source string) *Entry {
	key := normalize.Fold(source)
	if e, ok := s.forward[key]; ok {
		return e
	}
	e := &Entry{Source: source}
	s.forward[key] = e
	s.entries = append(s.entries, e)
	return e
}

// index propagates one pair into the derived indexes. Existing reverse
// mappings are left alone.
func (s *Store) index(p pair) {
	rk := normalize.Fold(p.target)
	if _, ok := s.reverse[rk]; !ok {
		s.reverse[rk] = p.source
	}

	fk := normalize.Key(p.source)
	if !containsFold(s.forwardNorm[fk], p.target) {
		s.forwardNorm[fk] = append(s.forwardNorm[fk], p.target)
	}

	nk := normalize.Key(p.target)
	if _, ok := s.reverseNorm[nk]; !ok {
		s.reverseNorm[nk] = p.source
	}
}

func containsFold(list []string, word string) bool {
	key := normalize.Fold(word)
	return slices.ContainsFunc(list, func(w string) bool {
		return normalize.Fold(w) == key
	})
}
