package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddForwardAndLookup(t *testing.T) {
	s := NewStore()
	s.AddForward("child", []string{"niño", "niña"})

	targets, ok := s.LookupForward("child")
	require.True(t, ok)
	assert.Equal(t, []string{"niño", "niña"}, targets)

	targets, ok = s.LookupForward("CHILD")
	require.True(t, ok, "forward lookup is case-insensitive")
	assert.Equal(t, "niño", targets[0])

	src, ok := s.LookupReverse("niña")
	require.True(t, ok)
	assert.Equal(t, "child", src)

	src, ok = s.LookupReverse("NIÑO")
	require.True(t, ok)
	assert.Equal(t, "child", src)
}

func TestStore_LookupMiss(t *testing.T) {
	s := NewStore()
	s.AddForward("time", []string{"tiempo"})

	_, ok := s.LookupForward("tiempo")
	assert.False(t, ok)
	_, ok = s.LookupReverse("time")
	assert.False(t, ok)
	_, ok = s.LookupForwardNormalized("tim")
	assert.False(t, ok)
	_, ok = s.LookupReverseNormalized("tiempos")
	assert.False(t, ok)
}

func TestStore_DuplicateTargetsSuppressed(t *testing.T) {
	s := NewStore()
	s.AddForward("point", []string{"punto", "tema"})
	s.AddForward("Point", []string{"PUNTO", "asunto", "tema"})

	targets, ok := s.LookupForward("point")
	require.True(t, ok)
	assert.Equal(t, []string{"punto", "tema", "asunto"}, targets)
	assert.Equal(t, 1, s.Len())

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "point", entries[0].Source, "first spelling of the key is kept")
}

func TestStore_ReverseFirstWriterWins(t *testing.T) {
	s := NewStore()
	s.AddForward("way", []string{"forma"})
	s.AddForward("form", []string{"forma"})

	src, ok := s.LookupReverse("forma")
	require.True(t, ok)
	assert.Equal(t, "way", src)

	src, ok = s.LookupReverseNormalized("FORMA")
	require.True(t, ok)
	assert.Equal(t, "way", src)

	// both entries still list the shared translation
	targets, _ := s.LookupForward("form")
	assert.Equal(t, []string{"forma"}, targets)
}

func TestStore_AddReverse(t *testing.T) {
	s := NewStore()
	s.AddReverse("niño", "boy")
	s.AddReverse("niño", "child")

	src, ok := s.LookupReverse("niño")
	require.True(t, ok)
	assert.Equal(t, "boy", src, "later reverse additions never overwrite")

	targets, ok := s.LookupForward("child")
	require.True(t, ok, "reverse additions are recorded in the forward mapping")
	assert.Equal(t, []string{"niño"}, targets)
}

func TestStore_NormalizedLookups(t *testing.T) {
	s := NewStore()
	s.AddForward("year", []string{"año"})
	s.AddForward("café", []string{"coffee shop"})

	src, ok := s.LookupReverseNormalized("ano")
	require.True(t, ok)
	assert.Equal(t, "year", src)

	src, ok = s.LookupReverseNormalized("AÑO")
	require.True(t, ok)
	assert.Equal(t, "year", src)

	targets, ok := s.LookupForwardNormalized("Cafe")
	require.True(t, ok)
	assert.Equal(t, []string{"coffee shop"}, targets)

	_, ok = s.LookupReverse("ano")
	assert.False(t, ok, "exact reverse lookup must not ignore accents")
}

func TestStore_NormalizedForwardMergesSpellings(t *testing.T) {
	s := NewStore()
	s.AddForward("resume", []string{"reanudar"})
	s.AddForward("résumé", []string{"currículum", "Reanudar"})

	targets, ok := s.LookupForwardNormalized("RESUME")
	require.True(t, ok)
	assert.Equal(t, []string{"reanudar", "currículum"}, targets)

	targets, ok = s.LookupForward("résumé")
	require.True(t, ok)
	assert.Equal(t, []string{"currículum", "Reanudar"}, targets)
}

func TestStore_LookupReturnsCopy(t *testing.T) {
	s := NewStore()
	s.AddForward("hand", []string{"mano"})

	targets, _ := s.LookupForward("hand")
	targets[0] = "changed"

	again, _ := s.LookupForward("hand")
	assert.Equal(t, "mano", again[0])
}

func TestStore_RebuildIndexesIdempotent(t *testing.T) {
	s := NewBaseStore()
	s.AddForward("boy", []string{"niño", "chico"})
	s.AddReverse("año", "age")

	s.RebuildIndexes()
	first := s.Snapshot()
	s.RebuildIndexes()
	second := s.Snapshot()

	assert.Equal(t, first, second)
}

func TestStore_RebuildReproducesIncrementalIndexes(t *testing.T) {
	s := NewStore()
	s.AddForward("a", []string{"p"})
	s.AddForward("b", []string{"x"})
	// "a" gains "x" after "b" introduced it; "b" must keep the reverse mapping
	s.AddForward("a", []string{"x"})
	s.AddReverse("ñu", "gnu")
	s.AddForward("Gnu", []string{"Ñu", "nu"})

	incremental := s.Snapshot()
	s.RebuildIndexes()
	rebuilt := s.Snapshot()

	assert.Equal(t, incremental, rebuilt)

	src, _ := s.LookupReverse("x")
	assert.Equal(t, "b", src)
}

func TestStore_Entries(t *testing.T) {
	s := NewStore()
	s.AddForward("time", []string{"tiempo"})
	s.AddForward("day", []string{"día"})
	s.AddForward("time", []string{"vez"})

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Source: "time", Targets: []string{"tiempo", "vez"}}, entries[0])
	assert.Equal(t, Entry{Source: "day", Targets: []string{"día"}}, entries[1])

	entries[0].Targets[0] = "changed"
	targets, _ := s.LookupForward("time")
	assert.Equal(t, "tiempo", targets[0])
}

func TestStore_AddedPairsAreFound(t *testing.T) {
	pairs := []struct {
		source string
		target string
	}{
		{"dog", "perro"},
		{"cat", "gato"},
		{"house", "casa"},
		{"tree", "árbol"},
	}

	s := NewBaseStore()
	for _, p := range pairs {
		s.AddForward(p.source, []string{p.target})
	}

	for _, p := range pairs {
		targets, ok := s.LookupForward(p.source)
		require.True(t, ok, p.source)
		assert.Contains(t, targets, p.target)

		src, ok := s.LookupReverse(p.target)
		require.True(t, ok, p.target)
		assert.Equal(t, p.source, src)
	}
}
