package dictionary

// baseVocabulary is the English → Spanish word list every session starts
// with. Order matters: it decides which source owns a shared translation.
var baseVocabulary = []Entry{
	{Source: "time", Targets: []string{"tiempo"}},
	{Source: "person", Targets: []string{"persona"}},
	{Source: "year", Targets: []string{"año"}},
	{Source: "way", Targets: []string{"camino", "forma"}},
	{Source: "day", Targets: []string{"día"}},
	{Source: "thing", Targets: []string{"cosa"}},
	{Source: "man", Targets: []string{"hombre"}},
	{Source: "world", Targets: []string{"mundo"}},
	{Source: "life", Targets: []string{"vida"}},
	{Source: "hand", Targets: []string{"mano"}},
	{Source: "part", Targets: []string{"parte"}},
	{Source: "child", Targets: []string{"niño", "niña", "niño/a"}},
	{Source: "eye", Targets: []string{"ojo"}},
	{Source: "woman", Targets: []string{"mujer"}},
	{Source: "place", Targets: []string{"lugar"}},
	{Source: "work", Targets: []string{"trabajo"}},
	{Source: "week", Targets: []string{"semana"}},
	{Source: "case", Targets: []string{"caso"}},
	{Source: "point", Targets: []string{"punto", "tema"}},
	{Source: "government", Targets: []string{"gobierno"}},
	{Source: "company", Targets: []string{"empresa", "compañía"}},
}

// SeedBase loads the base vocabulary into s and rebuilds the indexes.
func SeedBase(s *Store) {
	for _, e := range baseVocabulary {
		s.AddForward(e.Source, e.Targets)
	}
	s.RebuildIndexes()
}

// NewBaseStore returns a store seeded with the base vocabulary.
func NewBaseStore() *Store {
	s := NewStore()
	SeedBase(s)
	return s
}
