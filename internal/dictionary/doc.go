// Package dictionary holds the in-memory bilingual vocabulary.
//
// A Store keeps the forward mapping (source word to an ordered list of
// translations) together with three derived indexes: the exact reverse
// mapping and the accent-insensitive forward and reverse mappings. All keys
// are case-insensitive. The derived indexes are updated on every mutation and
// can be rebuilt from the forward mapping at any time with identical results.
//
// A reverse mapping, once set, is never overwritten: the first source word
// that introduced a translation keeps owning it.
//
// The store is append-only and not safe for concurrent use.
package dictionary
