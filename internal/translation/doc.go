// Package translation provides word-by-word translation of sentences between
// English and Spanish using the in-memory dictionary. Words are looked up
// exactly first and then without accents; unknown words pass through
// unchanged. The capitalization of every source word is carried over to its
// translation, while numbers, punctuation and spacing are kept byte for byte.
package translation
