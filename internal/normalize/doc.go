// Package normalize produces the comparison forms used by the dictionary:
// an accent-stripped form for the lenient lookup fallback and a case-folded
// form for case-insensitive keys. Normalized forms are only ever used for
// lookups and are never shown to the user.
package normalize
