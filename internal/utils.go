package internal

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"unicode"
)

// NoteGUID derives a stable Anki note GUID from the card fields.
// Format: md5(front + "\x1f" + back)[:10]
func NoteGUID(front, back string) string {
	hash := md5.Sum([]byte(front + "\x1f" + back))
	return hex.EncodeToString(hash[:])[:10]
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
