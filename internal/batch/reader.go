package batch

import (
	"fmt"
	"os"
	"strings"
)

// VocabEntry is one line of a vocabulary file: a source word and its
// translations
type VocabEntry struct {
	Source  string
	Targets []string
	Line    int // 1-based line number in the file
}

// ReadSentenceFile reads sentences from a file, one per line. Blank lines are
// skipped; other lines are kept as they are, surrounding spaces included.
func ReadSentenceFile(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var sentences []string
	for _, line := range splitLines(string(content)) {
		if strings.TrimSpace(line) != "" {
			sentences = append(sentences, line)
		}
	}
	return sentences, nil
}

// ReadVocabularyFile reads vocabulary entries from a file.
// Format: "source = translation1, translation2"
// Lines starting with '#' and blank lines are skipped. Lines without '=' or
// with an empty side are ignored; empty items in the translation list are
// dropped.
func ReadVocabularyFile(filename string) ([]VocabEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var entries []VocabEntry
	for i, line := range splitLines(string(content)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		source, rest, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		source = strings.TrimSpace(source)
		targets := splitTargets(rest)
		if source == "" || len(targets) == 0 {
			continue
		}

		entries = append(entries, VocabEntry{
			Source:  source,
			Targets: targets,
			Line:    i + 1,
		})
	}
	return entries, nil
}

// WriteLines writes lines to filename, each terminated by a newline
func WriteLines(filename string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(filename, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// splitTargets splits a comma separated translation list
func splitTargets(s string) []string {
	var targets []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			targets = append(targets, part)
		}
	}
	return targets
}

// splitLines splits a string by newlines, dropping carriage returns
func splitLines(s string) []string {
	var lines []string
	var current strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			lines = append(lines, current.String())
			current.Reset()
		case '\r':
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
