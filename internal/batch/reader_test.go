package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func TestReadSentenceFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []string
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name:        "indentation kept",
			fileContent: "\tThe day\r\n",
			want:        []string{"\tThe day"},
		},
		{
			name:        "sentences with blank lines",
			fileContent: "The child.\n\n  Hello, world!  \n",
			want:        []string{"The child.", "  Hello, world!  "},
		},
		{
			name:        "windows line endings",
			fileContent: "uno\r\ndos\r\ntres",
			want:        []string{"uno", "dos", "tres"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadSentenceFile(writeTemp(t, tt.fileContent))
			if err != nil {
				t.Fatalf("ReadSentenceFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadSentenceFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadVocabularyFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []VocabEntry
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "single and multiple translations",
			fileContent: "dog = perro\nchild = niño, niña",
			want: []VocabEntry{
				{Source: "dog", Targets: []string{"perro"}, Line: 1},
				{Source: "child", Targets: []string{"niño", "niña"}, Line: 2},
			},
		},
		{
			name:        "comments and blank lines",
			fileContent: "# animals\n\ncat = gato\n  # indented comment\n",
			want: []VocabEntry{
				{Source: "cat", Targets: []string{"gato"}, Line: 3},
			},
		},
		{
			name:        "malformed lines are ignored",
			fileContent: "no separator\n= orphan\nempty =\nhouse = , casa ,\n",
			want: []VocabEntry{
				{Source: "house", Targets: []string{"casa"}, Line: 4},
			},
		},
		{
			name:        "windows line endings",
			fileContent: "tree = árbol\r\nyear = año\r\n",
			want: []VocabEntry{
				{Source: "tree", Targets: []string{"árbol"}, Line: 1},
				{Source: "year", Targets: []string{"año"}, Line: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadVocabularyFile(writeTemp(t, tt.fileContent))
			if err != nil {
				t.Fatalf("ReadVocabularyFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadVocabularyFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadFiles_FileNotFound(t *testing.T) {
	if _, err := ReadSentenceFile("/nonexistent/file.txt"); err == nil {
		t.Error("Expected error for non-existent sentence file")
	}
	if _, err := ReadVocabularyFile("/nonexistent/file.txt"); err == nil {
		t.Error("Expected error for non-existent vocabulary file")
	}
}

func TestWriteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteLines(path, []string{"El niño.", "", "Hola"}); err != nil {
		t.Fatalf("WriteLines() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "El niño.\n\nHola\n" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"unix line endings", "line1\nline2\nline3", []string{"line1", "line2", "line3"}},
		{"windows line endings", "line1\r\nline2\r\nline3", []string{"line1", "line2", "line3"}},
		{"empty string", "", nil},
		{"trailing newline", "line1\nline2\n", []string{"line1", "line2"}},
		{"blank line kept", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitLines(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLines() = %q, want %q", got, tt.want)
			}
		})
	}
}
