package processor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/wordbridge/internal/cli"
	"codeberg.org/snonux/wordbridge/internal/dictionary"
	"codeberg.org/snonux/wordbridge/internal/suggest"
	"codeberg.org/snonux/wordbridge/internal/testutil"
	"codeberg.org/snonux/wordbridge/internal/translation"
)

func newTestProcessor(t *testing.T, flags *cli.Flags, suggester suggest.Provider, input string) (*Processor, *bytes.Buffer) {
	t.Helper()

	if flags == nil {
		flags = cli.NewFlags()
	}
	flags.ExportPath = t.TempDir()

	translator := translation.NewTranslator(dictionary.NewBaseStore(), nil)
	p := NewProcessor(flags, translator, suggester, nil)

	var out bytes.Buffer
	p.SetIO(strings.NewReader(input), &out, false)
	return p, &out
}

func TestNewProcessor(t *testing.T) {
	flags := cli.NewFlags()
	translator := translation.NewTranslator(dictionary.NewBaseStore(), nil)
	p := NewProcessor(flags, translator, nil, nil)

	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
	if p.flags != flags {
		t.Error("Processor flags not set correctly")
	}
	if p.translator != translator {
		t.Error("Translator not set")
	}
	if p.log == nil {
		t.Error("Logger not initialized")
	}
	if p.suggester != nil {
		t.Error("Suggester should be nil when none is given")
	}
}

func TestProcessSingle(t *testing.T) {
	tests := []struct {
		name      string
		direction string
		input     string
		want      string
	}{
		{"english to spanish", "en-es", "The child has time.", "The niño has tiempo.\n"},
		{"spanish to english", "es-en", "El Niño tiene TIEMPO.", "El Child tiene TIME.\n"},
		{"accent insensitive", "es-en", "ano", "year\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := cli.NewFlags()
			flags.Direction = tt.direction
			p, out := newTestProcessor(t, flags, nil, "")

			if err := p.ProcessSingle(tt.input); err != nil {
				t.Fatalf("ProcessSingle() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("ProcessSingle() printed %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestProcessSingle_InvalidDirection(t *testing.T) {
	flags := cli.NewFlags()
	flags.Direction = "fr-de"
	p, _ := newTestProcessor(t, flags, nil, "")

	if err := p.ProcessSingle("hello"); err == nil {
		t.Error("Expected error for unknown direction")
	}
}

func TestProcessBatch(t *testing.T) {
	dir := t.TempDir()
	batchFile := filepath.Join(dir, "sentences.txt")
	testutil.CreateTestFile(t, batchFile, []byte("The child.\r\n\r\nGood day!\n"))

	t.Run("stdout", func(t *testing.T) {
		flags := cli.NewFlags()
		flags.BatchFile = batchFile
		p, out := newTestProcessor(t, flags, nil, "")

		if err := p.ProcessBatch(); err != nil {
			t.Fatalf("ProcessBatch() error = %v", err)
		}
		if out.String() != "The niño.\nGood día!\n" {
			t.Errorf("unexpected output %q", out.String())
		}
	})

	t.Run("output file", func(t *testing.T) {
		flags := cli.NewFlags()
		flags.BatchFile = batchFile
		flags.OutputFile = filepath.Join(dir, "out.txt")
		p, out := newTestProcessor(t, flags, nil, "")

		if err := p.ProcessBatch(); err != nil {
			t.Fatalf("ProcessBatch() error = %v", err)
		}
		testutil.AssertFileContent(t, flags.OutputFile, []byte("The niño.\nGood día!\n"))
		if !strings.Contains(out.String(), "Translated 2 sentences") {
			t.Errorf("missing summary in %q", out.String())
		}
	})

	t.Run("spacing kept", func(t *testing.T) {
		spaced := filepath.Join(dir, "spaced.txt")
		testutil.CreateTestFile(t, spaced, []byte("  The  day  \n\tTIME\n"))

		flags := cli.NewFlags()
		flags.BatchFile = spaced
		p, out := newTestProcessor(t, flags, nil, "")

		if err := p.ProcessBatch(); err != nil {
			t.Fatalf("ProcessBatch() error = %v", err)
		}
		if out.String() != "  The  día  \n\tTIEMPO\n" {
			t.Errorf("unexpected output %q", out.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		flags := cli.NewFlags()
		flags.BatchFile = filepath.Join(dir, "missing.txt")
		p, _ := newTestProcessor(t, flags, nil, "")

		if err := p.ProcessBatch(); err == nil {
			t.Error("Expected error for missing batch file")
		}
	})
}

func TestLoadVocabulary(t *testing.T) {
	path := testutil.CreateVocabularyFile(t,
		"# pets",
		"dog = perro",
		"cat = gato, minino",
		"broken line",
	)

	p, out := newTestProcessor(t, nil, nil, "")
	added, err := p.LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary() error = %v", err)
	}
	if added != 2 {
		t.Errorf("added = %d, want 2", added)
	}

	if err := p.ProcessSingle("The dog and the cat"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "The perro and the gato\n" {
		t.Errorf("unexpected translation %q", out.String())
	}
}

func TestLoadVocabulary_Reverse(t *testing.T) {
	path := testutil.CreateVocabularyFile(t, "perro = dog")

	flags := cli.NewFlags()
	flags.Direction = "es-en"
	p, out := newTestProcessor(t, flags, nil, "")

	if _, err := p.LoadVocabulary(path); err != nil {
		t.Fatal(err)
	}
	if err := p.ProcessSingle("Perro"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Dog\n" {
		t.Errorf("unexpected translation %q", out.String())
	}
}

func TestSuggest(t *testing.T) {
	mock := &testutil.MockSuggester{
		Suggestions: map[string][]string{"dog": {"perro", "can"}},
		Errors:      map[string]error{"fail": errors.New("quota exceeded")},
	}

	p, out := newTestProcessor(t, nil, mock, "")

	if err := p.Suggest(context.Background(), "dog"); err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if out.String() != "Suggestions for 'dog': perro, can\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	if len(mock.Calls) != 1 || mock.Calls[0] != "Suggest: dog (en-es)" {
		t.Errorf("unexpected calls %v", mock.Calls)
	}

	err := p.Suggest(context.Background(), "fail")
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("expected provider error, got %v", err)
	}

	if err := p.Suggest(context.Background(), "  "); !errors.Is(err, translation.ErrInvalidInput) {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestSuggest_NoProvider(t *testing.T) {
	p, _ := newTestProcessor(t, nil, nil, "")

	err := p.Suggest(context.Background(), "dog")
	if !errors.Is(err, suggest.ErrNoProvider) {
		t.Errorf("expected ErrNoProvider, got %v", err)
	}
}

func TestExportVocabulary(t *testing.T) {
	tests := []struct {
		format    string
		direction string
		wantName  string
	}{
		{"csv", "en-es", "Spanish_Vocabulary-en-es.csv"},
		{"apkg", "es-en", "Spanish_Vocabulary-es-en.apkg"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			flags := cli.NewFlags()
			flags.Export = tt.format
			flags.Direction = tt.direction
			p, out := newTestProcessor(t, flags, nil, "")

			path, err := p.ExportVocabulary()
			if err != nil {
				t.Fatalf("ExportVocabulary() error = %v", err)
			}
			if filepath.Base(path) != tt.wantName {
				t.Errorf("export name = %s, want %s", filepath.Base(path), tt.wantName)
			}
			testutil.AssertFileExists(t, path)
			if !strings.Contains(out.String(), "Exported") {
				t.Errorf("missing export message in %q", out.String())
			}

			// A second export archives the first one
			out.Reset()
			if _, err := p.ExportVocabulary(); err != nil {
				t.Fatalf("second ExportVocabulary() error = %v", err)
			}
			entries, err := os.ReadDir(filepath.Join(flags.ExportPath, "archive"))
			if err != nil {
				t.Fatalf("archive directory missing: %v", err)
			}
			if len(entries) != 1 {
				t.Errorf("expected 1 archived export, got %d", len(entries))
			}
			if !strings.Contains(out.String(), "Previous export archived") {
				t.Errorf("missing archive message in %q", out.String())
			}
		})
	}
}

func TestExportVocabulary_CSVContent(t *testing.T) {
	flags := cli.NewFlags()
	flags.Export = "csv"
	p, _ := newTestProcessor(t, flags, nil, "")

	path, err := p.ExportVocabulary()
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertFileContains(t, path, "Front,Back,Tags\n")
	testutil.AssertFileContains(t, path, "child,\"niño, niña, niño/a\",wordbridge en-es\n")
}

func TestExportVocabulary_UnknownFormat(t *testing.T) {
	flags := cli.NewFlags()
	flags.Export = "pdf"
	p, _ := newTestProcessor(t, flags, nil, "")

	if _, err := p.ExportVocabulary(); err == nil {
		t.Error("Expected error for unknown export format")
	}
}
