package processor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/wordbridge/internal"
	"codeberg.org/snonux/wordbridge/internal/anki"
	"codeberg.org/snonux/wordbridge/internal/archive"
	"codeberg.org/snonux/wordbridge/internal/batch"
	"codeberg.org/snonux/wordbridge/internal/cli"
	"codeberg.org/snonux/wordbridge/internal/suggest"
	"codeberg.org/snonux/wordbridge/internal/translation"
)

// Processor runs the translation workflows selected on the command line
type Processor struct {
	flags      *cli.Flags
	translator *translation.Translator
	suggester  suggest.Provider // nil when suggestions are disabled
	log        logrus.FieldLogger

	in          *bufio.Reader
	out         io.Writer
	interactive bool // print prompts
}

// NewProcessor creates a processor reading from stdin and writing to stdout.
// suggester may be nil.
func NewProcessor(flags *cli.Flags, translator *translation.Translator, suggester suggest.Provider, log logrus.FieldLogger) *Processor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Processor{
		flags:       flags,
		translator:  translator,
		suggester:   suggester,
		log:         log,
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: true,
	}
}

// SetIO replaces the input and output streams. When interactive is false
// the menu and its prompts are not printed, so the menu can be driven from
// a pipe.
func (p *Processor) SetIO(in io.Reader, out io.Writer, interactive bool) {
	p.in = bufio.NewReader(in)
	p.out = out
	p.interactive = interactive
}

// Direction returns the translation direction selected by the flags
func (p *Processor) Direction() (translation.Direction, error) {
	return translation.ParseDirection(p.flags.Direction)
}

// LoadVocabulary adds every entry of a vocabulary file to the dictionary in
// the selected direction and returns the number of entries added.
func (p *Processor) LoadVocabulary(path string) (int, error) {
	dir, err := p.Direction()
	if err != nil {
		return 0, err
	}

	entries, err := batch.ReadVocabularyFile(path)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, e := range entries {
		if err := p.translator.AddEntry(dir, e.Source, e.Targets); err != nil {
			p.log.WithFields(logrus.Fields{"file": path, "line": e.Line}).WithError(err).Warn("skipping vocabulary entry")
			continue
		}
		added++
	}

	p.log.WithFields(logrus.Fields{"file": path, "entries": added}).Info("vocabulary loaded")
	return added, nil
}

// ProcessSingle translates one sentence and prints the result
func (p *Processor) ProcessSingle(sentence string) error {
	dir, err := p.Direction()
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, p.translator.TranslateSentence(sentence, dir))
	return nil
}

// ProcessBatch translates every sentence of the batch file. Results go to
// the output file when one is set, otherwise to stdout.
func (p *Processor) ProcessBatch() error {
	dir, err := p.Direction()
	if err != nil {
		return err
	}

	sentences, err := batch.ReadSentenceFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	results := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		results = append(results, p.translator.TranslateSentence(sentence, dir))
	}

	p.log.WithFields(logrus.Fields{
		"file":      p.flags.BatchFile,
		"sentences": len(sentences),
		"direction": dir.String(),
	}).Info("batch translated")

	if p.flags.OutputFile != "" {
		if err := batch.WriteLines(p.flags.OutputFile, results); err != nil {
			return err
		}
		fmt.Fprintf(p.out, "Translated %d sentences to %s\n", len(results), p.flags.OutputFile)
		return nil
	}

	for _, line := range results {
		fmt.Fprintln(p.out, line)
	}
	return nil
}

// Suggest prints candidate translations of word from the suggestion provider
func (p *Processor) Suggest(ctx context.Context, word string) error {
	dir, err := p.Direction()
	if err != nil {
		return err
	}

	suggestions, err := p.suggest(ctx, word, dir)
	if err != nil {
		return err
	}
	p.printSuggestions(word, suggestions)
	return nil
}

func (p *Processor) suggest(ctx context.Context, word string, dir translation.Direction) ([]string, error) {
	if p.suggester == nil {
		return nil, suggest.ErrNoProvider
	}

	word = strings.TrimSpace(word)
	if word == "" {
		return nil, &translation.InvalidInputError{Field: "word", Value: word}
	}

	suggestions, err := p.suggester.Suggest(ctx, word, dir)
	if err != nil {
		return nil, fmt.Errorf("%s suggestions for %q: %w", p.suggester.Name(), word, err)
	}

	p.log.WithFields(logrus.Fields{
		"provider":    p.suggester.Name(),
		"word":        word,
		"suggestions": len(suggestions),
	}).Debug("suggestions received")
	return suggestions, nil
}

func (p *Processor) printSuggestions(word string, suggestions []string) {
	if len(suggestions) == 0 {
		fmt.Fprintf(p.out, "No suggestions for '%s'\n", word)
		return
	}
	fmt.Fprintf(p.out, "Suggestions for '%s': %s\n", word, strings.Join(suggestions, ", "))
}

// ExportVocabulary writes the whole dictionary as an Anki file into the
// export directory and returns the file path. An earlier export with the
// same name is moved to the archive first.
func (p *Processor) ExportVocabulary() (string, error) {
	dir, err := p.Direction()
	if err != nil {
		return "", err
	}

	format := strings.ToLower(strings.TrimSpace(p.flags.Export))
	if format != "apkg" && format != "csv" {
		return "", fmt.Errorf("unknown export format %q (use apkg or csv)", p.flags.Export)
	}

	if err := os.MkdirAll(p.flags.ExportPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s.%s", internal.SanitizeFilename(p.flags.DeckName), dir.String(), format)
	outputPath := filepath.Join(p.flags.ExportPath, name)

	archived, err := archive.ArchiveFile(outputPath)
	if err != nil {
		return "", err
	}
	if archived != "" {
		fmt.Fprintf(p.out, "Previous export archived to: %s\n", archived)
	}

	cards := anki.CardsFromStore(p.translator.Store(), dir)

	if format == "csv" {
		gen := anki.NewGenerator(&anki.GeneratorOptions{
			OutputPath:     outputPath,
			IncludeHeaders: true,
		})
		gen.AddCards(cards)
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		gen := anki.NewAPKGGenerator(p.flags.DeckName)
		gen.AddCards(cards)
		if err := gen.GenerateAPKG(outputPath); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	p.log.WithFields(logrus.Fields{"path": outputPath, "cards": len(cards)}).Info("vocabulary exported")
	fmt.Fprintf(p.out, "Exported %d cards to: %s\n", len(cards), outputPath)
	return outputPath, nil
}

// isInvalidInput reports whether err is a rejected user input
func isInvalidInput(err error) bool {
	return errors.Is(err, translation.ErrInvalidInput)
}
