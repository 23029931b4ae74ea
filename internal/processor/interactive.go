package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"codeberg.org/snonux/wordbridge/internal/translation"
)

// RunInteractive runs the menu loop until the user chooses 0 or the input
// ends.
func (p *Processor) RunInteractive(ctx context.Context) error {
	for {
		p.printMenu()

		choice, ok := p.readLine("\nSelect an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			p.translateInteractive()
		case "2":
			p.addWordsInteractive()
		case "3":
			if p.suggester == nil {
				fmt.Fprintln(p.out, "Invalid option.")
				continue
			}
			p.suggestInteractive(ctx)
		case "4":
			p.listVocabulary()
		case "0":
			fmt.Fprintln(p.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(p.out, "Invalid option.")
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func (p *Processor) printMenu() {
	if !p.interactive {
		return
	}
	fmt.Fprintln(p.out, "\n==================== MENU ====================")
	fmt.Fprintln(p.out, "1. Translate a sentence")
	fmt.Fprintln(p.out, "2. Add words to the dictionary")
	if p.suggester != nil {
		fmt.Fprintf(p.out, "3. Suggest translations (%s)\n", p.suggester.Name())
	}
	fmt.Fprintln(p.out, "4. List vocabulary")
	fmt.Fprintln(p.out, "0. Exit")
}

// readLine prints prompt when interactive and reads one trimmed line. It
// reports false once the input is exhausted.
func (p *Processor) readLine(prompt string) (string, bool) {
	line, ok := p.readRawLine(prompt)
	return strings.TrimSpace(line), ok
}

// readRawLine is readLine without trimming: only the line terminator is
// removed.
func (p *Processor) readRawLine(prompt string) (string, bool) {
	if p.interactive {
		fmt.Fprint(p.out, prompt)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", false
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

// chooseDirection asks for a direction. Choice "1" selects Spanish to
// English; any other answer selects English to Spanish.
func (p *Processor) chooseDirection(title string) (translation.Direction, bool) {
	if p.interactive {
		fmt.Fprintf(p.out, "\n%s:\n", title)
		fmt.Fprintf(p.out, "1) %s\n", translation.Reverse.Label())
		fmt.Fprintf(p.out, "2) %s\n", translation.Forward.Label())
	}
	choice, ok := p.readLine("Choose 1 or 2: ")
	if !ok {
		return translation.Forward, false
	}
	if choice == "1" {
		return translation.Reverse, true
	}
	return translation.Forward, true
}

func (p *Processor) translateInteractive() {
	dir, ok := p.chooseDirection("Translation direction")
	if !ok {
		return
	}
	sentence, ok := p.readRawLine("\nEnter the sentence: ")
	if !ok {
		return
	}
	fmt.Fprintln(p.out, "\nTranslation:")
	fmt.Fprintln(p.out, p.translator.TranslateSentence(sentence, dir))
}

func (p *Processor) addWordsInteractive() {
	if p.interactive {
		fmt.Fprintln(p.out, "\nAdd word(s) to the dictionary:")
		fmt.Fprintf(p.out, "1) %s\n", translation.Reverse.Label())
		fmt.Fprintf(p.out, "2) %s\n", translation.Forward.Label())
	}
	choice, ok := p.readLine("Choose 1 or 2: ")
	if !ok {
		return
	}

	var dir translation.Direction
	var sourcePrompt, targetPrompt string
	switch choice {
	case "1":
		dir = translation.Reverse
		sourcePrompt = "Spanish word: "
		targetPrompt = "English translation(s), comma separated: "
	case "2":
		dir = translation.Forward
		sourcePrompt = "English word: "
		targetPrompt = "Spanish translation(s), comma separated: "
	default:
		fmt.Fprintln(p.out, "Invalid option.")
		return
	}

	source, ok := p.readLine(sourcePrompt)
	if !ok {
		return
	}
	if source == "" {
		fmt.Fprintln(p.out, "Empty input.")
		return
	}
	list, ok := p.readLine(targetPrompt)
	if !ok {
		return
	}

	p.addEntry(dir, source, splitList(list))
}

func (p *Processor) addEntry(dir translation.Direction, source string, targets []string) {
	if err := p.translator.AddEntry(dir, source, targets); err != nil {
		if isInvalidInput(err) {
			fmt.Fprintln(p.out, "Empty input.")
			return
		}
		fmt.Fprintf(p.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(p.out, "Added: %s → %s\n", strings.TrimSpace(source), strings.Join(targets, ", "))
}

func (p *Processor) suggestInteractive(ctx context.Context) {
	dir, ok := p.chooseDirection("Suggestion direction")
	if !ok {
		return
	}
	word, ok := p.readLine("Word: ")
	if !ok {
		return
	}

	suggestions, err := p.suggest(ctx, word, dir)
	if err != nil {
		if isInvalidInput(err) {
			fmt.Fprintln(p.out, "Empty input.")
			return
		}
		fmt.Fprintf(p.out, "Error: %v\n", err)
		return
	}
	p.printSuggestions(word, suggestions)
	if len(suggestions) == 0 {
		return
	}

	answer, ok := p.readLine("Add them to the dictionary? [y/N]: ")
	if !ok {
		return
	}
	if strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
		p.addEntry(dir, word, suggestions)
	}
}

func (p *Processor) listVocabulary() {
	entries := p.translator.Store().Entries()
	fmt.Fprintf(p.out, "\nVocabulary (%d entries):\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(p.out, "  %s → %s\n", e.Source, strings.Join(e.Targets, ", "))
	}
}

// splitList splits a comma separated answer, dropping empty items
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
