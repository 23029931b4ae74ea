// Package processor contains the application logic behind the command line.
// It loads extra vocabulary, translates single sentences and batch files,
// asks the suggestion provider for candidate translations, exports the
// dictionary to Anki and runs the interactive menu. It is the coordinator
// between all other components.
package processor
