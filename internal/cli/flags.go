package cli

import (
	"os"
	"path/filepath"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Direction  string
	BatchFile  string
	OutputFile string
	VocabFile  string
	ListModels bool

	// Export flags
	Export     string
	DeckName   string
	ExportPath string

	// Suggestion flags
	SuggestWord     string
	SuggestProvider string
	OpenAIModel     string
	GeminiModel     string

	// Logging flags
	LogLevel  string
	LogFormat string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Direction:       "en-es",
		DeckName:        "Spanish Vocabulary",
		ExportPath:      defaultExportDir(),
		SuggestProvider: "none",
		OpenAIModel:     "gpt-4o-mini",
		GeminiModel:     "gemini-2.0-flash",
		LogLevel:        "warn",
		LogFormat:       "text",
	}
}

func defaultExportDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "wordbridge", "exports")
}
