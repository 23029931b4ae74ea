package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordbridge/internal"
	"codeberg.org/snonux/wordbridge/internal/suggest"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordbridge [sentence]",
		Short: "English/Spanish word-substitution translator",
		Long: `wordbridge translates sentences word by word between English and
Spanish using an in-memory dictionary with accent-insensitive lookup.

Examples:
  wordbridge                              # Interactive menu (default)
  wordbridge "The child has time."        # Translate one sentence
  wordbridge -d es-en "el niño"           # Translate Spanish to English
  wordbridge --batch sentences.txt        # Translate every line of a file
  wordbridge --vocab words.txt --export apkg   # Export vocabulary to Anki`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wordbridge.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")

	// Local flags
	cmd.Flags().StringVarP(&flags.Direction, "direction", "d", flags.Direction, "Translation direction: en-es or es-en")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate sentences from file (one per line)")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Write batch results to file instead of stdout")
	cmd.Flags().StringVar(&flags.VocabFile, "vocab", "", "Load extra vocabulary from file (source = t1, t2)")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")

	// Export flags
	cmd.Flags().StringVar(&flags.Export, "export", "", "Export the vocabulary as Anki file: apkg or csv")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().StringVar(&flags.ExportPath, "export-path", flags.ExportPath, "Directory for exported files")

	// Suggestion flags
	cmd.Flags().StringVar(&flags.SuggestWord, "suggest", "", "Print translation suggestions for a word")
	cmd.Flags().StringVar(&flags.SuggestProvider, "suggest-provider", flags.SuggestProvider, "Suggestion provider: openai, gemini or none")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for suggestions")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for suggestions")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translate.direction", cmd.Flags().Lookup("direction"))
	viper.BindPFlag("translate.vocab", cmd.Flags().Lookup("vocab"))
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", cmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("suggest.provider", cmd.Flags().Lookup("suggest-provider"))
	viper.BindPFlag("suggest.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("suggest.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("export.deck_name", cmd.Flags().Lookup("deck-name"))
	viper.BindPFlag("export.path", cmd.Flags().Lookup("export-path"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wordbridge" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordbridge")
	}

	// Environment variables, e.g. WORDBRIDGE_SUGGEST_PROVIDER
	viper.SetEnvPrefix("WORDBRIDGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies the bound viper values into flags. Explicit flags win
// over environment variables, which win over the config file.
func ApplyConfig(flags *Flags) {
	flags.Direction = viper.GetString("translate.direction")
	flags.VocabFile = viper.GetString("translate.vocab")
	flags.LogLevel = viper.GetString("log.level")
	flags.LogFormat = viper.GetString("log.format")
	flags.SuggestProvider = viper.GetString("suggest.provider")
	flags.OpenAIModel = viper.GetString("suggest.openai_model")
	flags.GeminiModel = viper.GetString("suggest.gemini_model")
	flags.DeckName = viper.GetString("export.deck_name")
	flags.ExportPath = viper.GetString("export.path")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("suggest.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("suggest.gemini_key")
}

// SuggestConfig builds the suggestion provider settings from flags, API keys
// and the optional suggest.timeout config value.
func SuggestConfig(flags *Flags) *suggest.Config {
	config := suggest.DefaultConfig()
	config.Provider = flags.SuggestProvider
	config.OpenAIKey = GetOpenAIKey()
	config.OpenAIModel = flags.OpenAIModel
	config.GeminiKey = GetGeminiKey()
	config.GeminiModel = flags.GeminiModel

	if timeout := viper.GetDuration("suggest.timeout"); timeout > 0 {
		config.Timeout = timeout
	}
	if cooldown := viper.GetDuration("suggest.cooldown"); cooldown > 0 {
		config.Cooldown = cooldown
	}
	if failures := viper.GetUint32("suggest.max_failures"); failures > 0 {
		config.MaxFailures = failures
	}
	return config
}
