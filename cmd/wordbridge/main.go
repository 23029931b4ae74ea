package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"codeberg.org/snonux/wordbridge/internal/cli"
	"codeberg.org/snonux/wordbridge/internal/dictionary"
	"codeberg.org/snonux/wordbridge/internal/logger"
	"codeberg.org/snonux/wordbridge/internal/models"
	"codeberg.org/snonux/wordbridge/internal/processor"
	"codeberg.org/snonux/wordbridge/internal/suggest"
	"codeberg.org/snonux/wordbridge/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.Context(), args, flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, args []string, flags *cli.Flags) error {
	// Config file and environment fill in everything not given as a flag
	cli.ApplyConfig(flags)
	log := logger.New(flags.LogLevel, flags.LogFormat, os.Stderr)

	if _, err := translation.ParseDirection(flags.Direction); err != nil {
		return err
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels(ctx, os.Stdout)
	}

	translator := translation.NewTranslator(dictionary.NewBaseStore(), log)
	suggester := newSuggester(ctx, flags, log)

	proc := processor.NewProcessor(flags, translator, suggester, log)
	proc.SetIO(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))

	if flags.VocabFile != "" {
		added, err := proc.LoadVocabulary(flags.VocabFile)
		if err != nil {
			return err
		}
		log.WithField("entries", added).Debug("extra vocabulary added")
	}

	actionRequested := false

	if flags.SuggestWord != "" {
		actionRequested = true
		if err := proc.Suggest(ctx, flags.SuggestWord); err != nil {
			return err
		}
	}

	if flags.BatchFile != "" {
		actionRequested = true
		if err := proc.ProcessBatch(); err != nil {
			return err
		}
	} else if len(args) > 0 {
		actionRequested = true
		if err := proc.ProcessSingle(strings.Join(args, " ")); err != nil {
			return err
		}
	}

	if flags.Export != "" {
		actionRequested = true
		if _, err := proc.ExportVocabulary(); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
	}

	if actionRequested {
		return nil
	}

	// No input provided - run the interactive menu
	return proc.RunInteractive(ctx)
}

// newSuggester returns the configured suggestion provider, or nil when
// suggestions are disabled or cannot be set up.
func newSuggester(ctx context.Context, flags *cli.Flags, log logrus.FieldLogger) suggest.Provider {
	provider, err := suggest.NewProvider(ctx, cli.SuggestConfig(flags))
	if err != nil {
		if errors.Is(err, suggest.ErrNoProvider) {
			log.WithError(err).Debug("suggestions disabled")
		} else {
			log.WithError(err).Warn("suggestions disabled")
		}
		return nil
	}
	log.WithField("provider", provider.Name()).Debug("suggestions enabled")
	return provider
}
