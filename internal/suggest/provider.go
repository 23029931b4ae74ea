package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"codeberg.org/snonux/wordbridge/internal/normalize"
	"codeberg.org/snonux/wordbridge/internal/translation"
)

// ErrNoProvider is returned when suggestions are disabled or no API key is
// configured for the selected provider.
var ErrNoProvider = errors.New("no suggestion provider configured")

// maxSuggestions caps the number of candidates returned to the user.
const maxSuggestions = 5

// Provider returns candidate translations for a single word.
type Provider interface {
	// Suggest returns candidate translations of word in direction dir,
	// preferred candidate first.
	Suggest(ctx context.Context, word string, dir translation.Direction) ([]string, error)

	// Name returns the provider name
	Name() string
}

// Config holds the settings of all providers.
type Config struct {
	Provider string // "openai", "gemini" or "none"
	Timeout  time.Duration

	OpenAIKey   string
	OpenAIModel string

	GeminiKey   string
	GeminiModel string

	// Breaker settings
	MaxFailures uint32
	Cooldown    time.Duration
}

// DefaultConfig returns the default configuration. Suggestions are off
// until a provider is selected.
func DefaultConfig() *Config {
	return &Config{
		Provider:    "none",
		Timeout:     30 * time.Second,
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
		MaxFailures: 3,
		Cooldown:    time.Minute,
	}
}

// NewProvider creates the configured provider wrapped in a circuit breaker.
func NewProvider(ctx context.Context, config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var (
		p   Provider
		err error
	)
	switch strings.ToLower(strings.TrimSpace(config.Provider)) {
	case "", "none":
		return nil, ErrNoProvider
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("%w: OpenAI API key is required", ErrNoProvider)
		}
		p = NewOpenAIProvider(config)
	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("%w: Gemini API key is required", ErrNoProvider)
		}
		p, err = NewGeminiProvider(ctx, config)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown suggestion provider: %s", config.Provider)
	}

	return NewBreakerProvider(p, config.MaxFailures, config.Cooldown), nil
}

// prompt builds the request sent to every provider.
func prompt(word string, dir translation.Direction) string {
	from, to := "English", "Spanish"
	if dir == translation.Reverse {
		from, to = to, from
	}
	return fmt.Sprintf(
		"Give up to %d %s translations of the %s word '%s', most common first. "+
			"Respond with a comma-separated list of single words only, nothing else.",
		maxSuggestions, to, from, word)
}

// ParseSuggestions turns a model reply into a clean list of candidates. It
// accepts comma or newline separated lists, strips list markers, quotes and
// trailing punctuation, and drops case-insensitive duplicates.
func ParseSuggestions(reply string) []string {
	fields := strings.FieldsFunc(reply, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})

	var out []string
	seen := make(map[string]bool)
	for _, f := range fields {
		s := cleanCandidate(f)
		if s == "" {
			continue
		}
		key := normalize.Fold(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func cleanCandidate(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "-*•0123456789.) ")
	s = strings.Trim(s, "\"'`“”‘’ ")
	s = strings.TrimRight(s, ".!? ")
	return strings.TrimSpace(s)
}
