package testutil

import (
	"context"
	"fmt"

	"codeberg.org/snonux/wordbridge/internal/translation"
)

// MockSuggester mocks a translation suggestion provider
type MockSuggester struct {
	Suggestions map[string][]string
	Errors      map[string]error
	Calls       []string
}

// Suggest returns the canned suggestions for word
func (m *MockSuggester) Suggest(ctx context.Context, word string, dir translation.Direction) ([]string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("Suggest: %s (%s)", word, dir))

	if err, ok := m.Errors[word]; ok {
		return nil, err
	}

	return m.Suggestions[word], nil
}

// Name returns the provider name
func (m *MockSuggester) Name() string {
	return "mock"
}
