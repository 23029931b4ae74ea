package suggest

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/wordbridge/internal/translation"
)

// chatClient is the subset of the OpenAI client used here.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider asks an OpenAI chat model for translations.
type OpenAIProvider struct {
	client chatClient
	config *Config
}

// NewOpenAIProvider creates a provider using config.OpenAIKey.
func NewOpenAIProvider(config *Config) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(config.OpenAIKey),
		config: config,
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Suggest implements Provider.
func (p *OpenAIProvider) Suggest(ctx context.Context, word string, dir translation.Direction) ([]string, error) {
	if p.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: p.config.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a concise bilingual English/Spanish dictionary.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt(word, dir),
			},
		},
		MaxTokens:   60,
		Temperature: 0.2,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no suggestions returned")
	}

	suggestions := ParseSuggestions(resp.Choices[0].Message.Content)
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("no suggestions returned")
	}
	return suggestions, nil
}
