package extract

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/quotecast/internal/quote"
)

// openAIExtractor implements Extractor against the OpenAI chat API
type openAIExtractor struct {
	client *openai.Client
	config *Config
}

// newOpenAIExtractor creates an OpenAI-backed extractor
func newOpenAIExtractor(config *Config) *openAIExtractor {
	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	return &openAIExtractor{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}
}

// Extract sends the rubric prompt and parses the JSON reply
func (e *openAIExtractor) Extract(ctx context.Context, transcript string, opts *Options) ([]quote.Quote, error) {
	if e.config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: e.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(transcript, opts),
			},
		},
		Temperature: float32(e.config.Temperature),
		MaxTokens:   e.config.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return parseQuotes(resp.Choices[0].Message.Content)
}

// Name returns the backend name
func (e *openAIExtractor) Name() string {
	return "openai"
}

// IsAvailable checks if the backend is configured
func (e *openAIExtractor) IsAvailable() error {
	if e.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}
