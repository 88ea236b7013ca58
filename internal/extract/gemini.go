package extract

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"codeberg.org/snonux/quotecast/internal/quote"
)

// geminiExtractor implements Extractor against the Gemini API
type geminiExtractor struct {
	config *Config
}

// newGeminiExtractor creates a Gemini-backed extractor
func newGeminiExtractor(config *Config) *geminiExtractor {
	return &geminiExtractor{config: config}
}

// Extract sends the rubric prompt to Gemini and parses the JSON reply
func (e *geminiExtractor) Extract(ctx context.Context, transcript string, opts *Options) ([]quote.Quote, error) {
	if e.config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key not found")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  e.config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := e.config.Model
	if model == "" {
		model = DefaultModel("gemini")
	}

	prompt := systemPrompt + "\n\n" + buildPrompt(transcript, opts)

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr(float32(e.config.Temperature)),
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), genConfig)
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	var reply string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			reply += part.Text
		}
	}

	return parseQuotes(reply)
}

// Name returns the backend name
func (e *geminiExtractor) Name() string {
	return "gemini"
}

// IsAvailable checks if the backend is configured
func (e *geminiExtractor) IsAvailable() error {
	if e.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
