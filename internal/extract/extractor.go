package extract

import (
	"context"
	"fmt"

	"codeberg.org/snonux/quotecast/internal/quote"
)

// Extractor defines the interface for LLM quote extraction backends
type Extractor interface {
	// Extract pulls scored quotes out of a transcript
	Extract(ctx context.Context, transcript string, opts *Options) ([]quote.Quote, error)

	// Name returns the backend name
	Name() string

	// IsAvailable checks if the backend is properly configured and available
	IsAvailable() error
}

// Options configures a single extraction request
type Options struct {
	NumQuotes  int      // Desired number of quotes
	MinLength  int      // Minimum quote length in characters
	MaxLength  int      // Maximum quote length in characters
	Categories []string // Allowed categories
}

// DefaultOptions returns sensible defaults for podcast transcripts
func DefaultOptions() *Options {
	return &Options{
		NumQuotes:  10,
		MinLength:  10,
		MaxLength:  200,
		Categories: []string{"insight", "opinion", "method", "story", "other"},
	}
}

// Config holds common configuration for extraction backends
type Config struct {
	Provider    string // Backend name: "openai" or "gemini"
	Model       string
	Temperature float64
	MaxTokens   int

	// OpenAI-specific settings
	OpenAIKey     string
	OpenAIBaseURL string

	// Gemini-specific settings
	GeminiKey string
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		Model:       DefaultModel("openai"),
		Temperature: 0.7,
		MaxTokens:   2000,
	}
}

// DefaultModel returns the default model for an extraction backend. The
// two backends speak different model families, so the default depends on
// the provider rather than being a single constant.
func DefaultModel(provider string) string {
	if provider == "gemini" {
		return "gemini-2.5-flash"
	}
	return "gpt-4-turbo-preview"
}

// NewExtractor creates the appropriate extraction backend based on
// configuration. An empty model resolves to the provider's default. The
// backend is wrapped in a circuit breaker so a failing endpoint trips
// fast instead of being hammered mid-batch.
func NewExtractor(config *Config) (Extractor, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Model == "" {
		config.Model = DefaultModel(config.Provider)
	}

	var backend Extractor
	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		backend = newOpenAIExtractor(config)

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		backend = newGeminiExtractor(config)

	default:
		return nil, fmt.Errorf("unknown extraction provider: %s", config.Provider)
	}

	return withBreaker(backend), nil
}
