package transcribe

import (
	"context"
	"fmt"
)

// Provider defines the interface for speech-to-text providers
type Provider interface {
	// Transcribe converts an audio file to text with segment timestamps
	Transcribe(ctx context.Context, audioPath string) (*Result, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for transcription providers
type Config struct {
	Provider string // Provider name: "openai"
	Model    string // Speech model, e.g. "whisper-1"
	Language string // ISO language hint, empty for auto-detect

	// OpenAI-specific settings
	OpenAIKey     string
	OpenAIBaseURL string

	// Caching
	EnableCache bool
	CacheDir    string
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider: "openai",
		Model:    "whisper-1",
	}
}

// NewProvider creates the appropriate transcription provider based on configuration
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config)

	default:
		return nil, fmt.Errorf("unknown transcription provider: %s", config.Provider)
	}
}
