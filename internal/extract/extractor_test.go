package extract

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"codeberg.org/snonux/quotecast/internal/quote"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.NumQuotes != 10 {
		t.Errorf("Expected 10 quotes, got %d", opts.NumQuotes)
	}
	if opts.MinLength != 10 || opts.MaxLength != 200 {
		t.Errorf("Unexpected length bounds: %d-%d", opts.MinLength, opts.MaxLength)
	}
	if len(opts.Categories) != 5 {
		t.Errorf("Expected 5 default categories, got %d", len(opts.Categories))
	}
}

func TestNewExtractor_OpenAI(t *testing.T) {
	config := DefaultConfig()
	config.OpenAIKey = "test-api-key"

	extractor, err := NewExtractor(config)
	if err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}

	if extractor.Name() != "openai" {
		t.Errorf("Expected backend 'openai', got '%s'", extractor.Name())
	}

	if err := extractor.IsAvailable(); err != nil {
		t.Errorf("Expected backend to be available: %v", err)
	}
}

func TestNewExtractor_Gemini(t *testing.T) {
	config := DefaultConfig()
	config.Provider = "gemini"
	config.GeminiKey = "test-api-key"

	extractor, err := NewExtractor(config)
	if err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}

	if extractor.Name() != "gemini" {
		t.Errorf("Expected backend 'gemini', got '%s'", extractor.Name())
	}
}

func TestDefaultModel(t *testing.T) {
	if got := DefaultModel("openai"); got != "gpt-4-turbo-preview" {
		t.Errorf("Unexpected OpenAI default model: %s", got)
	}
	if got := DefaultModel("gemini"); got != "gemini-2.5-flash" {
		t.Errorf("Unexpected Gemini default model: %s", got)
	}
}

func TestNewExtractor_ResolvesProviderDefaultModel(t *testing.T) {
	// An unset model must resolve per provider; the OpenAI default sent
	// to the Gemini API would be rejected as an unknown model
	config := &Config{Provider: "gemini", GeminiKey: "test-api-key"}
	if _, err := NewExtractor(config); err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}
	if config.Model != "gemini-2.5-flash" {
		t.Errorf("Expected the Gemini default model, got %q", config.Model)
	}

	config = &Config{Provider: "openai", OpenAIKey: "test-api-key"}
	if _, err := NewExtractor(config); err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}
	if config.Model != "gpt-4-turbo-preview" {
		t.Errorf("Expected the OpenAI default model, got %q", config.Model)
	}
}

func TestNewExtractor_MissingKeys(t *testing.T) {
	tests := []struct {
		name     string
		provider string
	}{
		{"openai without key", "openai"},
		{"gemini without key", "gemini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.Provider = tt.provider

			if _, err := NewExtractor(config); err == nil {
				t.Error("Expected error for missing API key")
			}
		})
	}
}

func TestNewExtractor_UnknownProvider(t *testing.T) {
	config := DefaultConfig()
	config.Provider = "llamacpp"

	_, err := NewExtractor(config)
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}

	if !strings.Contains(err.Error(), "unknown extraction provider") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestExtract_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	config := DefaultConfig()
	config.OpenAIKey = apiKey

	extractor, err := NewExtractor(config)
	if err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}

	transcript := `Real growth comes from leaving your comfort zone and facing
the unknown. In a fast-changing world, the ability to keep learning is the
most durable competitive advantage. The meaning of life is not what you
own but what value you create.`

	opts := DefaultOptions()
	opts.NumQuotes = 3

	quotes, err := extractor.Extract(context.Background(), transcript, opts)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(quotes) == 0 {
		t.Error("Expected at least one quote")
	}

	for _, q := range quotes {
		t.Logf("Quote: %s (category=%s, score=%.1f)", q.Text, q.Category, q.Score)
	}
}

// failingBackend always errors, for breaker tests
type failingBackend struct {
	calls int
}

func (f *failingBackend) Extract(ctx context.Context, transcript string, opts *Options) ([]quote.Quote, error) {
	f.calls++
	return nil, fmt.Errorf("simulated API failure")
}

func (f *failingBackend) Name() string       { return "failing" }
func (f *failingBackend) IsAvailable() error { return nil }

func TestBreaker_TripsAfterConsecutiveFailures(t *testing.T) {
	backend := &failingBackend{}
	extractor := withBreaker(backend)

	// Drive the breaker past its trip threshold
	for i := 0; i < 10; i++ {
		if _, err := extractor.Extract(context.Background(), "text", nil); err == nil {
			t.Fatal("Expected error from failing backend")
		}
	}

	// Once open, calls fail fast without reaching the backend
	if backend.calls >= 10 {
		t.Errorf("Breaker never opened: backend saw %d calls", backend.calls)
	}
}

type succeedingBackend struct{}

func (s *succeedingBackend) Extract(ctx context.Context, transcript string, opts *Options) ([]quote.Quote, error) {
	return []quote.Quote{{Text: "a quote", Score: 7}}, nil
}

func (s *succeedingBackend) Name() string       { return "succeeding" }
func (s *succeedingBackend) IsAvailable() error { return nil }

func TestBreaker_PassesThroughResults(t *testing.T) {
	extractor := withBreaker(&succeedingBackend{})

	quotes, err := extractor.Extract(context.Background(), "text", nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(quotes) != 1 || quotes[0].Text != "a quote" {
		t.Errorf("Unexpected quotes: %+v", quotes)
	}

	if extractor.Name() != "succeeding" {
		t.Errorf("Breaker should report the backend name, got '%s'", extractor.Name())
	}
}
