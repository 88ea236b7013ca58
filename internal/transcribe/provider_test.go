package transcribe

import (
	"strings"
	"testing"
)

func TestDefaultProviderConfig(t *testing.T) {
	config := DefaultProviderConfig()

	if config.Provider != "openai" {
		t.Errorf("Expected provider 'openai', got '%s'", config.Provider)
	}

	if config.Model != "whisper-1" {
		t.Errorf("Expected model 'whisper-1', got '%s'", config.Model)
	}
}

func TestNewProvider_NoAPIKey(t *testing.T) {
	config := &Config{
		Provider: "openai",
	}

	_, err := NewProvider(config)
	if err == nil {
		t.Error("Expected error for missing API key")
	}
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	config := &Config{
		Provider: "whispercpp",
	}

	_, err := NewProvider(config)
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}

	if !strings.Contains(err.Error(), "unknown transcription provider") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestNewProvider_NilConfigUsesDefaults(t *testing.T) {
	// Defaults have no API key, so construction must fail with the
	// openai key error rather than the unknown provider error.
	_, err := NewProvider(nil)
	if err == nil {
		t.Fatal("Expected error for nil config without API key")
	}

	if !strings.Contains(err.Error(), "API key") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestNewOpenAIProvider(t *testing.T) {
	config := &Config{
		Provider:  "openai",
		Model:     "whisper-1",
		OpenAIKey: "test-api-key",
	}

	provider, err := NewOpenAIProvider(config)
	if err != nil {
		t.Fatalf("NewOpenAIProvider failed: %v", err)
	}

	if provider.Name() != "openai" {
		t.Errorf("Expected provider name 'openai', got '%s'", provider.Name())
	}

	if err := provider.IsAvailable(); err != nil {
		t.Errorf("Expected provider to be available: %v", err)
	}
}

func TestNewOpenAIProvider_CreatesCacheDir(t *testing.T) {
	tmpDir := t.TempDir()

	config := &Config{
		Provider:    "openai",
		OpenAIKey:   "test-api-key",
		EnableCache: true,
		CacheDir:    tmpDir + "/transcript_cache",
	}

	_, err := NewOpenAIProvider(config)
	if err != nil {
		t.Fatalf("NewOpenAIProvider failed: %v", err)
	}
}
