package testutil

import (
	"context"
	"fmt"

	"codeberg.org/snonux/quotecast/internal/extract"
	"codeberg.org/snonux/quotecast/internal/quote"
	"codeberg.org/snonux/quotecast/internal/transcribe"
)

// MockTranscriber implements transcribe.Provider with canned results
type MockTranscriber struct {
	Results map[string]*transcribe.Result
	Errors  map[string]error
	Calls   []string
}

// Transcribe returns the canned result for audioPath
func (m *MockTranscriber) Transcribe(ctx context.Context, audioPath string) (*transcribe.Result, error) {
	m.Calls = append(m.Calls, audioPath)

	if err, ok := m.Errors[audioPath]; ok {
		return nil, err
	}

	if result, ok := m.Results[audioPath]; ok {
		return result, nil
	}

	// Default response
	return &transcribe.Result{
		Text:     "mock transcript of " + audioPath,
		Language: "english",
		Duration: 60,
	}, nil
}

// Name returns the provider name
func (m *MockTranscriber) Name() string {
	return "mock"
}

// IsAvailable always reports the provider as configured
func (m *MockTranscriber) IsAvailable() error {
	return nil
}

// MockExtractor implements extract.Extractor with canned quotes
type MockExtractor struct {
	Quotes map[string][]quote.Quote
	Errors map[string]error
	Calls  []string
}

// Extract returns the canned quotes for the transcript
func (m *MockExtractor) Extract(ctx context.Context, transcript string, opts *extract.Options) ([]quote.Quote, error) {
	m.Calls = append(m.Calls, transcript)

	if err, ok := m.Errors[transcript]; ok {
		return nil, err
	}

	if quotes, ok := m.Quotes[transcript]; ok {
		return quotes, nil
	}

	// Default response
	return []quote.Quote{
		{Text: "mock quote", Category: "insight", Score: 8},
	}, nil
}

// Name returns the extractor name
func (m *MockExtractor) Name() string {
	return "mock"
}

// IsAvailable always reports the extractor as configured
func (m *MockExtractor) IsAvailable() error {
	return nil
}

// FailingExtractor implements extract.Extractor and always fails
type FailingExtractor struct {
	Calls int
}

// Extract returns an error on every call
func (f *FailingExtractor) Extract(ctx context.Context, transcript string, opts *extract.Options) ([]quote.Quote, error) {
	f.Calls++
	return nil, fmt.Errorf("mock extraction failure")
}

// Name returns the extractor name
func (f *FailingExtractor) Name() string {
	return "failing"
}

// IsAvailable always reports the extractor as configured
func (f *FailingExtractor) IsAvailable() error {
	return nil
}
