package transcribe

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider interface for the OpenAI audio API
type OpenAIProvider struct {
	client      *openai.Client
	config      *Config
	cacheDir    string
	enableCache bool
}

// NewOpenAIProvider creates a new OpenAI transcription provider
func NewOpenAIProvider(config *Config) (Provider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	provider := &OpenAIProvider{
		client:      openai.NewClientWithConfig(clientConfig),
		config:      config,
		cacheDir:    config.CacheDir,
		enableCache: config.EnableCache,
	}

	// Create cache directory if caching is enabled
	if provider.enableCache && provider.cacheDir != "" {
		if err := os.MkdirAll(provider.cacheDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	return provider, nil
}

// Transcribe uploads the audio file and returns text plus segment timestamps
func (p *OpenAIProvider) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	if err := ValidateAudioFile(audioPath); err != nil {
		return nil, err
	}

	// Check cache first
	if p.enableCache {
		if cached, err := p.loadCached(audioPath); err == nil {
			fmt.Printf("Using cached transcript for %s\n", filepath.Base(audioPath))
			return cached, nil
		}
	}

	model := p.config.Model
	if model == "" {
		model = openai.Whisper1
	}

	fmt.Printf("OpenAI transcription: model '%s', file '%s'\n", model, filepath.Base(audioPath))

	req := openai.AudioRequest{
		Model:    model,
		FilePath: audioPath,
		Language: p.config.Language,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}

	resp, err := p.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI transcription API error: %w", err)
	}

	if resp.Text == "" {
		return nil, fmt.Errorf("no transcript text received from OpenAI")
	}

	result := &Result{
		Text:     resp.Text,
		Language: resp.Language,
		Duration: resp.Duration,
	}
	for _, seg := range resp.Segments {
		result.Segments = append(result.Segments, Segment{
			ID:    seg.ID,
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}

	// Cache the result if caching is enabled
	if p.enableCache {
		_ = p.saveCached(audioPath, result) // Ignore cache errors
	}

	return result, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is accessible
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}

	// A test API call would use credits, so just check that we have a key
	return nil
}

// getCacheFilePath generates a cache file path for the given audio file
func (p *OpenAIProvider) getCacheFilePath(audioPath string) string {
	h := md5.New()
	h.Write([]byte(audioPath))
	h.Write([]byte(p.config.Model))
	h.Write([]byte(p.config.Language))
	if info, err := os.Stat(audioPath); err == nil {
		h.Write([]byte(fmt.Sprintf("%d_%d", info.Size(), info.ModTime().UnixNano())))
	}
	hash := hex.EncodeToString(h.Sum(nil))

	// Use first 2 chars as subdirectory for better file system performance
	subdir := hash[:2]
	filename := hash[2:] + ".json"

	return filepath.Join(p.cacheDir, subdir, filename)
}

func (p *OpenAIProvider) loadCached(audioPath string) (*Result, error) {
	data, err := os.ReadFile(p.getCacheFilePath(audioPath))
	if err != nil {
		return nil, err
	}
	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (p *OpenAIProvider) saveCached(audioPath string, result *Result) error {
	cacheFile := p.getCacheFilePath(audioPath)
	if err := os.MkdirAll(filepath.Dir(cacheFile), 0755); err != nil {
		return err
	}
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return os.WriteFile(cacheFile, data, 0644)
}
