package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListAvailableModels lists all available OpenAI models categorized by type
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .quotecast.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	speechModels, chatModels := categorizeModels(models.Models)

	fmt.Println("Available OpenAI Models:")
	fmt.Println("\nSpeech-to-Text Models (for transcription):")
	if len(speechModels) == 0 {
		fmt.Println("  No speech models found")
	} else {
		for _, model := range speechModels {
			fmt.Printf("  %s\n", model)
		}
	}

	fmt.Println("\nChat Models (for quote extraction):")
	if len(chatModels) > 10 {
		// Show only relevant models
		relevantModels := []string{}
		for _, model := range chatModels {
			if strings.Contains(model, "gpt-4") || strings.Contains(model, "gpt-3.5") {
				relevantModels = append(relevantModels, model)
			}
		}
		for _, model := range relevantModels {
			fmt.Printf("  %s\n", model)
		}
		fmt.Printf("  ... and %d more models\n", len(chatModels)-len(relevantModels))
	} else {
		for _, model := range chatModels {
			fmt.Printf("  %s\n", model)
		}
	}

	return nil
}

// categorizeModels splits the model list into speech-to-text and chat
// models, each sorted alphabetically
func categorizeModels(models []openai.Model) (speechModels, chatModels []string) {
	for _, model := range models {
		modelID := model.ID
		if strings.Contains(modelID, "whisper") || strings.Contains(modelID, "transcribe") {
			speechModels = append(speechModels, modelID)
		} else if strings.Contains(modelID, "gpt") || strings.Contains(modelID, "chat") {
			chatModels = append(chatModels, modelID)
		}
	}

	sort.Strings(speechModels)
	sort.Strings(chatModels)
	return speechModels, chatModels
}
