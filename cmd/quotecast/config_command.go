package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/quotecast/internal/cli"
	"codeberg.org/snonux/quotecast/internal/extract"
)

const configTemplate = `# quotecast configuration
llm:
  provider: openai        # openai or gemini
  # model: gpt-4-turbo-preview   # defaults per provider when unset
  base_url: https://api.openai.com/v1
  temperature: 0.7
  # openai_key: sk-...
  # gemini_key: ...

transcribe:
  model: whisper-1
  enable_cache: true
  cache_dir: ./.transcript_cache

card:
  width: 1080
  height: 1920
  background_color: "#1a1a2e"
  text_color: "#ffffff"
  accent_color: "#e94560"
  font_size: 48
  padding: 100
  # font_path: /path/to/font.ttf

# library:
#   path: output/quotecast.db
`

func newConfigCommand(flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(flags)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a commented config template to $HOME/.quotecast.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit()
		},
	})

	return cmd
}

func runConfigShow(flags *cli.Flags) error {
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Printf("Config file: %s\n\n", used)
	} else {
		fmt.Printf("Config file: none\n\n")
	}

	// Resolved values, not raw flag values: the config file and
	// environment apply here the same way they do during extraction
	provider := cli.GetLLMProvider(flags)
	model := cli.GetLLMModel(flags)
	if model == "" {
		model = extract.DefaultModel(provider)
	}

	fmt.Printf("LLM provider:    %s\n", provider)
	fmt.Printf("LLM model:       %s\n", model)
	fmt.Printf("LLM base URL:    %s\n", cli.GetLLMBaseURL(flags))
	fmt.Printf("Temperature:     %.2f\n", cli.GetLLMTemperature(flags))
	fmt.Printf("Speech model:    %s\n", flags.SpeechModel)
	fmt.Printf("OpenAI API key:  %s\n", maskKey(cli.GetOpenAIKey()))
	fmt.Printf("Gemini API key:  %s\n", maskKey(cli.GetGeminiKey()))

	return nil
}

func runConfigInit() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	path := filepath.Join(home, ".quotecast.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config template: %w", err)
	}

	fmt.Printf("Config template written: %s\n", path)
	return nil
}

// maskKey hides all but the last 4 characters of an API key
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
