package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/quotecast/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quotecast",
		Short: "Podcast Quote Card Generator",
		Long: `quotecast extracts notable quotations from podcast audio and renders
them as shareable image cards.

The pipeline has three stages: transcription via a hosted speech model,
quote extraction and scoring via an LLM, and PNG card rendering.

Examples:
  quotecast pipeline episode.mp3           # Full run: transcribe, extract, render
  quotecast transcribe episode.mp3         # Transcription only
  quotecast extract transcript.txt -n 15   # Extraction only
  quotecast cards quotes.json -s elegant   # Rendering only`,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags shared by all subcommands
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.quotecast.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LLMProvider, "llm-provider", flags.LLMProvider, "LLM provider for quote extraction (openai or gemini)")
	cmd.PersistentFlags().StringVar(&flags.LLMModel, "llm-model", flags.LLMModel, "LLM model for quote extraction (default depends on the provider)")
	cmd.PersistentFlags().StringVar(&flags.LLMBaseURL, "llm-base-url", flags.LLMBaseURL, "Base URL for the OpenAI-compatible API")
	cmd.PersistentFlags().Float64Var(&flags.Temperature, "temperature", flags.Temperature, "Sampling temperature for quote extraction")

	// Root-only flags
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available models for the current API key")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("llm.provider", cmd.PersistentFlags().Lookup("llm-provider"))
	viper.BindPFlag("llm.model", cmd.PersistentFlags().Lookup("llm-model"))
	viper.BindPFlag("llm.base_url", cmd.PersistentFlags().Lookup("llm-base-url"))
	viper.BindPFlag("llm.temperature", cmd.PersistentFlags().Lookup("temperature"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".quotecast" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".quotecast")
	}

	// Environment variables
	viper.SetEnvPrefix("QUOTECAST")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetLLMProvider returns the effective LLM provider. The viper binding
// resolves flag, config file and environment precedence; the flag value
// is only used directly when no binding is registered.
func GetLLMProvider(flags *Flags) string {
	if viper.IsSet("llm.provider") {
		return viper.GetString("llm.provider")
	}
	return flags.LLMProvider
}

// GetLLMModel returns the effective LLM model, empty when neither flag
// nor config names one
func GetLLMModel(flags *Flags) string {
	if viper.IsSet("llm.model") {
		return viper.GetString("llm.model")
	}
	return flags.LLMModel
}

// GetLLMBaseURL returns the effective base URL for the OpenAI-compatible API
func GetLLMBaseURL(flags *Flags) string {
	if viper.IsSet("llm.base_url") {
		return viper.GetString("llm.base_url")
	}
	return flags.LLMBaseURL
}

// GetLLMTemperature returns the effective sampling temperature
func GetLLMTemperature(flags *Flags) float64 {
	if viper.IsSet("llm.temperature") {
		return viper.GetFloat64("llm.temperature")
	}
	return flags.Temperature
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("llm.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("llm.gemini_key")
}
