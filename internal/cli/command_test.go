package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "quotecast" {
		t.Errorf("Expected Use to be 'quotecast', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Podcast Quote Card Generator") {
		t.Errorf("Expected Short description to contain 'Podcast Quote Card Generator'")
	}

	// Test that flags are set up
	flagTests := []struct {
		name       string
		persistent bool
	}{
		{"config", true},
		{"llm-provider", true},
		{"llm-model", true},
		{"llm-base-url", true},
		{"temperature", true},
		{"list-models", false},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.persistent {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestInitConfig_WithConfigFile(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "test-config.yaml")
	content := `llm:
  provider: gemini
  model: gemini-2.5-flash
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	InitConfig(cfgPath)

	if got := viper.GetString("llm.provider"); got != "gemini" {
		t.Errorf("Expected llm.provider gemini, got %s", got)
	}
	if got := viper.GetString("llm.model"); got != "gemini-2.5-flash" {
		t.Errorf("Expected llm.model gemini-2.5-flash, got %s", got)
	}
}

func TestGetOpenAIKey_FromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-test-key")

	if got := GetOpenAIKey(); got != "env-test-key" {
		t.Errorf("Expected key from environment, got %q", got)
	}
}

func TestGetGeminiKey_FromEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gemini-test-key")
	t.Setenv("GOOGLE_API_KEY", "")

	if got := GetGeminiKey(); got != "gemini-test-key" {
		t.Errorf("Expected key from environment, got %q", got)
	}
}
