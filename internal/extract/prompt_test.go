package extract

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	transcript := "Growth comes from leaving your comfort zone."
	opts := &Options{
		NumQuotes:  5,
		MinLength:  20,
		MaxLength:  150,
		Categories: []string{"insight", "story"},
	}

	prompt := buildPrompt(transcript, opts)

	if !strings.Contains(prompt, transcript) {
		t.Error("Prompt does not embed the transcript")
	}
	if !strings.Contains(prompt, "about 5 of the most valuable quotes") {
		t.Error("Prompt does not carry the quote count")
	}
	if !strings.Contains(prompt, "20-150 characters") {
		t.Error("Prompt does not carry the length bounds")
	}
	if !strings.Contains(prompt, "insight, story") {
		t.Error("Prompt does not list the categories")
	}
	if !strings.Contains(prompt, `"quotes"`) {
		t.Error("Prompt does not describe the JSON envelope")
	}
}

func TestBuildPrompt_NilOptionsUsesDefaults(t *testing.T) {
	prompt := buildPrompt("some transcript", nil)

	if !strings.Contains(prompt, "about 10 of the most valuable quotes") {
		t.Error("Expected default quote count of 10")
	}
	if !strings.Contains(prompt, "insight, opinion, method, story, other") {
		t.Error("Expected default categories")
	}
}
