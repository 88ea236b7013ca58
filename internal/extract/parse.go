package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"codeberg.org/snonux/quotecast/internal/quote"
)

// quotesEnvelope mirrors the JSON object the rubric asks the model for
type quotesEnvelope struct {
	Quotes []quote.Quote `json:"quotes"`
}

// parseQuotes decodes a model reply into quote records. Some models wrap
// JSON in markdown code fences even when a JSON response is requested, so
// fences are stripped before unmarshalling.
func parseQuotes(reply string) ([]quote.Quote, error) {
	cleaned := stripCodeFences(reply)
	if cleaned == "" {
		return nil, fmt.Errorf("empty reply from model")
	}

	var envelope quotesEnvelope
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode model reply: %w", err)
	}

	if len(envelope.Quotes) == 0 {
		return nil, fmt.Errorf("model reply contains no quotes")
	}

	return envelope.Quotes, nil
}

// stripCodeFences removes a surrounding ```json ... ``` block if present
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
