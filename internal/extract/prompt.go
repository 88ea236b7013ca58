package extract

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a professional content editor who excels at extracting valuable quotes from podcasts and articles."

// buildPrompt assembles the extraction rubric around the transcript
func buildPrompt(transcript string, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}

	return fmt.Sprintf(`Extract the most valuable quotes from the following text.

Text:
%s

Requirements:
1. Extract about %d of the most valuable quotes
2. Each quote must be %d-%d characters long
3. Quotes should be inspiring, opinionated or practical
4. Assign each quote one category: %s
5. Score each quote from 0 to 10, higher means more valuable
6. Provide a short context note for each quote (optional)

Return the result as a JSON object in this exact format:
{
  "quotes": [
    {
      "text": "the quote",
      "context": "context note",
      "category": "category",
      "score": 8.5
    }
  ]
}
`, transcript, opts.NumQuotes, opts.MinLength, opts.MaxLength, strings.Join(opts.Categories, ", "))
}
