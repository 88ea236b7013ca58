// Package quote defines the scored quote record shared by the extraction
// and rendering stages, plus its JSON file format.
package quote

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Quote is a single notable quotation extracted from a transcript
type Quote struct {
	Text      string             `json:"text"`
	Context   string             `json:"context,omitempty"`
	Category  string             `json:"category,omitempty"`
	Score     float64            `json:"score"`
	Timestamp map[string]float64 `json:"timestamp,omitempty"`
}

// Save writes quotes as an indented JSON array to path
func Save(path string, quotes []Quote) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode quotes: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write quotes file: %w", err)
	}

	return nil
}

// Load reads a quotes JSON file. Missing fields decode to zero values, so
// hand-edited files with partial records still load.
func Load(path string) ([]Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quotes file: %w", err)
	}

	var quotes []Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("failed to decode quotes file: %w", err)
	}

	return quotes, nil
}

// FilterOptions configures quote filtering
type FilterOptions struct {
	MinScore float64 // Drop quotes scoring below this
	Category string  // Keep only this category when non-empty
	MaxCount int     // Cap the result length when > 0
}

// Filter applies score, category and count filters, returning the result
// sorted by score descending. Equal scores keep their extraction order.
func Filter(quotes []Quote, opts FilterOptions) []Quote {
	filtered := make([]Quote, 0, len(quotes))

	for _, q := range quotes {
		if opts.MinScore > 0 && q.Score < opts.MinScore {
			continue
		}
		if opts.Category != "" && q.Category != opts.Category {
			continue
		}
		filtered = append(filtered, q)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	if opts.MaxCount > 0 && len(filtered) > opts.MaxCount {
		filtered = filtered[:opts.MaxCount]
	}

	return filtered
}
