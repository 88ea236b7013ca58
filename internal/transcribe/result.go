package transcribe

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Segment is a single timestamped span of the transcript.
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Result holds a full transcription: the complete text plus the
// per-segment timestamps returned by the speech model.
type Result struct {
	Text     string    `json:"text"`
	Language string    `json:"language,omitempty"`
	Duration float64   `json:"duration,omitempty"`
	Segments []Segment `json:"segments,omitempty"`
}

// WriteText saves the plain transcript text to path
func (r *Result) WriteText(path string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(r.Text), 0644); err != nil {
		return fmt.Errorf("failed to write transcript text: %w", err)
	}
	return nil
}

// WriteJSON saves the full result, including segment timestamps, to path
func (r *Result) WriteJSON(path string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write transcript JSON: %w", err)
	}
	return nil
}

// LoadResult reads a previously saved transcript. A .json file restores
// the full result; any other extension is treated as plain text.
func LoadResult(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var result Result
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("failed to decode transcript JSON: %w", err)
		}
		return &result, nil
	}

	return &Result{Text: string(data)}, nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return nil
}
