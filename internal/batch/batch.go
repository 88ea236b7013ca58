// Package batch reads episode list files for bulk processing.
package batch

import (
	"fmt"
	"os"
	"strings"
)

// EpisodeEntry is one audio file with an optional card title
type EpisodeEntry struct {
	AudioPath string
	Title     string
}

// ReadBatchFile reads episodes from a file, one per line.
// Supported formats:
// - Audio path only: "episodes/ep01.mp3"
// - With a card title: "episodes/ep01.mp3 = Deep Work Podcast"
// Blank lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]EpisodeEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []EpisodeEntry

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			audioPath := strings.TrimSpace(parts[0])
			title := strings.TrimSpace(parts[1])

			if audioPath == "" {
				// A title without an audio path is useless
				continue
			}

			entries = append(entries, EpisodeEntry{
				AudioPath: audioPath,
				Title:     title,
			})
		} else {
			entries = append(entries, EpisodeEntry{AudioPath: line})
		}
	}

	return entries, nil
}
