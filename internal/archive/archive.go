// Package archive moves finished episode output directories aside so a
// fresh pipeline run starts from a clean output directory.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveEpisodes moves the episode output directory to a timestamped
// directory under <parent>/archive
func ArchiveEpisodes(outputDir string) error {
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		return fmt.Errorf("output directory does not exist: %s", outputDir)
	}

	parentDir := filepath.Dir(outputDir)
	archiveDir := filepath.Join(parentDir, "archive")

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	archiveName := fmt.Sprintf("episodes-%s", timestamp)
	archivePath := filepath.Join(archiveDir, archiveName)

	// Two archives within the same second need a finer timestamp
	if _, err := os.Stat(archivePath); err == nil {
		timestamp = time.Now().Format("20060102-150405.000000")
		archiveName = fmt.Sprintf("episodes-%s", timestamp)
		archivePath = filepath.Join(archiveDir, archiveName)
	}

	if err := os.Rename(outputDir, archivePath); err != nil {
		return fmt.Errorf("failed to archive output directory: %w", err)
	}

	fmt.Printf("Episode output archived to: %s\n", archivePath)
	return nil
}
