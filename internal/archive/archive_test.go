package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArchiveEpisodes(t *testing.T) {
	tmpDir := t.TempDir()

	outputDir := filepath.Join(tmpDir, "output")
	if err := os.MkdirAll(filepath.Join(outputDir, "ep01", "cards"), 0755); err != nil {
		t.Fatalf("Failed to create output dir: %v", err)
	}
	cardPath := filepath.Join(outputDir, "ep01", "cards", "card_001.png")
	if err := os.WriteFile(cardPath, []byte("png"), 0644); err != nil {
		t.Fatalf("Failed to create card file: %v", err)
	}

	if err := ArchiveEpisodes(outputDir); err != nil {
		t.Fatalf("ArchiveEpisodes failed: %v", err)
	}

	// Original directory is gone
	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Error("Output directory still exists after archiving")
	}

	// Contents moved under archive/episodes-<timestamp>
	archiveEntries, err := os.ReadDir(filepath.Join(tmpDir, "archive"))
	if err != nil {
		t.Fatalf("Failed to read archive dir: %v", err)
	}
	if len(archiveEntries) != 1 {
		t.Fatalf("Expected 1 archive entry, got %d", len(archiveEntries))
	}
	if !strings.HasPrefix(archiveEntries[0].Name(), "episodes-") {
		t.Errorf("Unexpected archive name: %s", archiveEntries[0].Name())
	}

	movedCard := filepath.Join(tmpDir, "archive", archiveEntries[0].Name(), "ep01", "cards", "card_001.png")
	if _, err := os.Stat(movedCard); err != nil {
		t.Errorf("Card file missing from archive: %v", err)
	}
}

func TestArchiveEpisodes_MissingDirectory(t *testing.T) {
	err := ArchiveEpisodes(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("Expected error for missing output directory")
	}
}
