package batch

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "episodes.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}

	return path
}

func TestReadBatchFile(t *testing.T) {
	content := `# weekly episodes
episodes/ep01.mp3
episodes/ep02.mp3 = Deep Work Podcast

episodes/ep03.wav=Untitled Show
`
	entries, err := ReadBatchFile(writeBatchFile(t, content))
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}

	want := []EpisodeEntry{
		{AudioPath: "episodes/ep01.mp3"},
		{AudioPath: "episodes/ep02.mp3", Title: "Deep Work Podcast"},
		{AudioPath: "episodes/ep03.wav", Title: "Untitled Show"},
	}

	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}

	for i, entry := range entries {
		if entry != want[i] {
			t.Errorf("Entry %d: got %+v, want %+v", i, entry, want[i])
		}
	}
}

func TestReadBatchFile_SkipsTitleWithoutPath(t *testing.T) {
	entries, err := ReadBatchFile(writeBatchFile(t, "= Orphan Title\nepisodes/ep.mp3\n"))
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}

	if len(entries) != 1 || entries[0].AudioPath != "episodes/ep.mp3" {
		t.Errorf("Expected only the valid entry, got %+v", entries)
	}
}

func TestReadBatchFile_WindowsLineEndings(t *testing.T) {
	entries, err := ReadBatchFile(writeBatchFile(t, "a.mp3\r\nb.mp3 = B\r\n"))
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].AudioPath != "a.mp3" || entries[1].Title != "B" {
		t.Errorf("Unexpected entries: %+v", entries)
	}
}

func TestReadBatchFile_Missing(t *testing.T) {
	if _, err := ReadBatchFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Expected error for missing batch file")
	}
}

func TestReadBatchFile_Empty(t *testing.T) {
	entries, err := ReadBatchFile(writeBatchFile(t, "\n# only comments\n\n"))
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}

	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}
