// Package testutil provides shared helpers and mocks for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestDirectory creates a temporary directory structure for testing
func CreateTestDirectory(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()

	dirs := []string{
		"audio",
		"output",
		"cache",
	}

	for _, dir := range dirs {
		path := filepath.Join(tempDir, dir)
		if err := os.MkdirAll(path, 0755); err != nil {
			t.Fatalf("Failed to create test directory %s: %v", path, err)
		}
	}

	return tempDir
}

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateTestAudioFile creates a mock MP3 file and returns its path
func CreateTestAudioFile(t *testing.T, baseDir, name string) string {
	t.Helper()

	audioPath := filepath.Join(baseDir, name)
	CreateTestFile(t, audioPath, []byte{0xFF, 0xFB, 0x90, 0x00})

	return audioPath
}

// CreateTestEpisodeDirectory creates an episode output directory with the
// standard stage output files
func CreateTestEpisodeDirectory(t *testing.T, baseDir, episode string) string {
	t.Helper()

	episodeDir := filepath.Join(baseDir, episode)
	if err := os.MkdirAll(filepath.Join(episodeDir, "cards"), 0755); err != nil {
		t.Fatalf("Failed to create episode directory: %v", err)
	}

	files := map[string]string{
		"transcript.txt":  "This is a test transcript for " + episode + ".",
		"transcript.json": `{"text":"This is a test transcript.","segments":[]}`,
		"quotes.json":     `[{"text":"A test quote.","category":"insight","score":8}]`,
	}

	for filename, content := range files {
		path := filepath.Join(episodeDir, filename)
		CreateTestFile(t, path, []byte(content))
	}

	cardPath := filepath.Join(episodeDir, "cards", "card_001.png")
	CreateTestFile(t, cardPath, []byte{0x89, 0x50, 0x4E, 0x47})

	return episodeDir
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}

// CaptureOutput captures stdout/stderr during test execution
func CaptureOutput(t *testing.T, f func()) (stdout, stderr string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()

	os.Stdout = wOut
	os.Stderr = wErr

	f()

	wOut.Close()
	wErr.Close()

	outBytes := make([]byte, 4096)
	errBytes := make([]byte, 4096)

	nOut, _ := rOut.Read(outBytes)
	nErr, _ := rErr.Read(errBytes)

	os.Stdout = oldStdout
	os.Stderr = oldStderr

	return string(outBytes[:nOut]), string(errBytes[:nErr])
}
