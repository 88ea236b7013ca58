package transcribe

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateAudioFile(t *testing.T) {
	tmpDir := t.TempDir()

	writeFile := func(name string) string {
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte{0xFF, 0xFB, 0x90, 0x00}, 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"mp3 file", writeFile("episode.mp3"), false},
		{"wav file", writeFile("episode.wav"), false},
		{"m4a file", writeFile("episode.m4a"), false},
		{"uppercase extension", writeFile("episode.MP3"), false},
		{"unsupported format", writeFile("episode.txt"), true},
		{"no extension", writeFile("episode"), true},
		{"missing file", filepath.Join(tmpDir, "nope.mp3"), true},
		{"empty path", "", true},
		{"directory", tmpDir, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAudioFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAudioFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
