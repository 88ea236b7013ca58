package transcribe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// supportedExtensions lists the audio formats the transcription API accepts.
var supportedExtensions = map[string]bool{
	".flac": true,
	".m4a":  true,
	".mp3":  true,
	".mp4":  true,
	".mpeg": true,
	".mpga": true,
	".oga":  true,
	".ogg":  true,
	".wav":  true,
	".webm": true,
}

// ValidateAudioFile checks that the audio file exists and has a supported format
func ValidateAudioFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("audio path cannot be empty")
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("audio file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat audio file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("audio path is a directory: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return fmt.Errorf("unsupported audio format %q (supported: flac, m4a, mp3, mp4, mpeg, mpga, oga, ogg, wav, webm)", ext)
	}

	return nil
}
