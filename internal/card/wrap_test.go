package card

import (
	"strings"
	"testing"

	"github.com/fogleman/gg"
)

func TestContainsCJK(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"hello world", false},
		{"真正的成长来自于走出舒适区", true},
		{"mixed 金句 text", true},
		{"", false},
		{"кирилица", false},
	}

	for _, tt := range tests {
		if got := containsCJK(tt.text); got != tt.want {
			t.Errorf("containsCJK(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestWrapText_EnglishFitsWidth(t *testing.T) {
	dc := gg.NewContext(400, 100)

	text := "Real growth comes from leaving your comfort zone and facing the unknown with courage"
	maxWidth := 200.0
	lines := wrapText(dc, text, maxWidth)

	if len(lines) < 2 {
		t.Fatalf("Expected text to wrap into multiple lines, got %d", len(lines))
	}

	for _, line := range lines {
		w, _ := dc.MeasureString(line)
		if w > maxWidth && strings.Contains(line, " ") {
			t.Errorf("Line %q is %.1f wide, exceeds max %.1f", line, w, maxWidth)
		}
	}

	// No words lost in wrapping
	rejoined := strings.Join(lines, " ")
	if rejoined != text {
		t.Errorf("Wrapping lost or reordered words:\n got %q\nwant %q", rejoined, text)
	}
}

func TestWrapText_CJKWrapsPerRune(t *testing.T) {
	dc := gg.NewContext(400, 100)

	text := "真正的成长来自于走出舒适区勇敢面对未知的挑战"
	maxWidth := 60.0
	lines := wrapText(dc, text, maxWidth)

	if len(lines) < 2 {
		t.Fatalf("Expected CJK text to wrap into multiple lines, got %d", len(lines))
	}

	// No runes lost in wrapping
	rejoined := strings.Join(lines, "")
	if rejoined != text {
		t.Errorf("Wrapping lost runes:\n got %q\nwant %q", rejoined, text)
	}
}

func TestWrapText_SingleOversizedWord(t *testing.T) {
	dc := gg.NewContext(400, 100)

	// A word wider than the line becomes its own line instead of vanishing
	lines := wrapText(dc, "supercalifragilisticexpialidocious", 10.0)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line for a single word, got %d", len(lines))
	}
	if lines[0] != "supercalifragilisticexpialidocious" {
		t.Errorf("Unexpected line content: %q", lines[0])
	}
}

func TestWrapText_Empty(t *testing.T) {
	dc := gg.NewContext(400, 100)

	if lines := wrapText(dc, "", 100.0); len(lines) != 0 {
		t.Errorf("Expected no lines for empty text, got %d", len(lines))
	}
}
