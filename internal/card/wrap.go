package card

import (
	"strings"

	"github.com/fogleman/gg"
)

// wrapText greedily wraps text into lines that fit maxWidth under the
// context's current font face. CJK text wraps per rune since it carries
// no word-separating spaces; everything else wraps per word.
func wrapText(dc *gg.Context, text string, maxWidth float64) []string {
	if containsCJK(text) {
		return wrapRunes(dc, text, maxWidth)
	}
	return wrapWords(dc, text, maxWidth)
}

// wrapRunes accumulates runes until the line overflows
func wrapRunes(dc *gg.Context, text string, maxWidth float64) []string {
	var lines []string
	currentLine := ""

	for _, r := range text {
		testLine := currentLine + string(r)
		w, _ := dc.MeasureString(testLine)

		if w <= maxWidth {
			currentLine = testLine
		} else {
			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			currentLine = string(r)
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// wrapWords accumulates whitespace-separated words until the line
// overflows. A single word wider than the line becomes its own line.
func wrapWords(dc *gg.Context, text string, maxWidth float64) []string {
	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}
		w, _ := dc.MeasureString(testLine)

		if w <= maxWidth {
			currentLine = testLine
		} else {
			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// containsCJK reports whether text has any CJK unified ideographs
func containsCJK(text string) bool {
	for _, r := range text {
		if r >= 0x4e00 && r <= 0x9fff {
			return true
		}
	}
	return false
}
