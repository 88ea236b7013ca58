package card

import (
	"fmt"
	"os"
)

// systemFonts lists font files tried when no font path is configured.
// CJK-capable fonts first, since quote text may be Chinese.
var systemFonts = []string{
	"/System/Library/Fonts/PingFang.ttc",                       // macOS
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",   // Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",   // Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",          // Linux
	"C:\\Windows\\Fonts\\msyh.ttc",                             // Windows
}

// resolveFontPath picks the font file to render with: the configured path
// when usable, otherwise the first existing system font. An empty result
// means the drawing context's built-in face is used.
func resolveFontPath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
		fmt.Fprintf(os.Stderr, "Warning: font not found: %s, falling back to system fonts\n", configured)
	}

	for _, font := range systemFonts {
		if _, err := os.Stat(font); err == nil {
			return font
		}
	}

	return ""
}
