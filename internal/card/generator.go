// Package card renders quote cards as PNG images. Three fixed visual
// styles are supported: minimal, elegant and modern.
package card

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"codeberg.org/snonux/quotecast/internal/quote"
)

// Options holds the card canvas and typography configuration
type Options struct {
	Width           int    // Canvas width in pixels
	Height          int    // Canvas height in pixels
	BackgroundColor string // Hex color, e.g. "#1a1a2e"
	TextColor       string // Hex color for the quote body
	AccentColor     string // Hex color for decorations and subtitles
	FontPath        string // TTF/OTF font file, empty for auto-detection
	FontSize        float64
	Padding         float64
}

// DefaultOptions returns the default 1080x1920 portrait card configuration
func DefaultOptions() *Options {
	return &Options{
		Width:           1080,
		Height:          1920,
		BackgroundColor: "#1a1a2e",
		TextColor:       "#ffffff",
		AccentColor:     "#e94560",
		FontSize:        48,
		Padding:         100,
	}
}

// Generator renders quote cards
type Generator struct {
	opts     *Options
	fontPath string // resolved font file, empty when only the built-in face is available
}

// NewGenerator creates a card generator, resolving the font to use
func NewGenerator(opts *Options) *Generator {
	if opts == nil {
		opts = DefaultOptions()
	}

	return &Generator{
		opts:     opts,
		fontPath: resolveFontPath(opts.FontPath),
	}
}

// Generate renders a single card and writes it to outputPath
func (g *Generator) Generate(quoteText, title, subtitle, outputPath, style string) error {
	dc := gg.NewContext(g.opts.Width, g.opts.Height)

	dc.SetHexColor(g.opts.BackgroundColor)
	dc.Clear()

	switch style {
	case StyleElegant:
		g.drawElegantCard(dc, quoteText, title, subtitle)
	case StyleModern:
		g.drawModernCard(dc, quoteText, title, subtitle)
	default:
		// Unknown styles fall back to minimal
		g.drawMinimalCard(dc, quoteText, title, subtitle)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save card: %w", err)
	}

	return nil
}

// GenerateBatch renders one card per quote into outputDir, using each
// quote's category as the card subtitle. Returns the written file paths.
func (g *Generator) GenerateBatch(quotes []quote.Quote, outputDir, title, style string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var outputPaths []string
	for i, q := range quotes {
		outputPath := filepath.Join(outputDir, fmt.Sprintf("card_%03d.png", i+1))

		if err := g.Generate(q.Text, title, q.Category, outputPath, style); err != nil {
			return outputPaths, fmt.Errorf("failed to generate card %d: %w", i+1, err)
		}

		fmt.Printf("  Card generated: %s\n", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// setFont loads the resolved font at the given size. Without a resolved
// font the context keeps its built-in bitmap face.
func (g *Generator) setFont(dc *gg.Context, points float64) {
	if g.fontPath == "" {
		return
	}
	if err := dc.LoadFontFace(g.fontPath, points); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load font %s: %v\n", g.fontPath, err)
	}
}

func (g *Generator) titleSize() float64 { return g.opts.FontSize * 0.6 }
func (g *Generator) smallSize() float64 { return g.opts.FontSize * 0.5 }
