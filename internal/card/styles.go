package card

import (
	"strings"

	"github.com/fogleman/gg"
)

// Card style names
const (
	StyleMinimal = "minimal"
	StyleElegant = "elegant"
	StyleModern  = "modern"
)

// Styles lists the supported card styles
func Styles() []string {
	return []string{StyleMinimal, StyleElegant, StyleModern}
}

// drawMinimalCard: accent bar on top, left-aligned text
func (g *Generator) drawMinimalCard(dc *gg.Context, quoteText, title, subtitle string) {
	width := float64(g.opts.Width)
	height := float64(g.opts.Height)
	padding := g.opts.Padding

	// Top accent bar
	dc.SetHexColor(g.opts.AccentColor)
	dc.DrawRectangle(0, 0, width, 10)
	dc.Fill()

	// Title
	titleY := padding
	g.setFont(dc, g.titleSize())
	dc.SetHexColor(g.opts.TextColor)
	dc.DrawStringAnchored(title, padding, titleY, 0, 1)

	// Oversized quotation mark
	quoteY := titleY + 120
	g.setFont(dc, g.opts.FontSize*2.5)
	dc.SetHexColor(g.opts.AccentColor)
	dc.DrawStringAnchored(`"`, padding, quoteY, 0, 1)

	// Quote body
	textY := quoteY + 100
	maxWidth := width - 2*padding
	g.setFont(dc, g.opts.FontSize)
	lines := wrapText(dc, quoteText, maxWidth)

	dc.SetHexColor(g.opts.TextColor)
	for _, line := range lines {
		dc.DrawStringAnchored(line, padding, textY, 0, 1)
		textY += g.opts.FontSize * 1.5
	}

	// Subtitle
	if subtitle != "" {
		subtitleY := height - padding - 60
		g.setFont(dc, g.smallSize())
		dc.SetHexColor(g.opts.AccentColor)
		dc.DrawStringAnchored(subtitle, padding, subtitleY, 0, 1)
	}
}

// drawElegantCard: thin border, centered text, divider under the title
func (g *Generator) drawElegantCard(dc *gg.Context, quoteText, title, subtitle string) {
	width := float64(g.opts.Width)
	height := float64(g.opts.Height)
	padding := g.opts.Padding

	// Decorative border just outside the padding box
	dc.SetHexColor(g.opts.AccentColor)
	dc.SetLineWidth(3)
	dc.DrawRectangle(padding-20, padding-20, width-2*padding+40, height-2*padding+40)
	dc.Stroke()

	// Centered title in the accent color
	titleY := padding + 40
	g.setFont(dc, g.titleSize())
	dc.SetHexColor(g.opts.AccentColor)
	dc.DrawStringAnchored(title, width/2, titleY, 0.5, 1)

	// Divider line
	lineY := titleY + 80
	lineMargin := 150.0
	dc.SetHexColor(g.opts.AccentColor)
	dc.SetLineWidth(2)
	dc.DrawLine(lineMargin, lineY, width-lineMargin, lineY)
	dc.Stroke()

	// Centered quote body
	textY := lineY + 100
	maxWidth := width - 2*padding - 40
	g.setFont(dc, g.opts.FontSize)
	lines := wrapText(dc, quoteText, maxWidth)

	dc.SetHexColor(g.opts.TextColor)
	for _, line := range lines {
		dc.DrawStringAnchored(line, width/2, textY, 0.5, 1)
		textY += g.opts.FontSize * 1.6
	}

	// Centered subtitle
	if subtitle != "" {
		subtitleY := height - padding - 80
		g.setFont(dc, g.smallSize())
		dc.SetHexColor(g.opts.AccentColor)
		dc.DrawStringAnchored(subtitle, width/2, subtitleY, 0.5, 1)
	}
}

// drawModernCard: accent bar down the left edge, footer band for the subtitle
func (g *Generator) drawModernCard(dc *gg.Context, quoteText, title, subtitle string) {
	width := float64(g.opts.Width)
	height := float64(g.opts.Height)
	padding := g.opts.Padding

	// Left accent bar
	dc.SetHexColor(g.opts.AccentColor)
	dc.DrawRectangle(0, 0, 20, height)
	dc.Fill()

	boxLeft := padding + 20
	boxTop := padding + 100
	boxRight := width - padding
	boxBottom := height - padding - 100

	// Uppercased title
	g.setFont(dc, g.titleSize())
	dc.DrawStringAnchored(strings.ToUpper(title), boxLeft, 60, 0, 1)

	// Quote body
	textY := boxTop + 80
	maxWidth := boxRight - boxLeft - 40
	g.setFont(dc, g.opts.FontSize)
	lines := wrapText(dc, quoteText, maxWidth)

	dc.SetHexColor(g.opts.TextColor)
	for _, line := range lines {
		dc.DrawStringAnchored(line, boxLeft+20, textY, 0, 1)
		textY += g.opts.FontSize * 1.5
	}

	// Footer band with the subtitle in background color
	if subtitle != "" {
		dc.SetHexColor(g.opts.AccentColor)
		dc.DrawRectangle(boxLeft, boxBottom-80, boxRight-boxLeft, 80)
		dc.Fill()

		g.setFont(dc, g.smallSize())
		dc.SetHexColor(g.opts.BackgroundColor)
		dc.DrawStringAnchored(subtitle, boxLeft+20, boxBottom-60, 0, 1)
	}
}
