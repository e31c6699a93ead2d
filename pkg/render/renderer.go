// Package render paints one kanji study entry onto a fixed-size canvas.
// All layout constants are authored against a baseline canvas and scaled
// uniformly, so the composition holds at any output resolution.
package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"kanjigen/pkg/kanji"
)

// Renderer renders entries with one resolved font and one fixed palette.
// It holds no per-entry state; Render may be called any number of times.
type Renderer struct {
	cfg  Config
	font *truetype.Font
}

// NewRenderer resolves the configured font probe list once and returns a
// renderer. A renderer is always usable: when no font resolves, drawing
// falls back to a built-in bitmap face.
func NewRenderer(cfg Config) *Renderer {
	if cfg.BaseWidth <= 0 {
		cfg.BaseWidth = 1920
	}
	if cfg.BaseHeight <= 0 {
		cfg.BaseHeight = 1080
	}
	return &Renderer{cfg: cfg, font: resolveFont(cfg.FontPaths)}
}

// Render paints the entry onto a fresh canvas of the given size. The only
// failure is an entry with no character; every other missing field just
// omits its visual element.
func (r *Renderer) Render(e kanji.Entry, width, height int) (*gg.Context, error) {
	if !e.Valid() {
		return nil, errors.New("render: entry has no character")
	}

	m := NewMetrics(width, height, r.cfg.BaseWidth, r.cfg.BaseHeight)
	pal := r.cfg.Palette
	dc := gg.NewContext(width, height)

	large := faceAt(r.font, m.FontLarge)
	medium := faceAt(r.font, m.FontMedium)
	small := faceAt(r.font, m.FontSmall)

	dc.SetColor(pal.Background)
	dc.Clear()

	fw, fh := float64(width), float64(height)

	// Center the content block using the estimated content height; the
	// centering is a heuristic, not a measurement.
	top := (fh - m.ContentHeight) / 2
	if top < m.MinTopMargin {
		top = m.MinTopMargin
	}

	dc.SetFontFace(large)
	dc.SetColor(pal.Text)
	dc.DrawString(e.Character, m.Margin, top+m.KanjiDy+m.FontLarge)

	colX := m.Margin + m.ColumnOffset
	y := top

	if e.Meaning != "" {
		dc.SetFontFace(medium)
		dc.SetColor(pal.Text)
		dc.DrawString(e.Meaning, colX, y+m.FontMedium)
	}
	y += m.MeaningStep + m.VSpace

	y = r.drawChips(dc, medium, e.OnReadings, pal.Text, colX, y, fw-m.Margin, m)
	y = r.drawChips(dc, medium, e.KunReadings, pal.Reading, colX, y, fw-m.Margin, m)

	if len(e.Compounds) > 0 {
		r.drawCompounds(dc, small, e.Compounds, colX, y, fw, fh, m)
	}
	return dc, nil
}

// RenderFile renders the entry and persists it as a PNG.
func (r *Renderer) RenderFile(e kanji.Entry, width, height int, path string) error {
	dc, err := r.Render(e, width, height)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// drawChips paints one reading family as a row flow of padded chips and
// returns the advanced y cursor. Tokens holding a script-boundary marker
// are drawn as two color segments on a shared chip.
func (r *Renderer) drawChips(dc *gg.Context, face font.Face, tokens []string, tone color.RGBA, startX, y, rightEdge float64, m Metrics) float64 {
	if len(tokens) == 0 {
		return y
	}

	pal := r.cfg.Palette
	dc.SetFontFace(face)
	measure := func(s string) float64 {
		w, _ := dc.MeasureString(s)
		return w
	}

	chips, endY := flowChips(tokens, startX, y, rightEdge, m, measure)
	for _, c := range chips {
		dc.SetColor(pal.Chip)
		dc.DrawRoundedRectangle(c.X, c.Y, c.W, m.ChipHeight(), m.ChipRadius)
		dc.Fill()

		baseline := c.Y + m.ChipPadY + m.FontMedium
		textX := c.X + m.ChipPadX
		if head, tail, ok := splitChipToken(c.Token); ok {
			dc.SetColor(pal.Text)
			dc.DrawString(head, textX, baseline)
			dc.SetColor(pal.Reading)
			dc.DrawString(tail, textX+measure(head), baseline)
		} else {
			dc.SetColor(tone)
			dc.DrawString(c.Token, textX, baseline)
		}
	}
	return endY + m.VSpace
}

// drawCompounds paints the bordered compound box anchored below the
// readings and right-aligned to the canvas margin. Lines past the box's
// bottom edge are silently truncated.
func (r *Renderer) drawCompounds(dc *gg.Context, face font.Face, compounds []kanji.Compound, colX, y, fw, fh float64, m Metrics) {
	pal := r.cfg.Palette
	dc.SetFontFace(face)
	measure := func(s string) float64 {
		w, _ := dc.MeasureString(s)
		return w
	}

	textWidth := fw - colX - m.Margin - m.BoxInset - 2*m.BoxPad
	lines := layoutCompounds(compounds, textWidth, m, measure)
	if len(lines) == 0 {
		return
	}

	boxX0 := colX - m.BoxPad
	boxX1 := fw - m.Margin
	boxY0 := y + m.VSpace

	content := float64(len(lines)) * m.LineStep
	if maxContent := fh - boxY0 - m.BottomMargin - 2*m.BoxPad; content > maxContent {
		content = maxContent
	}
	boxY1 := boxY0 + content + 2*m.BoxPad

	dc.SetColor(pal.BoxFill)
	dc.DrawRectangle(boxX0, boxY0, boxX1-boxX0, boxY1-boxY0)
	dc.Fill()
	dc.SetColor(pal.BoxBorder)
	dc.SetLineWidth(m.BorderWidth)
	dc.DrawRectangle(boxX0, boxY0, boxX1-boxX0, boxY1-boxY0)
	dc.Stroke()

	ly := boxY0 + m.BoxPad
	for _, line := range lines {
		baseline := ly + m.FontSmall
		x := colX
		if line.Word != "" {
			dc.SetColor(pal.Text)
			dc.DrawString(line.Word, x, baseline)
			x += measure(line.Word) + m.WordGap
			dc.SetColor(pal.Reading)
			dc.DrawString(line.Reading, x, baseline)
			x += measure(line.Reading) + m.ReadingGap
		}
		if line.Gloss != "" {
			dc.SetColor(pal.Text)
			dc.DrawString(line.Gloss, x, baseline)
		}
		ly += m.LineStep
		if ly > boxY1-m.BoxPad {
			break
		}
	}
}
